package user

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/exp/slog"

	"tau/internal/domain/sync"
)

type Servicer interface {
	SignUp(ctx context.Context, email, password string) (User, error)
	Login(ctx context.Context, email, password string) (User, error)
}

type Service struct {
	remote    Remote
	validator Validator
	log       *slog.Logger
}

func NewService(remote Remote, validator Validator, log *slog.Logger) *Service {
	return &Service{
		remote:    remote,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

func (s *Service) SignUp(ctx context.Context, email, password string) (User, error) {
	if err := s.validator.ValidateSignUp(email, password); err != nil {
		s.log.Debug("validation failed", "email", email, "error", err)
		return User{}, &DomainError{Err: fmt.Errorf("%w: %v", ErrInvalidInput, err), Message: err.Error(), Code: CodeInvalidInput}
	}

	resp, err := s.remote.SignUp(ctx, Credentials{Email: email, Password: password})
	if err != nil {
		s.log.Warn("failed to sign up", "email", email, "error", err)
		return User{}, signUpError(err)
	}

	return User{ID: resp.ID, Email: email}, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	if err := s.validator.ValidateLogin(email, password); err != nil {
		s.log.Debug("validation failed", "email", email, "error", err)
		return User{}, &DomainError{Err: fmt.Errorf("%w: %v", ErrInvalidInput, err), Message: err.Error(), Code: CodeInvalidInput}
	}

	resp, err := s.remote.Login(ctx, Credentials{Email: email, Password: password})
	if err != nil {
		s.log.Warn("failed to log in", "email", email, "error", err)
		return User{}, loginError(err)
	}

	if resp.ID <= 0 {
		return User{}, &DomainError{Err: ErrRejected, Message: "Login failed: server returned no user id", Code: CodeRejected}
	}

	u := User{ID: resp.ID, Email: resp.Email}
	if u.Email == "" {
		u.Email = email
	}

	return u, nil
}

func loginError(err error) error {
	if errors.Is(err, sync.ErrTransport) {
		return connectionError(err)
	}

	var se *sync.StatusError
	if !errors.As(err, &se) {
		return rejectedError("Login failed: ", err)
	}

	switch se.Code {
	case http.StatusUnauthorized:
		return &DomainError{Err: ErrInvalidAuth, Message: "Invalid email or password", Code: CodeInvalidAuth}
	case http.StatusNotFound:
		return &DomainError{Err: ErrNotFound, Message: "User not found", Code: CodeNotFound}
	case http.StatusInternalServerError:
		return &DomainError{Err: ErrServer, Message: "Server error. Try again later", Code: CodeServer}
	default:
		return &DomainError{Err: fmt.Errorf("%w: %w", ErrRejected, err), Message: "Login failed: " + message(se), Code: CodeRejected}
	}
}

func signUpError(err error) error {
	if errors.Is(err, sync.ErrTransport) {
		return connectionError(err)
	}

	var se *sync.StatusError
	if !errors.As(err, &se) {
		return rejectedError("Sign-up failed: ", err)
	}

	switch se.Code {
	case http.StatusUnprocessableEntity:
		return &DomainError{Err: ErrInvalidInput, Message: "Invalid data. Check and try again", Code: CodeInvalidInput}
	case http.StatusInternalServerError:
		return &DomainError{Err: ErrServer, Message: "Server error. Try again later", Code: CodeServer}
	default:
		return &DomainError{Err: fmt.Errorf("%w: %w", ErrRejected, err), Message: "Sign-up failed: " + message(se), Code: CodeRejected}
	}
}

// rejectedError covers failures that are neither a status nor a transport
// error, such as an undecodable response body.
func rejectedError(prefix string, err error) error {
	return &DomainError{
		Err:     fmt.Errorf("%w: %w", ErrRejected, err),
		Message: prefix + err.Error(),
		Code:    CodeRejected,
	}
}

func connectionError(err error) error {
	return &DomainError{
		Err:     fmt.Errorf("%w: %w", ErrConnection, err),
		Message: "Connection error: " + err.Error(),
		Code:    CodeConnection,
	}
}

func message(se *sync.StatusError) string {
	if se.Message != "" {
		return se.Message
	}
	return http.StatusText(se.Code)
}
