package user

import "errors"

var (
	ErrNotFound     = errors.New("user not found")
	ErrInvalidAuth  = errors.New("invalid credentials")
	ErrInvalidInput = errors.New("invalid input")
	ErrServer       = errors.New("server error")
	ErrConnection   = errors.New("connection error")
	ErrRejected     = errors.New("request rejected")
)

const (
	CodeInvalidInput = "invalid_input"
	CodeInvalidAuth  = "invalid_credentials"
	CodeNotFound     = "not_found"
	CodeServer       = "server_error"
	CodeConnection   = "connection_error"
	CodeRejected     = "rejected"
)

// DomainError carries a message fit for the user next to the cause.
type DomainError struct {
	Err     error
	Message string
	Code    string
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
