package user

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"tau/internal/app/server/store"
	"tau/internal/domain/user"
)

type Handler struct {
	store      *store.Store
	validator  user.Validator
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(st *store.Store, validator user.Validator, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		store:      st,
		validator:  validator,
		log:        log.With("component", "user_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.signUpOp(), h.signUp)
	huma.Register(api, h.loginOp(), h.login)
}

func (h *Handler) signUp(ctx context.Context, input *signUpInput) (*signUpOutput, error) {
	if err := h.validator.ValidateSignUp(input.Body.Email, input.Body.Password); err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Body.Password), bcrypt.DefaultCost)
	if err != nil {
		h.log.Error("failed to hash password", "error", err)
		return nil, huma.Error500InternalServerError("hash password")
	}

	account, err := h.store.CreateAccount(input.Body.Email, hash)
	if errors.Is(err, store.ErrEmailTaken) {
		return nil, huma.Error409Conflict(err.Error())
	}
	if err != nil {
		h.log.Error("failed to create account", "email", input.Body.Email, "error", err)
		return nil, huma.Error500InternalServerError("create account")
	}

	return &signUpOutput{
		Body: AccountResponse{ID: account.ID, Email: account.Email},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	account, err := h.store.AccountByEmail(input.Body.Email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("user not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("find account")
	}

	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(input.Body.Password)); err != nil {
		h.log.Debug("password mismatch", "email", input.Body.Email)
		return nil, huma.Error401Unauthorized("invalid credentials")
	}

	return &loginOutput{
		Body: AccountResponse{ID: account.ID, Email: account.Email},
	}, nil
}
