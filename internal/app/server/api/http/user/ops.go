package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) signUpOp() huma.Operation {
	return huma.Operation{
		OperationID:   "user-signup",
		Method:        http.MethodPost,
		Path:          "/api/usuarios",
		Summary:       "Create an account",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-login",
		Method:      http.MethodPost,
		Path:        "/api/usuarios/login",
		Summary:     "Log in with email and password",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}
