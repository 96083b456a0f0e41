package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) statusOp() huma.Operation {
	return huma.Operation{
		OperationID: "stub-status",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Stub status",
		Description: "Reports injected failures and stored row counts. Never affected by failure injection.",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
