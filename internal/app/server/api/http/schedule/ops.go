package schedule

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "schedules-list",
		Method:      http.MethodGet,
		Path:        "/api/horarios",
		Summary:     "List schedules",
		Tags:        []string{"schedules"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "schedules-create",
		Method:        http.MethodPost,
		Path:          "/api/horarios",
		Summary:       "Create a schedule",
		Tags:          []string{"schedules"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "schedules-update",
		Method:      http.MethodPut,
		Path:        "/api/horarios/{id}",
		Summary:     "Replace a schedule",
		Tags:        []string{"schedules"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "schedules-delete",
		Method:        http.MethodDelete,
		Path:          "/api/horarios/{id}",
		Summary:       "Delete a schedule",
		Tags:          []string{"schedules"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
