package discipline

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "disciplines-list",
		Method:      http.MethodGet,
		Path:        "/api/disciplinas",
		Summary:     "List disciplines",
		Tags:        []string{"disciplines"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "disciplines-create",
		Method:        http.MethodPost,
		Path:          "/api/disciplinas",
		Summary:       "Create a discipline",
		Tags:          []string{"disciplines"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "disciplines-update",
		Method:      http.MethodPut,
		Path:        "/api/disciplinas/{id}",
		Summary:     "Replace a discipline",
		Tags:        []string{"disciplines"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "disciplines-delete",
		Method:        http.MethodDelete,
		Path:          "/api/disciplinas/{id}",
		Summary:       "Delete a discipline",
		Tags:          []string{"disciplines"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
