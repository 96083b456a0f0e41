package task

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "tasks-list",
		Method:      http.MethodGet,
		Path:        "/api/tarefas",
		Summary:     "List tasks",
		Tags:        []string{"tasks"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "tasks-create",
		Method:        http.MethodPost,
		Path:          "/api/tarefas",
		Summary:       "Create a task",
		Tags:          []string{"tasks"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "tasks-update",
		Method:      http.MethodPut,
		Path:        "/api/tarefas/{id}",
		Summary:     "Replace a task",
		Tags:        []string{"tasks"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "tasks-delete",
		Method:        http.MethodDelete,
		Path:          "/api/tarefas/{id}",
		Summary:       "Delete a task",
		Tags:          []string{"tasks"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
