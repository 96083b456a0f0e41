package task

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"tau/internal/app/server/store"
)

type Handler struct {
	store      *store.Store
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(st *store.Store, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		store:      st,
		log:        log.With("component", "task_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(_ context.Context, input *listInput) (*listOutput, error) {
	keep, err := matcher(input)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	ts := h.store.Tasks(keep)
	out := make([]TaskResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, newResponse(t))
	}
	return &listOutput{Body: out}, nil
}

func (h *Handler) create(_ context.Context, input *createInput) (*output, error) {
	if input.Body.OwnerID <= 0 {
		return nil, huma.Error422UnprocessableEntity("usuario_id is required")
	}

	t := h.store.CreateTask(input.Body.model(0))
	h.log.Debug("task created", "id", t.ID, "owner_id", t.OwnerID)

	return &output{Body: newResponse(t)}, nil
}

func (h *Handler) update(_ context.Context, input *updateInput) (*output, error) {
	t, err := h.store.UpdateTask(input.Body.model(input.ID))
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("task not found")
	}
	if err != nil {
		return nil, err
	}
	return &output{Body: newResponse(t)}, nil
}

func (h *Handler) delete(_ context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.store.DeleteTask(input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("task not found")
		}
		return nil, err
	}
	return &deleteOutput{}, nil
}
