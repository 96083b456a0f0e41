package discipline

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
		log:        log.With("component", "discipline_handler"),
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
	ds := h.store.Disciplines(input.OwnerID)

	out := make([]DisciplineResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, newResponse(d))
	}
	return &listOutput{Body: out}, nil
}

func (h *Handler) create(_ context.Context, input *createInput) (*output, error) {
	if input.Body.OwnerID <= 0 {
		return nil, huma.Error422UnprocessableEntity("usuario_id is required")
	}

	d := h.store.CreateDiscipline(input.Body.model(0))
	h.log.Debug("discipline created", "id", d.ID, "owner_id", d.OwnerID)

	return &output{Body: newResponse(d)}, nil
}

func (h *Handler) update(_ context.Context, input *updateInput) (*output, error) {
	d, err := h.store.UpdateDiscipline(input.Body.model(input.ID))
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("discipline not found")
	}
	if err != nil {
		return nil, err
	}
	return &output{Body: newResponse(d)}, nil
}

func (h *Handler) delete(_ context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.store.DeleteDiscipline(input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("discipline not found")
		}
		return nil, err
	}
	return &deleteOutput{}, nil
}
