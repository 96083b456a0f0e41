package schedule

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
		log:        log.With("component", "schedule_handler"),
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
	scs := h.store.Schedules(input.OwnerID)

	out := make([]ScheduleResponse, 0, len(scs))
	for _, sc := range scs {
		out = append(out, newResponse(sc))
	}
	return &listOutput{Body: out}, nil
}

func (h *Handler) create(_ context.Context, input *createInput) (*output, error) {
	if input.Body.OwnerID <= 0 {
		return nil, huma.Error422UnprocessableEntity("usuario_id is required")
	}

	sc := h.store.CreateSchedule(input.Body.model(0))
	h.log.Debug("schedule created", "id", sc.ID, "owner_id", sc.OwnerID)

	return &output{Body: newResponse(sc)}, nil
}

func (h *Handler) update(_ context.Context, input *updateInput) (*output, error) {
	sc, err := h.store.UpdateSchedule(input.Body.model(input.ID))
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("schedule not found")
	}
	if err != nil {
		return nil, err
	}
	return &output{Body: newResponse(sc)}, nil
}

func (h *Handler) delete(_ context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.store.DeleteSchedule(input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("schedule not found")
		}
		return nil, err
	}
	return &deleteOutput{}, nil
}
