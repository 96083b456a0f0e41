package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"tau/internal/app/server/store"
)

const (
	StatusOK      = "OK"
	StatusFailing = "FAILING"
)

type Counter interface {
	Counts() store.Counts
}

type Faults interface {
	Status() int
}

type Handler struct {
	store      Counter
	faults     Faults
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(st Counter, faults Faults, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		store:      st,
		faults:     faults,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.statusOp(), h.status)
}

func (h *Handler) status(_ context.Context, _ *Input) (*Output, error) {
	counts := h.store.Counts()
	injected := h.faults.Status()

	h.log.Debug("status request received", "injected_status", injected)

	resp := StatusResponse{
		Status:         StatusOK,
		InjectedStatus: injected,
		Accounts:       counts.Accounts,
		Disciplines:    counts.Disciplines,
		Tasks:          counts.Tasks,
		Schedules:      counts.Schedules,
	}
	if injected != 0 {
		resp.Status = StatusFailing
	}

	return &Output{Body: resp}, nil
}
