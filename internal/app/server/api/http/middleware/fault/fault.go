// Package fault lets tests make every API call fail with a chosen status.
package fault

import (
	"net/http"
	"sync/atomic"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Injector struct {
	api    huma.API
	status atomic.Int32
	log    *slog.Logger
}

func New(api huma.API, log *slog.Logger) *Injector {
	return &Injector{
		api: api,
		log: log.With(slog.String("component", "fault_injector")),
	}
}

// Set makes every following request fail with status. Zero clears it.
func (f *Injector) Set(status int) {
	f.status.Store(int32(status))
}

// Status is the status currently injected, zero when none.
func (f *Injector) Status() int {
	return int(f.status.Load())
}

func (f *Injector) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		status := int(f.status.Load())
		if status == 0 {
			next(ctx)
			return
		}

		f.log.Debug("injecting failure", "path", ctx.URL().Path, "status", status)
		if err := huma.WriteErr(f.api, ctx, status, http.StatusText(status)); err != nil {
			f.log.Error("failed to write injected error", "error", err)
		}
	}
}
