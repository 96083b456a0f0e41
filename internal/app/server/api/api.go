// Package api serves an in-memory rendition of the study planner REST API.
//
//	POST   /api/usuarios           sign up
//	POST   /api/usuarios/login     log in
//	GET    /api/disciplinas        list (usuario_id)
//	POST   /api/disciplinas        create
//	PUT    /api/disciplinas/{id}   replace
//	DELETE /api/disciplinas/{id}   delete
//	...    /api/tarefas            same shape, list filters: disciplina_id, status, data_inicio, data_fim
//	...    /api/horarios           same shape
//	GET    /api/health             stub status: injected failure and row counts
package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	disciplineAPI "tau/internal/app/server/api/http/discipline"
	healthAPI "tau/internal/app/server/api/http/health"
	"tau/internal/app/server/api/http/middleware"
	"tau/internal/app/server/api/http/middleware/fault"
	"tau/internal/app/server/api/http/middleware/logger"
	scheduleAPI "tau/internal/app/server/api/http/schedule"
	taskAPI "tau/internal/app/server/api/http/task"
	userAPI "tau/internal/app/server/api/http/user"
	"tau/internal/app/server/store"
	"tau/internal/domain/user"
)

type Handlers struct {
	Health     *healthAPI.Handler
	User       *userAPI.Handler
	Discipline *disciplineAPI.Handler
	Task       *taskAPI.Handler
	Schedule   *scheduleAPI.Handler
}

type Server struct {
	mux   *chi.Mux
	fault *fault.Injector
}

// New registers every operation on a fresh chi router.
func New(st *store.Store, log *slog.Logger) *Server {
	mux := chi.NewMux()

	API := humachi.New(mux, huma.DefaultConfig("Tau stub API", "1.0.0"))

	injector := fault.New(API, log)
	h := handlers(st, injector, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Discipline.SetupRoutes(API)
	h.Task.SetupRoutes(API)
	h.Schedule.SetupRoutes(API)

	return &Server{mux: mux, fault: injector}
}

func handlers(st *store.Store, injector *fault.Injector, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(st, injector, log, middlewares.GetAllAndClear())

	api := func() huma.Middlewares {
		middlewares.Add(loggerMW.Middleware())
		middlewares.Add(injector.Middleware())
		return middlewares.GetAllAndClear()
	}

	return &Handlers{
		Health:     healthHandler,
		User:       userAPI.NewHandler(st, user.NewCredentialsValidator(), log, api()),
		Discipline: disciplineAPI.NewHandler(st, log, api()),
		Task:       taskAPI.NewHandler(st, log, api()),
		Schedule:   scheduleAPI.NewHandler(st, log, api()),
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// SetFailure makes every API call except the health check answer with
// status. Zero restores normal behavior.
func (s *Server) SetFailure(status int) {
	s.fault.Set(status)
}
