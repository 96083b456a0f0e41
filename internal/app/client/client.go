// Package client wires the offline-first study planner client together.
package client

import (
	"context"
	"errors"
	"fmt"
	gosync "sync"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/exp/slog"

	"tau/internal/app/client/config"
	"tau/internal/app/client/remote"
	"tau/internal/domain/discipline"
	"tau/internal/domain/schedule"
	"tau/internal/domain/session"
	"tau/internal/domain/sync"
	"tau/internal/domain/task"
	"tau/internal/domain/user"
)

var ErrSyncInProgress = errors.New("sync already in progress")

type App struct {
	config      *config.Config
	log         *slog.Logger
	storage     *Storage
	remote      *remote.Client
	pusher      *sync.Pusher
	session     *session.Service
	users       *user.Service
	disciplines *discipline.Service
	tasks       *task.Service
	schedules   *schedule.Service

	mu        gosync.Mutex
	isSyncing bool
	lastSync  time.Time
	cron      *cron.Cron
}

// New opens local storage and builds the services. A storage that cannot
// be opened on disk is an error unless cfg.MemoryFallback is set.
func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}

	st, err := openStorage(cfg.DataPath, cfg.MemoryFallback, log)
	if err != nil {
		return nil, err
	}
	return newApp(cfg, log, st)
}

func newApp(cfg *config.Config, log *slog.Logger, st *Storage) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}

	rc := remote.New(cfg.BaseURL(), log, remote.WithTimeout(cfg.RequestTimeout))
	pusher := sync.NewPusher(cfg.PushTimeout, log)

	app := &App{
		config:      cfg,
		log:         log.With("component", "app"),
		storage:     st,
		remote:      rc,
		pusher:      pusher,
		session:     session.NewService(st.Session, log),
		users:       user.NewService(rc, user.NewCredentialsValidator(), log),
		disciplines: discipline.NewService(st.Disciplines, rc, pusher, log),
		tasks:       task.NewService(st.Tasks, st.Disciplines, rc, pusher, log),
		schedules:   schedule.NewService(st.Schedules, st.Disciplines, rc, pusher, log),
	}

	app.log.Debug("client ready",
		"server", rc.BaseURL(),
		"storage", st.Kind,
		"env", cfg.Env,
	)

	return app, nil
}

func (a *App) Config() *config.Config {
	return a.config
}

func (a *App) StorageKind() string {
	return a.storage.Kind
}

func (a *App) Disciplines() discipline.Servicer {
	return a.disciplines
}

func (a *App) Tasks() task.Servicer {
	return a.tasks
}

func (a *App) Schedules() schedule.Servicer {
	return a.schedules
}

// OwnerID returns the logged-in user or session.ErrNoSession.
func (a *App) OwnerID(ctx context.Context) (int64, error) {
	return a.session.Current(ctx)
}

func (a *App) IsLoggedIn(ctx context.Context) bool {
	return a.session.IsLoggedIn(ctx)
}

func (a *App) SignUp(ctx context.Context, email, password string) (user.User, error) {
	u, err := a.users.SignUp(ctx, email, password)
	if err != nil {
		return user.User{}, err
	}

	a.log.Info("user signed up", "email", email, "user_id", u.ID)
	return u, nil
}

// Login authenticates, stores the session and synchronizes. A failed
// synchronization is logged and does not fail the login.
func (a *App) Login(ctx context.Context, email, password string) (user.User, error) {
	u, err := a.users.Login(ctx, email, password)
	if err != nil {
		return user.User{}, err
	}

	if err := a.session.Save(ctx, u.ID); err != nil {
		return user.User{}, err
	}
	a.log.Info("user logged in", "email", u.Email, "user_id", u.ID)

	res, err := a.Sync(ctx)
	switch {
	case err != nil:
		a.log.Warn("failed to sync after login", "user_id", u.ID, "error", err)
	case !res.Success():
		a.log.Warn("sync after login finished with errors", "user_id", u.ID, "errors", res.Errors)
	}

	return u, nil
}

// Logout ends the session and wipes every cached record.
func (a *App) Logout(ctx context.Context) error {
	a.pusher.Wait()
	return a.session.Clear(ctx)
}

// LastSync returns the end of the last completed synchronization.
func (a *App) LastSync() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastSync
}

// Shutdown stops background work, waits for in-flight pushes and closes the store.
func (a *App) Shutdown() error {
	a.StopAutoSync()
	a.pusher.Wait()

	if err := a.storage.Close(); err != nil {
		a.log.Error("failed to close storage", "error", err)
		return fmt.Errorf("close storage: %w", err)
	}
	a.log.Debug("client stopped")
	return nil
}
