package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/exp/slog"
)

// StartAutoSync runs Sync every interval until StopAutoSync. Runs are
// skipped while the previous one is still going or nobody is logged in.
func (a *App) StartAutoSync(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cron != nil {
		return fmt.Errorf("auto sync already running")
	}

	logger := cronLogger{log: a.log.With("component", "auto_sync")}
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	if _, err := c.AddFunc(fmt.Sprintf("@every %ds", seconds), a.autoSync); err != nil {
		return fmt.Errorf("schedule auto sync: %w", err)
	}

	c.Start()
	a.cron = c
	a.log.Info("auto sync started", "interval", interval)
	return nil
}

// StopAutoSync stops the schedule and waits for a running sync to end.
func (a *App) StopAutoSync() {
	a.mu.Lock()
	c := a.cron
	a.cron = nil
	a.mu.Unlock()

	if c == nil {
		return
	}
	<-c.Stop().Done()
	a.log.Info("auto sync stopped")
}

func (a *App) autoSync() {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.PushTimeout+a.config.RequestTimeout*3)
	defer cancel()

	if !a.session.IsLoggedIn(ctx) {
		a.log.Debug("auto sync skipped, no session")
		return
	}

	res, err := a.Sync(ctx)
	if errors.Is(err, ErrSyncInProgress) {
		a.log.Debug("auto sync skipped, sync in progress")
		return
	}
	if err != nil {
		a.log.Error("failed to auto sync", "error", err)
		return
	}
	if !res.Success() {
		a.log.Warn("auto sync finished with errors", "errors", res.Errors)
	}
}

// cronLogger routes cron's own messages into slog.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
