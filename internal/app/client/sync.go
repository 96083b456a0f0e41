package client

import (
	"context"
	"fmt"
	gosync "sync"
	"time"

	"golang.org/x/sync/errgroup"

	"tau/internal/domain/sync"
)

// SyncOptions selects the phases of a synchronization.
type SyncOptions struct {
	Pull bool
	Push bool
}

var FullSync = SyncOptions{Pull: true, Push: true}

// Sync pushes every record the server has not seen yet and then pulls the
// server copy into the local cache.
func (a *App) Sync(ctx context.Context) (*sync.Result, error) {
	return a.SyncWith(ctx, FullSync)
}

// SyncWith runs the selected phases. The push runs before the pull so that
// pending edits reach the server before its copy overwrites matched rows.
// Disciplines go first within each phase because tasks and schedules refer
// to them. Failures of single steps are collected in the result and do not
// stop the others.
func (a *App) SyncWith(ctx context.Context, opts SyncOptions) (*sync.Result, error) {
	ownerID, err := a.session.Current(ctx)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	if a.isSyncing {
		a.mu.Unlock()
		return nil, ErrSyncInProgress
	}
	a.isSyncing = true
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.isSyncing = false
		a.mu.Unlock()
	}()

	result := &sync.Result{StartedAt: time.Now()}
	var mu gosync.Mutex
	record := func(apply func(*sync.Result), err error) {
		mu.Lock()
		defer mu.Unlock()
		apply(result)
		result.AddError(err)
	}

	a.log.Info("sync started", "owner_id", ownerID, "pull", opts.Pull, "push", opts.Push)

	if opts.Push {
		stats, err := a.disciplines.PushPending(ctx, ownerID)
		record(func(r *sync.Result) { r.Disciplines.Push = stats }, wrap("push disciplines", err))

		var g errgroup.Group
		g.Go(func() error {
			stats, err := a.schedules.PushPending(ctx, ownerID)
			record(func(r *sync.Result) { r.Schedules.Push = stats }, wrap("push schedules", err))
			return nil
		})
		g.Go(func() error {
			stats, err := a.tasks.PushPending(ctx, ownerID)
			record(func(r *sync.Result) { r.Tasks.Push = stats }, wrap("push tasks", err))
			return nil
		})
		_ = g.Wait()
	}

	if opts.Pull {
		stats, err := a.disciplines.PullFromRemote(ctx, ownerID)
		record(func(r *sync.Result) { r.Disciplines.Pull = stats }, wrap("pull disciplines", err))

		var g errgroup.Group
		g.Go(func() error {
			stats, err := a.schedules.PullFromRemote(ctx, ownerID)
			record(func(r *sync.Result) { r.Schedules.Pull = stats }, wrap("pull schedules", err))
			return nil
		})
		g.Go(func() error {
			stats, err := a.tasks.PullFromRemote(ctx, ownerID)
			record(func(r *sync.Result) { r.Tasks.Pull = stats }, wrap("pull tasks", err))
			return nil
		})
		_ = g.Wait()
	}

	result.Duration = time.Since(result.StartedAt)

	a.mu.Lock()
	a.lastSync = time.Now()
	a.mu.Unlock()

	if result.Success() {
		a.log.Info("sync finished",
			"owner_id", ownerID,
			"duration", result.Duration,
			"disciplines", result.Disciplines,
			"tasks", result.Tasks,
			"schedules", result.Schedules,
		)
	} else {
		a.log.Warn("sync finished with errors",
			"owner_id", ownerID,
			"duration", result.Duration,
			"errors", len(result.Errors),
		)
	}

	return result, nil
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
