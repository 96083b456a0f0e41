package task

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/exp/slog"

	"tau/internal/domain/discipline"
	"tau/internal/domain/sync"
	"tau/internal/utils/timefmt"
)

// Servicer is the reconciling repository used by the app. Get and Delete
// address rows by local id alone: the cache holds the rows of the signed-in
// user only, since logout wipes it.
type Servicer interface {
	Create(ctx context.Context, ownerID int64, f Fields, policy sync.WaitPolicy) (int64, error)
	Update(ctx context.Context, localID, ownerID int64, f Fields, policy sync.WaitPolicy) error
	Delete(ctx context.Context, localID int64, policy sync.WaitPolicy) error
	Get(ctx context.Context, localID int64) (View, error)
	List(ctx context.Context, ownerID int64) ([]View, error)
	PullFromRemote(ctx context.Context, ownerID int64) (sync.PullStats, error)
	PushPending(ctx context.Context, ownerID int64) (sync.PushStats, error)
}

type Service struct {
	store       Store
	disciplines Disciplines
	remote      Remote
	pusher      *sync.Pusher
	log         *slog.Logger
}

func NewService(store Store, disciplines Disciplines, remote Remote, pusher *sync.Pusher, log *slog.Logger) *Service {
	return &Service{
		store:       store,
		disciplines: disciplines,
		remote:      remote,
		pusher:      pusher,
		log:         log.With("component", "task_service"),
	}
}

// Create requires the referenced discipline to be known by the server.
// Nothing is written when it is not.
func (s *Service) Create(ctx context.Context, ownerID int64, f Fields, policy sync.WaitPolicy) (int64, error) {
	d, err := s.disciplines.Get(ctx, f.DisciplineID)
	if errors.Is(err, discipline.ErrNotFound) {
		return 0, fmt.Errorf("%w: discipline %d does not exist", ErrDisciplineNotSynced, f.DisciplineID)
	}
	if err != nil {
		return 0, fmt.Errorf("get discipline: %w", err)
	}
	if _, ok := d.State.RemoteID(); !ok {
		return 0, fmt.Errorf("%w: discipline %d has no remote id", ErrDisciplineNotSynced, f.DisciplineID)
	}

	localID, err := s.store.Insert(ctx, ownerID, f, sync.Unsynced())
	if err != nil {
		s.log.Error("failed to insert task", "owner_id", ownerID, "error", err)
		return 0, fmt.Errorf("insert task: %w", err)
	}

	t := Task{LocalID: localID, OwnerID: ownerID, State: sync.Unsynced(), Fields: f}

	return localID, s.push(ctx, t).Settle(ctx, policy)
}

// Update stores the edit locally and pushes it. A row owned by another
// user is reported as ErrNotFound.
func (s *Service) Update(ctx context.Context, localID, ownerID int64, f Fields, policy sync.WaitPolicy) error {
	current, err := s.store.Get(ctx, localID)
	if err != nil {
		return err
	}
	if current.OwnerID != ownerID {
		s.log.Warn("refused task update for another owner", "local_id", localID, "owner_id", ownerID)
		return ErrNotFound
	}

	state := current.State.Edited()
	if err := s.store.Update(ctx, localID, f, state); err != nil {
		s.log.Error("failed to update task", "local_id", localID, "error", err)
		return fmt.Errorf("update task: %w", err)
	}

	t := Task{LocalID: localID, OwnerID: ownerID, State: state, Fields: f}

	return s.push(ctx, t).Settle(ctx, policy)
}

func (s *Service) Delete(ctx context.Context, localID int64, policy sync.WaitPolicy) error {
	current, err := s.store.Get(ctx, localID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, localID); err != nil {
		s.log.Error("failed to delete task", "local_id", localID, "error", err)
		return fmt.Errorf("delete task: %w", err)
	}

	remoteID, ok := current.State.RemoteID()
	if !ok {
		return nil
	}

	push := s.pusher.Start(ctx, "delete task", func(ctx context.Context) error {
		err := s.remote.DeleteTask(ctx, remoteID)
		if code, ok := sync.StatusCode(err); ok && code == http.StatusNotFound {
			return nil
		}
		return err
	})

	return push.Settle(ctx, policy)
}

func (s *Service) Get(ctx context.Context, localID int64) (View, error) {
	t, err := s.store.Get(ctx, localID)
	if err != nil {
		return View{}, err
	}

	d, err := s.disciplines.Get(ctx, t.DisciplineID)
	switch {
	case errors.Is(err, discipline.ErrNotFound):
		return newView(t, nil), nil
	case err != nil:
		return View{}, fmt.Errorf("get discipline: %w", err)
	}

	return newView(t, &d), nil
}

func (s *Service) List(ctx context.Context, ownerID int64) ([]View, error) {
	tasks, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	byLocal, err := s.disciplines.ListByOwnerAsMap(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list disciplines: %w", err)
	}

	views := make([]View, 0, len(tasks))
	for _, t := range tasks {
		if d, ok := byLocal[t.DisciplineID]; ok {
			views = append(views, newView(t, &d))
			continue
		}
		views = append(views, newView(t, nil))
	}

	return views, nil
}

// PullFromRemote matches server tasks by remote id only. A task created
// locally whose create push was lost comes back as a second row.
func (s *Service) PullFromRemote(ctx context.Context, ownerID int64) (sync.PullStats, error) {
	remotes, err := s.remote.ListTasks(ctx, Filter{OwnerID: ownerID})
	if err != nil {
		s.log.Warn("failed to fetch tasks", "owner_id", ownerID, "error", err)
		return sync.PullStats{}, fmt.Errorf("list remote tasks: %w", err)
	}

	locals, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return sync.PullStats{}, fmt.Errorf("list local tasks: %w", err)
	}

	byLocal, err := s.disciplines.ListByOwnerAsMap(ctx, ownerID)
	if err != nil {
		return sync.PullStats{}, fmt.Errorf("list disciplines: %w", err)
	}
	localOf := localDisciplineIDs(byLocal)

	converted := make([]sync.Remote[Fields], 0, len(remotes))
	for _, r := range remotes {
		converted = append(converted, sync.Remote[Fields]{
			RemoteID: r.ID,
			Fields:   r.Fields(localOf[r.DisciplineID]),
		})
	}

	plan := sync.Reconcile(toLocals(locals), converted, nil)

	if err := s.store.ApplyPull(ctx, ownerID, plan); err != nil {
		s.log.Error("failed to apply task pull", "owner_id", ownerID, "error", err)
		return sync.PullStats{}, fmt.Errorf("apply task pull: %w", err)
	}

	stats := plan.Stats(len(remotes))
	s.log.Info("tasks pulled",
		"owner_id", ownerID,
		"fetched", stats.Fetched,
		"updated", stats.Updated,
		"inserted", stats.Inserted,
	)

	return stats, nil
}

// PushPending pushes every task that is not synced. Tasks whose discipline
// has no remote id are skipped.
func (s *Service) PushPending(ctx context.Context, ownerID int64) (sync.PushStats, error) {
	locals, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return sync.PushStats{}, fmt.Errorf("list local tasks: %w", err)
	}

	var stats sync.PushStats
	var pushes []*sync.Push

	for _, t := range locals {
		if t.Synced() {
			continue
		}
		stats.Attempted++
		pushes = append(pushes, s.push(ctx, t))
	}

	for _, p := range pushes {
		err := p.Wait(ctx)
		switch {
		case err == nil:
			stats.Pushed++
		case errors.Is(err, sync.ErrParentNotSynced):
			stats.Skipped++
		default:
			stats.Failed++
		}
	}

	if stats.Attempted > 0 {
		s.log.Info("tasks pushed",
			"owner_id", ownerID,
			"attempted", stats.Attempted,
			"pushed", stats.Pushed,
			"skipped", stats.Skipped,
			"failed", stats.Failed,
		)
	}

	return stats, nil
}

func (s *Service) push(ctx context.Context, t Task) *sync.Push {
	remoteID, hasRemote := t.State.RemoteID()
	op := "create task"
	if hasRemote {
		op = "update task"
	}

	parentID, err := s.disciplineRemoteID(ctx, t.DisciplineID)
	if err != nil {
		s.log.Debug("task push skipped", "local_id", t.LocalID, "reason", err)
		return sync.Finished(op, err)
	}

	req := NewRequest(t.OwnerID, t.Fields, parentID)

	if hasRemote {
		return s.pusher.Start(ctx, op, func(ctx context.Context) error {
			if _, err := s.remote.UpdateTask(ctx, remoteID, req); err != nil {
				return fmt.Errorf("update task %d: %w", remoteID, err)
			}
			return s.markSynced(ctx, t.LocalID, remoteID)
		})
	}

	return s.pusher.Start(ctx, op, func(ctx context.Context) error {
		resp, err := s.remote.CreateTask(ctx, req)
		if err != nil {
			return fmt.Errorf("create task: %w", err)
		}
		if resp.ID == 0 {
			return ErrNoID
		}
		return s.markSynced(ctx, t.LocalID, resp.ID)
	})
}

func (s *Service) disciplineRemoteID(ctx context.Context, localID int64) (int64, error) {
	d, err := s.disciplines.Get(ctx, localID)
	if errors.Is(err, discipline.ErrNotFound) {
		return 0, sync.ErrParentNotSynced
	}
	if err != nil {
		return 0, fmt.Errorf("get discipline: %w", err)
	}
	id, ok := d.State.RemoteID()
	if !ok {
		return 0, sync.ErrParentNotSynced
	}
	return id, nil
}

func (s *Service) markSynced(ctx context.Context, localID, remoteID int64) error {
	if err := s.store.SetState(ctx, localID, sync.Synced(remoteID)); err != nil {
		s.log.Error("failed to mark task synced",
			"local_id", localID, "remote_id", remoteID, "error", err)
		return fmt.Errorf("mark task synced: %w", err)
	}
	return nil
}

func newView(t Task, d *discipline.Discipline) View {
	v := View{
		Task:            t,
		DisciplineName:  discipline.PlaceholderName,
		DisciplineColor: discipline.PlaceholderColor,
	}
	if d != nil {
		v.DisciplineRemoteID = d.RemoteID()
		v.DisciplineName = d.Name
		v.DisciplineColor = d.Color
	}
	v.Due, v.HasDue = timefmt.ParseDate(t.DueDate)
	return v
}

func localDisciplineIDs(byLocal map[int64]discipline.Discipline) map[int64]int64 {
	out := make(map[int64]int64, len(byLocal))
	for localID, d := range byLocal {
		if remoteID, ok := d.State.RemoteID(); ok {
			out[remoteID] = localID
		}
	}
	return out
}

func toLocals(ts []Task) []sync.Local[Fields] {
	out := make([]sync.Local[Fields], 0, len(ts))
	for _, t := range ts {
		out = append(out, sync.Local[Fields]{LocalID: t.LocalID, State: t.State, Fields: t.Fields})
	}
	return out
}
