package schedule

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
		log:         log.With("component", "schedule_service"),
	}
}

// Create stores the schedule locally. Its push is skipped while the
// discipline has no remote id, leaving the schedule unsynced.
func (s *Service) Create(ctx context.Context, ownerID int64, f Fields, policy sync.WaitPolicy) (int64, error) {
	localID, err := s.store.Insert(ctx, ownerID, f, sync.Unsynced())
	if err != nil {
		s.log.Error("failed to insert schedule", "owner_id", ownerID, "error", err)
		return 0, fmt.Errorf("insert schedule: %w", err)
	}

	sc := Schedule{LocalID: localID, OwnerID: ownerID, State: sync.Unsynced(), Fields: f}

	return localID, s.push(ctx, sc).Settle(ctx, policy)
}

// Update stores the edit locally and pushes it. A row owned by another
// user is reported as ErrNotFound.
func (s *Service) Update(ctx context.Context, localID, ownerID int64, f Fields, policy sync.WaitPolicy) error {
	current, err := s.store.Get(ctx, localID)
	if err != nil {
		return err
	}
	if current.OwnerID != ownerID {
		s.log.Warn("refused schedule update for another owner", "local_id", localID, "owner_id", ownerID)
		return ErrNotFound
	}

	state := current.State.Edited()
	if err := s.store.Update(ctx, localID, f, state); err != nil {
		s.log.Error("failed to update schedule", "local_id", localID, "error", err)
		return fmt.Errorf("update schedule: %w", err)
	}

	sc := Schedule{LocalID: localID, OwnerID: ownerID, State: state, Fields: f}

	return s.push(ctx, sc).Settle(ctx, policy)
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
		s.log.Error("failed to delete schedule", "local_id", localID, "error", err)
		return fmt.Errorf("delete schedule: %w", err)
	}

	remoteID, ok := current.State.RemoteID()
	if !ok {
		return nil
	}

	push := s.pusher.Start(ctx, "delete schedule", func(ctx context.Context) error {
		err := s.remote.DeleteSchedule(ctx, remoteID)
		if code, ok := sync.StatusCode(err); ok && code == http.StatusNotFound {
			return nil
		}
		return err
	})

	return push.Settle(ctx, policy)
}

func (s *Service) Get(ctx context.Context, localID int64) (View, error) {
	sc, err := s.store.Get(ctx, localID)
	if err != nil {
		return View{}, err
	}

	d, err := s.disciplines.Get(ctx, sc.DisciplineID)
	switch {
	case errors.Is(err, discipline.ErrNotFound):
		return newView(sc, nil), nil
	case err != nil:
		return View{}, fmt.Errorf("get discipline: %w", err)
	}

	return newView(sc, &d), nil
}

func (s *Service) List(ctx context.Context, ownerID int64) ([]View, error) {
	schedules, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}

	byLocal, err := s.disciplines.ListByOwnerAsMap(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list disciplines: %w", err)
	}

	views := make([]View, 0, len(schedules))
	for _, sc := range schedules {
		if d, ok := byLocal[sc.DisciplineID]; ok {
			views = append(views, newView(sc, &d))
			continue
		}
		views = append(views, newView(sc, nil))
	}

	return views, nil
}

// PullFromRemote matches server schedules by remote id only. Times are
// stored as HH:MM when they parse.
func (s *Service) PullFromRemote(ctx context.Context, ownerID int64) (sync.PullStats, error) {
	remotes, err := s.remote.ListSchedules(ctx, ownerID)
	if err != nil {
		s.log.Warn("failed to fetch schedules", "owner_id", ownerID, "error", err)
		return sync.PullStats{}, fmt.Errorf("list remote schedules: %w", err)
	}

	locals, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return sync.PullStats{}, fmt.Errorf("list local schedules: %w", err)
	}

	byLocal, err := s.disciplines.ListByOwnerAsMap(ctx, ownerID)
	if err != nil {
		return sync.PullStats{}, fmt.Errorf("list disciplines: %w", err)
	}
	localOf := localDisciplineIDs(byLocal)

	converted := make([]sync.Remote[Fields], 0, len(remotes))
	for _, r := range remotes {
		f := r.Fields(localOf[r.DisciplineID])
		f.StartTime = timefmt.NormalizeClock(f.StartTime)
		f.EndTime = timefmt.NormalizeClock(f.EndTime)
		converted = append(converted, sync.Remote[Fields]{RemoteID: r.ID, Fields: f})
	}

	plan := sync.Reconcile(toLocals(locals), converted, nil)

	if err := s.store.ApplyPull(ctx, ownerID, plan); err != nil {
		s.log.Error("failed to apply schedule pull", "owner_id", ownerID, "error", err)
		return sync.PullStats{}, fmt.Errorf("apply schedule pull: %w", err)
	}

	stats := plan.Stats(len(remotes))
	s.log.Info("schedules pulled",
		"owner_id", ownerID,
		"fetched", stats.Fetched,
		"updated", stats.Updated,
		"inserted", stats.Inserted,
	)

	return stats, nil
}

func (s *Service) PushPending(ctx context.Context, ownerID int64) (sync.PushStats, error) {
	locals, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return sync.PushStats{}, fmt.Errorf("list local schedules: %w", err)
	}

	var stats sync.PushStats
	var pushes []*sync.Push

	for _, sc := range locals {
		if sc.Synced() {
			continue
		}
		stats.Attempted++
		pushes = append(pushes, s.push(ctx, sc))
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
		s.log.Info("schedules pushed",
			"owner_id", ownerID,
			"attempted", stats.Attempted,
			"pushed", stats.Pushed,
			"skipped", stats.Skipped,
			"failed", stats.Failed,
		)
	}

	return stats, nil
}

func (s *Service) push(ctx context.Context, sc Schedule) *sync.Push {
	remoteID, hasRemote := sc.State.RemoteID()
	op := "create schedule"
	if hasRemote {
		op = "update schedule"
	}

	parentID, err := s.disciplineRemoteID(ctx, sc.DisciplineID)
	if err != nil {
		s.log.Debug("schedule push skipped", "local_id", sc.LocalID, "reason", err)
		return sync.Finished(op, err)
	}

	req := NewRequest(sc.OwnerID, sc.Fields, parentID)

	if hasRemote {
		return s.pusher.Start(ctx, op, func(ctx context.Context) error {
			if _, err := s.remote.UpdateSchedule(ctx, remoteID, req); err != nil {
				return fmt.Errorf("update schedule %d: %w", remoteID, err)
			}
			return s.markSynced(ctx, sc.LocalID, remoteID)
		})
	}

	return s.pusher.Start(ctx, op, func(ctx context.Context) error {
		resp, err := s.remote.CreateSchedule(ctx, req)
		if err != nil {
			return fmt.Errorf("create schedule: %w", err)
		}
		if resp.ID == 0 {
			return ErrNoID
		}
		return s.markSynced(ctx, sc.LocalID, resp.ID)
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
		s.log.Error("failed to mark schedule synced",
			"local_id", localID, "remote_id", remoteID, "error", err)
		return fmt.Errorf("mark schedule synced: %w", err)
	}
	return nil
}

func newView(sc Schedule, d *discipline.Discipline) View {
	v := View{
		Schedule:        sc,
		DayName:         DayName(sc.DayOfWeek),
		Start:           timefmt.NormalizeClock(sc.StartTime),
		End:             timefmt.NormalizeClock(sc.EndTime),
		DisciplineName:  discipline.PlaceholderName,
		DisciplineColor: discipline.PlaceholderColor,
	}
	if d != nil {
		v.DisciplineRemoteID = d.RemoteID()
		v.DisciplineName = d.Name
		v.DisciplineColor = d.Color
	}
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

func toLocals(ss []Schedule) []sync.Local[Fields] {
	out := make([]sync.Local[Fields], 0, len(ss))
	for _, sc := range ss {
		out = append(out, sync.Local[Fields]{LocalID: sc.LocalID, State: sc.State, Fields: sc.Fields})
	}
	return out
}
