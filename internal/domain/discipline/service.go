package discipline

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/exp/slog"

	"tau/internal/domain/sync"
)

// Servicer is the reconciling repository used by the app. Get and Delete
// address rows by local id alone: the cache holds the rows of the signed-in
// user only, since logout wipes it.
type Servicer interface {
	Create(ctx context.Context, ownerID int64, f Fields, policy sync.WaitPolicy) (int64, error)
	Update(ctx context.Context, localID, ownerID int64, f Fields, policy sync.WaitPolicy) error
	Delete(ctx context.Context, localID int64, policy sync.WaitPolicy) error
	Get(ctx context.Context, localID int64) (Discipline, error)
	List(ctx context.Context, ownerID int64) ([]Discipline, error)
	PullFromRemote(ctx context.Context, ownerID int64) (sync.PullStats, error)
	PushPending(ctx context.Context, ownerID int64) (sync.PushStats, error)
}

type Service struct {
	store  Store
	remote Remote
	pusher *sync.Pusher
	log    *slog.Logger
}

func NewService(store Store, remote Remote, pusher *sync.Pusher, log *slog.Logger) *Service {
	return &Service{
		store:  store,
		remote: remote,
		pusher: pusher,
		log:    log.With("component", "discipline_service"),
	}
}

// Create stores the discipline locally as unsynced and pushes it to the
// server. The local id is returned even when an awaited push fails.
func (s *Service) Create(ctx context.Context, ownerID int64, f Fields, policy sync.WaitPolicy) (int64, error) {
	localID, err := s.store.Insert(ctx, ownerID, f, sync.Unsynced())
	if err != nil {
		s.log.Error("failed to insert discipline", "owner_id", ownerID, "error", err)
		return 0, fmt.Errorf("insert discipline: %w", err)
	}

	d := Discipline{LocalID: localID, OwnerID: ownerID, State: sync.Unsynced(), Fields: f}

	return localID, s.push(ctx, d).Settle(ctx, policy)
}

// Update stores the edit locally and pushes it. A row owned by another
// user is reported as ErrNotFound.
func (s *Service) Update(ctx context.Context, localID, ownerID int64, f Fields, policy sync.WaitPolicy) error {
	current, err := s.store.Get(ctx, localID)
	if err != nil {
		return err
	}
	if current.OwnerID != ownerID {
		s.log.Warn("refused discipline update for another owner", "local_id", localID, "owner_id", ownerID)
		return ErrNotFound
	}

	state := current.State.Edited()
	if err := s.store.Update(ctx, localID, f, state); err != nil {
		s.log.Error("failed to update discipline", "local_id", localID, "error", err)
		return fmt.Errorf("update discipline: %w", err)
	}

	d := Discipline{LocalID: localID, OwnerID: ownerID, State: state, Fields: f}

	return s.push(ctx, d).Settle(ctx, policy)
}

// Delete removes the discipline locally, then asks the server to do the
// same. The local delete is never rolled back.
func (s *Service) Delete(ctx context.Context, localID int64, policy sync.WaitPolicy) error {
	current, err := s.store.Get(ctx, localID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, localID); err != nil {
		s.log.Error("failed to delete discipline", "local_id", localID, "error", err)
		return fmt.Errorf("delete discipline: %w", err)
	}

	remoteID, ok := current.State.RemoteID()
	if !ok {
		return nil
	}

	push := s.pusher.Start(ctx, "delete discipline", func(ctx context.Context) error {
		err := s.remote.DeleteDiscipline(ctx, remoteID)
		if code, ok := sync.StatusCode(err); ok && code == http.StatusNotFound {
			return nil
		}
		return err
	})

	return push.Settle(ctx, policy)
}

func (s *Service) Get(ctx context.Context, localID int64) (Discipline, error) {
	return s.store.Get(ctx, localID)
}

func (s *Service) List(ctx context.Context, ownerID int64) ([]Discipline, error) {
	return s.store.ListByOwner(ctx, ownerID)
}

// PullFromRemote reconciles the local cache with the server copy. Rows are
// matched by remote id first, then by name among rows that never reached
// the server. Local rows missing on the server are kept.
func (s *Service) PullFromRemote(ctx context.Context, ownerID int64) (sync.PullStats, error) {
	remotes, err := s.remote.ListDisciplines(ctx, ownerID)
	if err != nil {
		s.log.Warn("failed to fetch disciplines", "owner_id", ownerID, "error", err)
		return sync.PullStats{}, fmt.Errorf("list remote disciplines: %w", err)
	}

	locals, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return sync.PullStats{}, fmt.Errorf("list local disciplines: %w", err)
	}

	plan := sync.Reconcile(toLocals(locals), toRemotes(remotes), sameName)

	if err := s.store.ApplyPull(ctx, ownerID, plan); err != nil {
		s.log.Error("failed to apply discipline pull", "owner_id", ownerID, "error", err)
		return sync.PullStats{}, fmt.Errorf("apply discipline pull: %w", err)
	}

	stats := plan.Stats(len(remotes))
	s.log.Info("disciplines pulled",
		"owner_id", ownerID,
		"fetched", stats.Fetched,
		"updated", stats.Updated,
		"inserted", stats.Inserted,
	)

	return stats, nil
}

// PushPending pushes every discipline that is not synced and waits for the
// outcome of each push.
func (s *Service) PushPending(ctx context.Context, ownerID int64) (sync.PushStats, error) {
	locals, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return sync.PushStats{}, fmt.Errorf("list local disciplines: %w", err)
	}

	var stats sync.PushStats
	var pushes []*sync.Push

	for _, d := range locals {
		if d.Synced() {
			continue
		}
		stats.Attempted++
		pushes = append(pushes, s.push(ctx, d))
	}

	for _, p := range pushes {
		if err := p.Wait(ctx); err != nil {
			stats.Failed++
			continue
		}
		stats.Pushed++
	}

	if stats.Attempted > 0 {
		s.log.Info("disciplines pushed",
			"owner_id", ownerID,
			"attempted", stats.Attempted,
			"pushed", stats.Pushed,
			"failed", stats.Failed,
		)
	}

	return stats, nil
}

// push sends d as an update when it has a remote id and as a create otherwise.
func (s *Service) push(ctx context.Context, d Discipline) *sync.Push {
	req := NewRequest(d.OwnerID, d.Fields)

	if remoteID, ok := d.State.RemoteID(); ok {
		return s.pusher.Start(ctx, "update discipline", func(ctx context.Context) error {
			if _, err := s.remote.UpdateDiscipline(ctx, remoteID, req); err != nil {
				return fmt.Errorf("update discipline %d: %w", remoteID, err)
			}
			return s.markSynced(ctx, d.LocalID, remoteID)
		})
	}

	return s.pusher.Start(ctx, "create discipline", func(ctx context.Context) error {
		resp, err := s.remote.CreateDiscipline(ctx, req)
		if err != nil {
			return fmt.Errorf("create discipline: %w", err)
		}
		if resp.ID == 0 {
			return ErrNoID
		}
		return s.markSynced(ctx, d.LocalID, resp.ID)
	})
}

func (s *Service) markSynced(ctx context.Context, localID, remoteID int64) error {
	if err := s.store.SetState(ctx, localID, sync.Synced(remoteID)); err != nil {
		s.log.Error("failed to mark discipline synced",
			"local_id", localID, "remote_id", remoteID, "error", err)
		return fmt.Errorf("mark discipline synced: %w", err)
	}
	return nil
}

func sameName(l sync.Local[Fields], r sync.Remote[Fields]) bool {
	return l.Fields.Name == r.Fields.Name
}

func toLocals(ds []Discipline) []sync.Local[Fields] {
	out := make([]sync.Local[Fields], 0, len(ds))
	for _, d := range ds {
		out = append(out, sync.Local[Fields]{LocalID: d.LocalID, State: d.State, Fields: d.Fields})
	}
	return out
}

func toRemotes(rs []Response) []sync.Remote[Fields] {
	out := make([]sync.Remote[Fields], 0, len(rs))
	for _, r := range rs {
		out = append(out, sync.Remote[Fields]{RemoteID: r.ID, Fields: r.Fields()})
	}
	return out
}
