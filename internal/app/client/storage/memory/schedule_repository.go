package memory

import (
	"context"
	"sort"

	"tau/internal/domain/schedule"
	"tau/internal/domain/sync"
)

type ScheduleRepository struct {
	st *Storage
}

func NewScheduleRepository(st *Storage) *ScheduleRepository {
	return &ScheduleRepository{st: st}
}

func (r *ScheduleRepository) Insert(_ context.Context, ownerID int64, f schedule.Fields, state sync.State) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	return r.insert(ownerID, f, state), nil
}

func (r *ScheduleRepository) insert(ownerID int64, f schedule.Fields, state sync.State) int64 {
	r.st.nextSchedule++
	id := r.st.nextSchedule
	r.st.schedules[id] = schedule.Schedule{LocalID: id, OwnerID: ownerID, State: state, Fields: f}
	return id
}

func (r *ScheduleRepository) Update(_ context.Context, localID int64, f schedule.Fields, state sync.State) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	sc, ok := r.st.schedules[localID]
	if !ok {
		return nil
	}
	sc.Fields = f
	sc.State = state
	r.st.schedules[localID] = sc
	return nil
}

func (r *ScheduleRepository) SetState(_ context.Context, localID int64, state sync.State) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	sc, ok := r.st.schedules[localID]
	if !ok {
		return nil
	}
	sc.State = state
	r.st.schedules[localID] = sc
	return nil
}

func (r *ScheduleRepository) Delete(_ context.Context, localID int64) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	delete(r.st.schedules, localID)
	return nil
}

func (r *ScheduleRepository) Get(_ context.Context, localID int64) (schedule.Schedule, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	sc, ok := r.st.schedules[localID]
	if !ok {
		return schedule.Schedule{}, schedule.ErrNotFound
	}
	return sc, nil
}

func (r *ScheduleRepository) ListByOwner(_ context.Context, ownerID int64) ([]schedule.Schedule, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	out := make([]schedule.Schedule, 0)
	for _, sc := range r.st.schedules {
		if sc.OwnerID == ownerID {
			out = append(out, sc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LocalID < out[j].LocalID })
	return out, nil
}

func (r *ScheduleRepository) ListByOwnerAsMap(ctx context.Context, ownerID int64) (map[int64]schedule.Schedule, error) {
	list, err := r.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]schedule.Schedule, len(list))
	for _, sc := range list {
		out[sc.LocalID] = sc
	}
	return out, nil
}

func (r *ScheduleRepository) ApplyPull(_ context.Context, ownerID int64, plan sync.Plan[schedule.Fields]) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for _, u := range plan.Updates {
		sc, ok := r.st.schedules[u.LocalID]
		if !ok {
			continue
		}
		sc.Fields = u.Fields
		sc.State = sync.Synced(u.RemoteID)
		r.st.schedules[u.LocalID] = sc
	}
	for _, in := range plan.Inserts {
		r.insert(ownerID, in.Fields, sync.Synced(in.RemoteID))
	}
	return nil
}
