package memory

import (
	"context"
	"sort"

	"tau/internal/domain/discipline"
	"tau/internal/domain/sync"
)

type DisciplineRepository struct {
	st *Storage
}

func NewDisciplineRepository(st *Storage) *DisciplineRepository {
	return &DisciplineRepository{st: st}
}

func (r *DisciplineRepository) Insert(_ context.Context, ownerID int64, f discipline.Fields, state sync.State) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	return r.insert(ownerID, f, state), nil
}

func (r *DisciplineRepository) insert(ownerID int64, f discipline.Fields, state sync.State) int64 {
	r.st.nextDiscipline++
	id := r.st.nextDiscipline
	r.st.disciplines[id] = discipline.Discipline{LocalID: id, OwnerID: ownerID, State: state, Fields: f}
	return id
}

func (r *DisciplineRepository) Update(_ context.Context, localID int64, f discipline.Fields, state sync.State) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	d, ok := r.st.disciplines[localID]
	if !ok {
		return nil
	}
	d.Fields = f
	d.State = state
	r.st.disciplines[localID] = d
	return nil
}

func (r *DisciplineRepository) SetState(_ context.Context, localID int64, state sync.State) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	d, ok := r.st.disciplines[localID]
	if !ok {
		return nil
	}
	d.State = state
	r.st.disciplines[localID] = d
	return nil
}

func (r *DisciplineRepository) Delete(_ context.Context, localID int64) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	delete(r.st.disciplines, localID)
	return nil
}

func (r *DisciplineRepository) Get(_ context.Context, localID int64) (discipline.Discipline, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	d, ok := r.st.disciplines[localID]
	if !ok {
		return discipline.Discipline{}, discipline.ErrNotFound
	}
	return d, nil
}

func (r *DisciplineRepository) ListByOwner(_ context.Context, ownerID int64) ([]discipline.Discipline, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	out := make([]discipline.Discipline, 0)
	for _, d := range r.st.disciplines {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LocalID < out[j].LocalID })
	return out, nil
}

func (r *DisciplineRepository) ListByOwnerAsMap(ctx context.Context, ownerID int64) (map[int64]discipline.Discipline, error) {
	list, err := r.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]discipline.Discipline, len(list))
	for _, d := range list {
		out[d.LocalID] = d
	}
	return out, nil
}

func (r *DisciplineRepository) ApplyPull(_ context.Context, ownerID int64, plan sync.Plan[discipline.Fields]) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for _, u := range plan.Updates {
		d, ok := r.st.disciplines[u.LocalID]
		if !ok {
			continue
		}
		d.Fields = u.Fields
		d.State = sync.Synced(u.RemoteID)
		r.st.disciplines[u.LocalID] = d
	}
	for _, in := range plan.Inserts {
		r.insert(ownerID, in.Fields, sync.Synced(in.RemoteID))
	}
	return nil
}
