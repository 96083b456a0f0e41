package memory

import (
	"context"
	"sort"

	"tau/internal/domain/sync"
	"tau/internal/domain/task"
)

type TaskRepository struct {
	st *Storage
}

func NewTaskRepository(st *Storage) *TaskRepository {
	return &TaskRepository{st: st}
}

func (r *TaskRepository) Insert(_ context.Context, ownerID int64, f task.Fields, state sync.State) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	return r.insert(ownerID, f, state), nil
}

func (r *TaskRepository) insert(ownerID int64, f task.Fields, state sync.State) int64 {
	r.st.nextTask++
	id := r.st.nextTask
	r.st.tasks[id] = task.Task{LocalID: id, OwnerID: ownerID, State: state, Fields: f}
	return id
}

func (r *TaskRepository) Update(_ context.Context, localID int64, f task.Fields, state sync.State) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	t, ok := r.st.tasks[localID]
	if !ok {
		return nil
	}
	t.Fields = f
	t.State = state
	r.st.tasks[localID] = t
	return nil
}

func (r *TaskRepository) SetState(_ context.Context, localID int64, state sync.State) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	t, ok := r.st.tasks[localID]
	if !ok {
		return nil
	}
	t.State = state
	r.st.tasks[localID] = t
	return nil
}

func (r *TaskRepository) Delete(_ context.Context, localID int64) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	delete(r.st.tasks, localID)
	return nil
}

func (r *TaskRepository) Get(_ context.Context, localID int64) (task.Task, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	t, ok := r.st.tasks[localID]
	if !ok {
		return task.Task{}, task.ErrNotFound
	}
	return t, nil
}

func (r *TaskRepository) ListByOwner(_ context.Context, ownerID int64) ([]task.Task, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	out := make([]task.Task, 0)
	for _, t := range r.st.tasks {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LocalID < out[j].LocalID })
	return out, nil
}

func (r *TaskRepository) ListByOwnerAsMap(ctx context.Context, ownerID int64) (map[int64]task.Task, error) {
	list, err := r.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]task.Task, len(list))
	for _, t := range list {
		out[t.LocalID] = t
	}
	return out, nil
}

func (r *TaskRepository) ApplyPull(_ context.Context, ownerID int64, plan sync.Plan[task.Fields]) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for _, u := range plan.Updates {
		t, ok := r.st.tasks[u.LocalID]
		if !ok {
			continue
		}
		t.Fields = u.Fields
		t.State = sync.Synced(u.RemoteID)
		r.st.tasks[u.LocalID] = t
	}
	for _, in := range plan.Inserts {
		r.insert(ownerID, in.Fields, sync.Synced(in.RemoteID))
	}
	return nil
}
