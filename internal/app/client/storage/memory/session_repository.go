package memory

import (
	"context"

	"tau/internal/domain/discipline"
	"tau/internal/domain/schedule"
	"tau/internal/domain/task"
)

type SessionRepository struct {
	st *Storage
}

func NewSessionRepository(st *Storage) *SessionRepository {
	return &SessionRepository{st: st}
}

func (r *SessionRepository) SaveUserID(_ context.Context, userID int64) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	id := userID
	r.st.userID = &id
	return nil
}

func (r *SessionRepository) UserID(_ context.Context) (int64, bool, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	if r.st.userID == nil {
		return 0, false, nil
	}
	return *r.st.userID, true, nil
}

// Clear drops the session and every cached record. Id counters keep
// running so local ids are never reused.
func (r *SessionRepository) Clear(_ context.Context) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	r.st.userID = nil
	r.st.disciplines = make(map[int64]discipline.Discipline)
	r.st.tasks = make(map[int64]task.Task)
	r.st.schedules = make(map[int64]schedule.Schedule)
	return nil
}
