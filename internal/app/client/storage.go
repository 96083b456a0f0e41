package client

import (
	"fmt"

	"golang.org/x/exp/slog"

	"tau/internal/app/client/storage/memory"
	"tau/internal/domain/discipline"
	"tau/internal/domain/schedule"
	"tau/internal/domain/session"
	"tau/internal/domain/task"
	"tau/internal/infrastructure/storage/sqlite"
)

const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Storage groups the local repositories of one backend.
type Storage struct {
	Kind        string
	Disciplines discipline.Store
	Tasks       task.Store
	Schedules   schedule.Store
	Session     session.Repository
	close       func() error
}

func (s *Storage) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// openStorage opens the SQLite file at path. With fallback set a failure
// is logged and the client keeps working on a process-local store whose
// contents are lost on exit.
func openStorage(path string, fallback bool, log *slog.Logger) (*Storage, error) {
	st, err := sqlite.New(path, log)
	if err != nil {
		if !fallback {
			log.Error("failed to open sqlite storage", "path", path, "error", err)
			return nil, fmt.Errorf("open storage %s: %w", path, err)
		}
		log.Warn("failed to open sqlite storage, falling back to memory", "path", path, "error", err)
		return newMemoryStorage(), nil
	}

	db := st.DB()
	return &Storage{
		Kind:        StorageSQLite,
		Disciplines: sqlite.NewDisciplineRepository(db, log),
		Tasks:       sqlite.NewTaskRepository(db, log),
		Schedules:   sqlite.NewScheduleRepository(db, log),
		Session:     sqlite.NewSessionRepository(db, log),
		close:       st.Close,
	}, nil
}

func newMemoryStorage() *Storage {
	st := memory.New()
	return &Storage{
		Kind:        StorageMemory,
		Disciplines: memory.NewDisciplineRepository(st),
		Tasks:       memory.NewTaskRepository(st),
		Schedules:   memory.NewScheduleRepository(st),
		Session:     memory.NewSessionRepository(st),
		close:       st.Close,
	}
}
