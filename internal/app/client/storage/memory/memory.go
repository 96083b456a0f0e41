// Package memory is a process-local store used when the SQLite file cannot
// be opened, and in tests.
package memory

import (
	gosync "sync"

	"tau/internal/domain/discipline"
	"tau/internal/domain/schedule"
	"tau/internal/domain/task"
)

type Storage struct {
	mu gosync.RWMutex

	userID *int64

	disciplines    map[int64]discipline.Discipline
	nextDiscipline int64

	tasks    map[int64]task.Task
	nextTask int64

	schedules    map[int64]schedule.Schedule
	nextSchedule int64
}

func New() *Storage {
	return &Storage{
		disciplines: make(map[int64]discipline.Discipline),
		tasks:       make(map[int64]task.Task),
		schedules:   make(map[int64]schedule.Schedule),
	}
}

func (s *Storage) Close() error {
	return nil
}
