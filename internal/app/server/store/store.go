// Package store keeps the server side data of the stub API in memory.
package store

import (
	"errors"
	"sort"
	"strings"
	gosync "sync"

	"tau/internal/domain/discipline"
	"tau/internal/domain/schedule"
	"tau/internal/domain/task"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
)

type Account struct {
	ID           int64
	Email        string
	PasswordHash []byte
}

type Store struct {
	mu gosync.RWMutex

	accounts map[string]Account
	nextUser int64

	disciplines    map[int64]discipline.Response
	nextDiscipline int64

	tasks    map[int64]task.Response
	nextTask int64

	schedules    map[int64]schedule.Response
	nextSchedule int64
}

func New() *Store {
	return &Store{
		accounts:    make(map[string]Account),
		disciplines: make(map[int64]discipline.Response),
		tasks:       make(map[int64]task.Response),
		schedules:   make(map[int64]schedule.Response),
	}
}

// Counts is the number of rows held per collection.
type Counts struct {
	Accounts    int
	Disciplines int
	Tasks       int
	Schedules   int
}

func (s *Store) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Counts{
		Accounts:    len(s.accounts),
		Disciplines: len(s.disciplines),
		Tasks:       len(s.tasks),
		Schedules:   len(s.schedules),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Store) CreateAccount(email string, hash []byte) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := emailKey(email)
	if _, ok := s.accounts[key]; ok {
		return Account{}, ErrEmailTaken
	}
	s.nextUser++
	a := Account{ID: s.nextUser, Email: email, PasswordHash: hash}
	s.accounts[key] = a
	return a, nil
}

func (s *Store) AccountByEmail(email string) (Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[emailKey(email)]
	if !ok {
		return Account{}, ErrNotFound
	}
	return a, nil
}

func (s *Store) CreateDiscipline(d discipline.Response) discipline.Response {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextDiscipline++
	d.ID = s.nextDiscipline
	s.disciplines[d.ID] = d
	return d
}

// Disciplines lists disciplines ordered by id; ownerID 0 lists all of them.
func (s *Store) Disciplines(ownerID int64) []discipline.Response {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]discipline.Response, 0)
	for _, d := range s.disciplines {
		if ownerID == 0 || d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) UpdateDiscipline(d discipline.Response) (discipline.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.disciplines[d.ID]; !ok {
		return discipline.Response{}, ErrNotFound
	}
	s.disciplines[d.ID] = d
	return d, nil
}

func (s *Store) DeleteDiscipline(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.disciplines[id]; !ok {
		return ErrNotFound
	}
	delete(s.disciplines, id)
	return nil
}

func (s *Store) CreateTask(t task.Response) task.Response {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextTask++
	t.ID = s.nextTask
	s.tasks[t.ID] = t
	return t
}

// Tasks lists tasks ordered by id that keep returns true for.
func (s *Store) Tasks(keep func(task.Response) bool) []task.Response {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]task.Response, 0)
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) UpdateTask(t task.Response) (task.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[t.ID]; !ok {
		return task.Response{}, ErrNotFound
	}
	s.tasks[t.ID] = t
	return t, nil
}

func (s *Store) DeleteTask(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *Store) CreateSchedule(sc schedule.Response) schedule.Response {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSchedule++
	sc.ID = s.nextSchedule
	s.schedules[sc.ID] = sc
	return sc
}

func (s *Store) Schedules(ownerID int64) []schedule.Response {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]schedule.Response, 0)
	for _, sc := range s.schedules {
		if ownerID == 0 || sc.OwnerID == ownerID {
			out = append(out, sc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) UpdateSchedule(sc schedule.Response) (schedule.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.schedules[sc.ID]; !ok {
		return schedule.Response{}, ErrNotFound
	}
	s.schedules[sc.ID] = sc
	return sc, nil
}

func (s *Store) DeleteSchedule(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.schedules[id]; !ok {
		return ErrNotFound
	}
	delete(s.schedules, id)
	return nil
}
