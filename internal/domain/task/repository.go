package task

import (
	"context"

	"tau/internal/domain/discipline"
	"tau/internal/domain/sync"
)

type Store interface {
	Insert(ctx context.Context, ownerID int64, f Fields, state sync.State) (int64, error)
	Update(ctx context.Context, localID int64, f Fields, state sync.State) error
	SetState(ctx context.Context, localID int64, state sync.State) error
	Delete(ctx context.Context, localID int64) error
	Get(ctx context.Context, localID int64) (Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Task, error)
	ListByOwnerAsMap(ctx context.Context, ownerID int64) (map[int64]Task, error)
	ApplyPull(ctx context.Context, ownerID int64, plan sync.Plan[Fields]) error
}

// Disciplines resolves the local discipline a task points at.
type Disciplines interface {
	Get(ctx context.Context, localID int64) (discipline.Discipline, error)
	ListByOwnerAsMap(ctx context.Context, ownerID int64) (map[int64]discipline.Discipline, error)
}

type Remote interface {
	CreateTask(ctx context.Context, req Request) (Response, error)
	ListTasks(ctx context.Context, filter Filter) ([]Response, error)
	UpdateTask(ctx context.Context, remoteID int64, req Request) (Response, error)
	DeleteTask(ctx context.Context, remoteID int64) error
}
