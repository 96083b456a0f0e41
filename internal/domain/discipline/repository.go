package discipline

import (
	"context"

	"tau/internal/domain/sync"
)

// Store is the local cache of disciplines.
type Store interface {
	Insert(ctx context.Context, ownerID int64, f Fields, state sync.State) (int64, error)
	// Update is a no-op for an unknown id.
	Update(ctx context.Context, localID int64, f Fields, state sync.State) error
	// SetState records the outcome of a push without touching the fields.
	SetState(ctx context.Context, localID int64, state sync.State) error
	Delete(ctx context.Context, localID int64) error
	Get(ctx context.Context, localID int64) (Discipline, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Discipline, error)
	ListByOwnerAsMap(ctx context.Context, ownerID int64) (map[int64]Discipline, error)
	// ApplyPull writes a reconciliation plan atomically.
	ApplyPull(ctx context.Context, ownerID int64, plan sync.Plan[Fields]) error
}

// Remote is the server side of disciplines.
type Remote interface {
	CreateDiscipline(ctx context.Context, req Request) (Response, error)
	ListDisciplines(ctx context.Context, ownerID int64) ([]Response, error)
	UpdateDiscipline(ctx context.Context, remoteID int64, req Request) (Response, error)
	DeleteDiscipline(ctx context.Context, remoteID int64) error
}
