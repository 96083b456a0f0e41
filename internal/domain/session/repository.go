package session

import (
	"context"
)

// Repository persists the single cached user id.
type Repository interface {
	// SaveUserID replaces any stored id.
	SaveUserID(ctx context.Context, userID int64) error
	// UserID reports false when nobody is logged in.
	UserID(ctx context.Context) (int64, bool, error)
	// Clear removes the session and every cached record.
	Clear(ctx context.Context) error
}
