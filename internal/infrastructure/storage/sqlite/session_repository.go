package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type SessionRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewSessionRepository(db *sql.DB, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		db:  db,
		log: log.With("component", "session_repository"),
	}
}

func (r *SessionRepository) SaveUserID(ctx context.Context, userID int64) error {
	const query = `
		INSERT INTO session (id, user_id) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET user_id = excluded.user_id`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		r.log.Error("failed to save session", "user_id", userID, "error", err)
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) UserID(ctx context.Context) (int64, bool, error) {
	var userID int64
	err := r.db.QueryRowContext(ctx, `SELECT user_id FROM session WHERE id = 1`).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		r.log.Error("failed to read session", "error", err)
		return 0, false, fmt.Errorf("read session: %w", err)
	}
	return userID, true, nil
}

// Clear drops the session and every cached record in one transaction.
func (r *SessionRepository) Clear(ctx context.Context) error {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, table := range []string{"session", "schedules", "tasks", "disciplines"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		r.log.Error("failed to clear session", "error", err)
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
