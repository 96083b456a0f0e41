package session

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Save(ctx context.Context, userID int64) error
	Current(ctx context.Context) (int64, error)
	IsLoggedIn(ctx context.Context) bool
	Clear(ctx context.Context) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "session_service"),
	}
}

func (s *Service) Save(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("save session: invalid user id %d", userID)
	}
	if err := s.repo.SaveUserID(ctx, userID); err != nil {
		s.log.Error("failed to save session", "user_id", userID, "error", err)
		return fmt.Errorf("save session: %w", err)
	}
	s.log.Debug("session saved", "user_id", userID)
	return nil
}

// Current returns the logged-in user id or ErrNoSession.
func (s *Service) Current(ctx context.Context) (int64, error) {
	id, ok, err := s.repo.UserID(ctx)
	if err != nil {
		return 0, fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return 0, ErrNoSession
	}
	return id, nil
}

func (s *Service) IsLoggedIn(ctx context.Context) bool {
	_, err := s.Current(ctx)
	return err == nil
}

// Clear logs out and wipes the local cache.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		s.log.Error("failed to clear session", "error", err)
		return fmt.Errorf("clear session: %w", err)
	}
	s.log.Info("session cleared")
	return nil
}
