package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
	"github.com/araselthenilo/latihan-backend-uts/internal/core/ports"
	"github.com/araselthenilo/latihan-backend-uts/internal/pkg/security"
)

// UserService implements the administrator user-management use cases.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log, now: time.Now}
}

func (s *UserService) ListActive(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListActive(ctx)
}

func (s *UserService) GetActive(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindActive(ctx, id)
}

// Update rewrites name, username and password of an active user.
func (s *UserService) Update(ctx context.Context, id int64, in ports.UpdateUserInput) error {
	if in.Name == "" || in.Username == "" || in.Password == "" {
		return domain.ErrInvalidPayload
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateActive(ctx, id, ports.UpdateUserRecord{
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: hash,
		UpdatedAt:    s.now().UTC(),
	}); err != nil {
		return err
	}

	s.log.Info().Int64("user_id", id).Str("username", in.Username).Msg("user updated")
	return nil
}

// Deactivate soft-deletes an active user.
func (s *UserService) Deactivate(ctx context.Context, id int64) error {
	if err := s.repo.Deactivate(ctx, id, s.now().UTC()); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Msg("user deactivated")
	return nil
}

func (s *UserService) ListInactive(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListInactive(ctx)
}

func (s *UserService) GetInactive(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindInactive(ctx, id)
}

// Reactivate restores a soft-deleted user. An already-active id is reported
// as domain.ErrUserNotFound.
func (s *UserService) Reactivate(ctx context.Context, id int64) error {
	if err := s.repo.Reactivate(ctx, id, s.now().UTC()); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Msg("user reactivated")
	return nil
}
