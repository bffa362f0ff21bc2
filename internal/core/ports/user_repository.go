package ports

import (
	"context"
	"time"

	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
)

// UserRepository persists users. Every method is a single statement; "active"
// methods never see soft-deleted rows.
type UserRepository interface {
	// Create inserts u and sets its ID. Returns domain.ErrUsernameExists when
	// an active user already holds the username.
	Create(ctx context.Context, u *domain.User) error
	FindActiveByUsername(ctx context.Context, username string) (*domain.User, error)
	ListActive(ctx context.Context) ([]domain.User, error)
	FindActive(ctx context.Context, id int64) (*domain.User, error)
	UpdateActive(ctx context.Context, id int64, in UpdateUserRecord) error
	Deactivate(ctx context.Context, id int64, at time.Time) error
	ListInactive(ctx context.Context) ([]domain.User, error)
	FindInactive(ctx context.Context, id int64) (*domain.User, error)
	Reactivate(ctx context.Context, id int64, at time.Time) error
}

// UpdateUserRecord is the column set written by an administrator update.
type UpdateUserRecord struct {
	Name         string
	Username     string
	PasswordHash string
	UpdatedAt    time.Time
}
