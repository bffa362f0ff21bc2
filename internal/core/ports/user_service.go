package ports

import (
	"context"

	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
)

// UpdateUserInput carries an administrator edit. Password is re-hashed.
type UpdateUserInput struct {
	Name     string
	Username string
	Password string
}

type UserService interface {
	ListActive(ctx context.Context) ([]domain.User, error)
	GetActive(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, in UpdateUserInput) error
	Deactivate(ctx context.Context, id int64) error
	ListInactive(ctx context.Context) ([]domain.User, error)
	GetInactive(ctx context.Context, id int64) (*domain.User, error)
	Reactivate(ctx context.Context, id int64) error
}
