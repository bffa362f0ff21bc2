package ports

import (
	"context"
	"time"

	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
)

// ProductRepository persists products with the same soft-delete contract as
// UserRepository.
type ProductRepository interface {
	// Create inserts p and sets its ID. Returns domain.ErrProductCodeExists
	// when an active product already holds the code.
	Create(ctx context.Context, p *domain.Product) error
	ListActive(ctx context.Context) ([]domain.Product, error)
	FindActive(ctx context.Context, id int64) (*domain.Product, error)
	UpdateActive(ctx context.Context, id int64, in ProductInput, at time.Time) error
	Deactivate(ctx context.Context, id int64, at time.Time) error
	ListInactive(ctx context.Context) ([]domain.Product, error)
	FindInactive(ctx context.Context, id int64) (*domain.Product, error)
	Reactivate(ctx context.Context, id int64, at time.Time) error
}
