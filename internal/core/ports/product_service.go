package ports

import (
	"context"

	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
)

// ProductInput is the writable column set of a product.
type ProductInput struct {
	Name        string
	ProductCode string
	Price       float64
	Stock       int64
}

type ProductService interface {
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	ListActive(ctx context.Context) ([]domain.Product, error)
	GetActive(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, id int64, in ProductInput) error
	Deactivate(ctx context.Context, id int64) error
	ListInactive(ctx context.Context) ([]domain.Product, error)
	GetInactive(ctx context.Context, id int64) (*domain.Product, error)
	Reactivate(ctx context.Context, id int64) error
}
