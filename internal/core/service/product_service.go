package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
	"github.com/araselthenilo/latihan-backend-uts/internal/core/ports"
)

type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log, now: time.Now}
}

// Create inserts a new active product.
func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	if in.Name == "" || in.ProductCode == "" {
		return nil, domain.ErrInvalidPayload
	}

	now := s.now().UTC()
	p := &domain.Product{
		Name:        in.Name,
		ProductCode: in.ProductCode,
		Price:       in.Price,
		Stock:       in.Stock,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info().Int64("product_id", p.ID).Str("product_code", p.ProductCode).Msg("product created")
	return p, nil
}

func (s *ProductService) ListActive(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListActive(ctx)
}

func (s *ProductService) GetActive(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.FindActive(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, id int64, in ports.ProductInput) error {
	if in.Name == "" || in.ProductCode == "" {
		return domain.ErrInvalidPayload
	}
	if err := s.repo.UpdateActive(ctx, id, in, s.now().UTC()); err != nil {
		return err
	}
	s.log.Info().Int64("product_id", id).Str("product_code", in.ProductCode).Msg("product updated")
	return nil
}

func (s *ProductService) Deactivate(ctx context.Context, id int64) error {
	if err := s.repo.Deactivate(ctx, id, s.now().UTC()); err != nil {
		return err
	}
	s.log.Info().Int64("product_id", id).Msg("product deactivated")
	return nil
}

func (s *ProductService) ListInactive(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListInactive(ctx)
}

func (s *ProductService) GetInactive(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.FindInactive(ctx, id)
}

// Reactivate restores a soft-deleted product. An already-active id is
// reported as domain.ErrProductNotFound.
func (s *ProductService) Reactivate(ctx context.Context, id int64) error {
	if err := s.repo.Reactivate(ctx, id, s.now().UTC()); err != nil {
		return err
	}
	s.log.Info().Int64("product_id", id).Msg("product reactivated")
	return nil
}
