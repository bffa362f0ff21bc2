package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
	"github.com/araselthenilo/latihan-backend-uts/internal/core/ports"
)

const productColumns = `product_id, name, product_code, price, stock, is_active, created_at, updated_at, deleted_at`

type ProductRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

var _ ports.ProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO products (name, product_code, price, stock, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, TRUE, ?, ?)`,
		p.Name, p.ProductCode, p.Price, p.Stock, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrProductCodeExists
		}
		return fmt.Errorf("insert product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert product: last id: %w", err)
	}
	p.ID = id
	p.IsActive = true
	return nil
}

func (r *ProductRepository) ListActive(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE is_active = TRUE ORDER BY product_id`)
}

func (r *ProductRepository) FindActive(ctx context.Context, id int64) (*domain.Product, error) {
	return r.get(ctx, `SELECT `+productColumns+` FROM products WHERE is_active = TRUE AND product_id = ?`, id)
}

func (r *ProductRepository) ListInactive(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE is_active = FALSE ORDER BY product_id`)
}

func (r *ProductRepository) FindInactive(ctx context.Context, id int64) (*domain.Product, error) {
	return r.get(ctx, `SELECT `+productColumns+` FROM products WHERE is_active = FALSE AND product_id = ?`, id)
}

func (r *ProductRepository) UpdateActive(ctx context.Context, id int64, in ports.ProductInput, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = ?, product_code = ?, price = ?, stock = ?, updated_at = ?
		WHERE is_active = TRUE AND product_id = ?`,
		in.Name, in.ProductCode, in.Price, in.Stock, at, id,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrProductCodeExists
		}
		return fmt.Errorf("update product: %w", err)
	}
	return expectOne(res, domain.ErrProductNotFound)
}

func (r *ProductRepository) Deactivate(ctx context.Context, id int64, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET is_active = FALSE, deleted_at = ?, updated_at = ?
		WHERE is_active = TRUE AND product_id = ?`,
		at, at, id,
	)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	return expectOne(res, domain.ErrProductNotFound)
}

func (r *ProductRepository) Reactivate(ctx context.Context, id int64, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET is_active = TRUE, deleted_at = NULL, updated_at = ?
		WHERE is_active = FALSE AND product_id = ?`,
		at, id,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrProductCodeExists
		}
		return fmt.Errorf("reactivate product: %w", err)
	}
	return expectOne(res, domain.ErrProductNotFound)
}

func (r *ProductRepository) get(ctx context.Context, query string, args ...any) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) list(ctx context.Context, query string) ([]domain.Product, error) {
	products := []domain.Product{}
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
