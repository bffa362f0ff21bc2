package domain

import "time"

// Product is a catalog entry. ProductCode is unique among active products.
type Product struct {
	ID          int64      `db:"product_id"`
	Name        string     `db:"name"`
	ProductCode string     `db:"product_code"`
	Price       float64    `db:"price"`
	Stock       int64      `db:"stock"`
	IsActive    bool       `db:"is_active"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}
