package handler

import (
	"time"

	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
)

// projection decides which columns of a row a caller may see. Members get
// the public columns only; administrators also get timestamps, and the
// password hash when withHash is set.
type projection struct {
	full     bool
	withHash bool
}

func projectionFor(claims *domain.SessionClaims) projection {
	return projection{full: claims.IsAdministrator()}
}

type userView struct {
	UserID    int64      `json:"user_id"`
	Name      string     `json:"name"`
	Username  string     `json:"username"`
	Password  string     `json:"password,omitempty"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type productView struct {
	ProductID   int64      `json:"product_id"`
	Name        string     `json:"name"`
	ProductCode string     `json:"product_code"`
	Price       float64    `json:"price"`
	Stock       int64      `json:"stock"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

func (p projection) user(u domain.User) userView {
	v := userView{
		UserID:   u.ID,
		Name:     u.Name,
		Username: u.Username,
		Role:     u.Role,
	}
	if !p.full {
		return v
	}
	v.CreatedAt = timePtr(u.CreatedAt)
	v.UpdatedAt = timePtr(u.UpdatedAt)
	v.DeletedAt = u.DeletedAt
	if p.withHash {
		v.Password = u.PasswordHash
	}
	return v
}

func (p projection) users(us []domain.User) []userView {
	out := make([]userView, 0, len(us))
	for _, u := range us {
		out = append(out, p.user(u))
	}
	return out
}

func (p projection) product(pr domain.Product) productView {
	v := productView{
		ProductID:   pr.ID,
		Name:        pr.Name,
		ProductCode: pr.ProductCode,
		Price:       pr.Price,
		Stock:       pr.Stock,
	}
	if !p.full {
		return v
	}
	v.CreatedAt = timePtr(pr.CreatedAt)
	v.UpdatedAt = timePtr(pr.UpdatedAt)
	v.DeletedAt = pr.DeletedAt
	return v
}

func (p projection) products(ps []domain.Product) []productView {
	out := make([]productView, 0, len(ps))
	for _, pr := range ps {
		out = append(out, p.product(pr))
	}
	return out
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	t = t.UTC()
	return &t
}
