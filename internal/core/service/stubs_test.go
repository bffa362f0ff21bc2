package service

import (
	"context"
	"sort"
	"time"

	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
	"github.com/araselthenilo/latihan-backend-uts/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory user repository (mirrors the SQL soft-delete contract)
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	rows   map[int64]*domain.User
	nextID int64
	err    error // if set, every method returns it
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{rows: make(map[int64]*domain.User), nextID: 1}
}

func (r *stubUserRepo) activeUsernameTaken(username string, exceptID int64) bool {
	for id, u := range r.rows {
		if id != exceptID && u.IsActive && u.Username == username {
			return true
		}
	}
	return false
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	if r.err != nil {
		return r.err
	}
	if r.activeUsernameTaken(u.Username, 0) {
		return domain.ErrUsernameExists
	}
	u.ID = r.nextID
	r.nextID++
	clone := *u
	r.rows[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) FindActiveByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.rows {
		if u.IsActive && u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) list(active bool) ([]domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.User{}
	for _, u := range r.rows {
		if u.IsActive == active {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) find(id int64, active bool) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.rows[id]
	if !ok || u.IsActive != active {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) ListActive(_ context.Context) ([]domain.User, error) { return r.list(true) }
func (r *stubUserRepo) ListInactive(_ context.Context) ([]domain.User, error) {
	return r.list(false)
}
func (r *stubUserRepo) FindActive(_ context.Context, id int64) (*domain.User, error) {
	return r.find(id, true)
}
func (r *stubUserRepo) FindInactive(_ context.Context, id int64) (*domain.User, error) {
	return r.find(id, false)
}

func (r *stubUserRepo) UpdateActive(_ context.Context, id int64, in ports.UpdateUserRecord) error {
	if r.err != nil {
		return r.err
	}
	u, ok := r.rows[id]
	if !ok || !u.IsActive {
		return domain.ErrUserNotFound
	}
	if r.activeUsernameTaken(in.Username, id) {
		return domain.ErrUsernameExists
	}
	u.Name, u.Username, u.PasswordHash, u.UpdatedAt = in.Name, in.Username, in.PasswordHash, in.UpdatedAt
	return nil
}

func (r *stubUserRepo) Deactivate(_ context.Context, id int64, at time.Time) error {
	if r.err != nil {
		return r.err
	}
	u, ok := r.rows[id]
	if !ok || !u.IsActive {
		return domain.ErrUserNotFound
	}
	u.IsActive = false
	u.DeletedAt = &at
	return nil
}

func (r *stubUserRepo) Reactivate(_ context.Context, id int64, at time.Time) error {
	if r.err != nil {
		return r.err
	}
	u, ok := r.rows[id]
	if !ok || u.IsActive {
		return domain.ErrUserNotFound
	}
	if r.activeUsernameTaken(u.Username, id) {
		return domain.ErrUsernameExists
	}
	u.IsActive = true
	u.DeletedAt = nil
	u.UpdatedAt = at
	return nil
}

// ---------------------------------------------------------------------------
// In-memory product repository
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	rows   map[int64]*domain.Product
	nextID int64
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{rows: make(map[int64]*domain.Product), nextID: 1}
}

func (r *stubProductRepo) codeTaken(code string, exceptID int64) bool {
	for id, p := range r.rows {
		if id != exceptID && p.IsActive && p.ProductCode == code {
			return true
		}
	}
	return false
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	if r.codeTaken(p.ProductCode, 0) {
		return domain.ErrProductCodeExists
	}
	p.ID = r.nextID
	r.nextID++
	clone := *p
	r.rows[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) list(active bool) []domain.Product {
	out := []domain.Product{}
	for _, p := range r.rows {
		if p.IsActive == active {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *stubProductRepo) find(id int64, active bool) (*domain.Product, error) {
	p, ok := r.rows[id]
	if !ok || p.IsActive != active {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) ListActive(_ context.Context) ([]domain.Product, error) {
	return r.list(true), nil
}
func (r *stubProductRepo) ListInactive(_ context.Context) ([]domain.Product, error) {
	return r.list(false), nil
}
func (r *stubProductRepo) FindActive(_ context.Context, id int64) (*domain.Product, error) {
	return r.find(id, true)
}
func (r *stubProductRepo) FindInactive(_ context.Context, id int64) (*domain.Product, error) {
	return r.find(id, false)
}

func (r *stubProductRepo) UpdateActive(_ context.Context, id int64, in ports.ProductInput, at time.Time) error {
	p, ok := r.rows[id]
	if !ok || !p.IsActive {
		return domain.ErrProductNotFound
	}
	if r.codeTaken(in.ProductCode, id) {
		return domain.ErrProductCodeExists
	}
	p.Name, p.ProductCode, p.Price, p.Stock, p.UpdatedAt = in.Name, in.ProductCode, in.Price, in.Stock, at
	return nil
}

func (r *stubProductRepo) Deactivate(_ context.Context, id int64, at time.Time) error {
	p, ok := r.rows[id]
	if !ok || !p.IsActive {
		return domain.ErrProductNotFound
	}
	p.IsActive = false
	p.DeletedAt = &at
	return nil
}

func (r *stubProductRepo) Reactivate(_ context.Context, id int64, at time.Time) error {
	p, ok := r.rows[id]
	if !ok || p.IsActive {
		return domain.ErrProductNotFound
	}
	if r.codeTaken(p.ProductCode, id) {
		return domain.ErrProductCodeExists
	}
	p.IsActive = true
	p.DeletedAt = nil
	p.UpdatedAt = at
	return nil
}

// ---------------------------------------------------------------------------
// Token issuer stub
// ---------------------------------------------------------------------------

type stubIssuer struct {
	issued []domain.SessionClaims
	err    error
}

func (s *stubIssuer) Issue(claims domain.SessionClaims) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.issued = append(s.issued, claims)
	return "token-for-" + claims.Username, nil
}
