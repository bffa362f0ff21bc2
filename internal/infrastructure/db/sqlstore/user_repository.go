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

const userColumns = `user_id, name, username, password, role, is_active, created_at, updated_at, deleted_at`

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ ports.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (name, username, password, role, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, TRUE, ?, ?)`,
		u.Name, u.Username, u.PasswordHash, u.Role, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrUsernameExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert user: last id: %w", err)
	}
	u.ID = id
	u.IsActive = true
	return nil
}

func (r *UserRepository) FindActiveByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE is_active = TRUE AND username = ?`, username)
}

func (r *UserRepository) ListActive(ctx context.Context) ([]domain.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE is_active = TRUE ORDER BY user_id`)
}

func (r *UserRepository) FindActive(ctx context.Context, id int64) (*domain.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE is_active = TRUE AND user_id = ?`, id)
}

func (r *UserRepository) ListInactive(ctx context.Context) ([]domain.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE is_active = FALSE ORDER BY user_id`)
}

func (r *UserRepository) FindInactive(ctx context.Context, id int64) (*domain.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE is_active = FALSE AND user_id = ?`, id)
}

func (r *UserRepository) UpdateActive(ctx context.Context, id int64, in ports.UpdateUserRecord) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET name = ?, username = ?, password = ?, updated_at = ?
		WHERE is_active = TRUE AND user_id = ?`,
		in.Name, in.Username, in.PasswordHash, in.UpdatedAt, id,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrUsernameExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return expectOne(res, domain.ErrUserNotFound)
}

func (r *UserRepository) Deactivate(ctx context.Context, id int64, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET is_active = FALSE, deleted_at = ?, updated_at = ?
		WHERE is_active = TRUE AND user_id = ?`,
		at, at, id,
	)
	if err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	return expectOne(res, domain.ErrUserNotFound)
}

func (r *UserRepository) Reactivate(ctx context.Context, id int64, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET is_active = TRUE, deleted_at = NULL, updated_at = ?
		WHERE is_active = FALSE AND user_id = ?`,
		at, id,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrUsernameExists
		}
		return fmt.Errorf("reactivate user: %w", err)
	}
	return expectOne(res, domain.ErrUserNotFound)
}

func (r *UserRepository) get(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var u domain.User
	if err := r.db.GetContext(ctx, &u, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) list(ctx context.Context, query string) ([]domain.User, error) {
	users := []domain.User{}
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
