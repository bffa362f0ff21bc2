package domain

import "time"

const (
	RoleMember        = "member"
	RoleAdministrator = "administrator"
)

// User models an account row. PasswordHash never leaves the process unless a
// response projection explicitly asks for it.
type User struct {
	ID           int64      `db:"user_id"`
	Name         string     `db:"name"`
	Username     string     `db:"username"`
	PasswordHash string     `db:"password"`
	Role         string     `db:"role"`
	IsActive     bool       `db:"is_active"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}
