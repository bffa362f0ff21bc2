package domain

import "time"

// SessionClaims is the identity carried by a signed session token. It is never
// persisted server-side.
type SessionClaims struct {
	UserID    int64
	Name      string
	Username  string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// NewSessionClaims copies the identity fields of u. Timestamps are filled in
// by the token issuer.
func NewSessionClaims(u *User) SessionClaims {
	return SessionClaims{
		UserID:   u.ID,
		Name:     u.Name,
		Username: u.Username,
		Role:     u.Role,
	}
}

func (s *SessionClaims) IsAdministrator() bool {
	return s != nil && s.Role == RoleAdministrator
}
