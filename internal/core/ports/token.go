package ports

import "github.com/araselthenilo/latihan-backend-uts/internal/core/domain"

// TokenIssuer mints signed session tokens.
type TokenIssuer interface {
	Issue(claims domain.SessionClaims) (string, error)
}

// TokenVerifier validates a session token. Failures are domain.ErrAuthInvalid
// or domain.ErrAuthExpired.
type TokenVerifier interface {
	Verify(token string) (*domain.SessionClaims, error)
}
