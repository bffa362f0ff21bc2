package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
)

const defaultTokenTTL = time.Hour

type tokenClaims struct {
	UserID   int64  `json:"user_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies session tokens with a process-wide secret.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer returns an issuer using secret for HS256 signatures. A
// negative ttl falls back to one hour; zero is kept so callers can mint
// already-expired tokens.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl < 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the time source. Intended for tests.
func (i *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	i.now = now
	return i
}

// TTL returns the lifetime applied by Issue.
func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs claims with the configured lifetime.
func (i *TokenIssuer) Issue(claims domain.SessionClaims) (string, error) {
	return i.IssueWithTTL(claims, i.ttl)
}

// IssueWithTTL signs claims valid for ttl from now.
func (i *TokenIssuer) IssueWithTTL(claims domain.SessionClaims, ttl time.Duration) (string, error) {
	now := i.now()
	tc := tokenClaims{
		UserID:   claims.UserID,
		Name:     claims.Name,
		Username: claims.Username,
		Role:     claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(claims.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tc).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of token. It returns
// domain.ErrAuthExpired for a well-signed token past its expiry and
// domain.ErrAuthInvalid for everything else.
func (i *TokenIssuer) Verify(token string) (*domain.SessionClaims, error) {
	tc := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, tc, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrAuthExpired
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthInvalid, err)
	}
	if !parsed.Valid {
		return nil, domain.ErrAuthInvalid
	}

	claims := &domain.SessionClaims{
		UserID:   tc.UserID,
		Name:     tc.Name,
		Username: tc.Username,
		Role:     tc.Role,
	}
	if tc.IssuedAt != nil {
		claims.IssuedAt = tc.IssuedAt.Time
	}
	if tc.ExpiresAt != nil {
		claims.ExpiresAt = tc.ExpiresAt.Time
	}
	return claims, nil
}
