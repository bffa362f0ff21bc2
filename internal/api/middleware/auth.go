package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/araselthenilo/latihan-backend-uts/internal/api/metrics"
	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
	"github.com/araselthenilo/latihan-backend-uts/internal/core/ports"
)

const (
	// CookieName is the session cookie set on signin.
	CookieName = "token"
	// ClaimsKey is the echo.Context key holding *domain.SessionClaims.
	ClaimsKey = "session"
)

// Auth reads the session cookie, verifies it and stores the claims on the
// context. Missing cookies fail with domain.ErrAuthMissing; bad or expired
// tokens with the verifier's error.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				metrics.GateRejectionsTotal.WithLabelValues("authenticate", domain.KindAuthMissing.String()).Inc()
				return domain.ErrAuthMissing
			}

			claims, err := verifier.Verify(cookie.Value)
			if err != nil {
				metrics.GateRejectionsTotal.WithLabelValues("authenticate", domain.Kind(err).String()).Inc()
				return err
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// Claims returns the session stored by Auth, or nil.
func Claims(c echo.Context) *domain.SessionClaims {
	claims, _ := c.Get(ClaimsKey).(*domain.SessionClaims)
	return claims
}
