package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/araselthenilo/latihan-backend-uts/internal/api/metrics"
	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
)

// RequireAdministrator must run after Auth. A request that never passed Auth
// is rejected as unauthenticated, so 401 always wins over 403.
func RequireAdministrator() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := Claims(c)
			if claims == nil {
				metrics.GateRejectionsTotal.WithLabelValues("administrator", domain.KindAuthMissing.String()).Inc()
				return domain.ErrAuthMissing
			}
			if !claims.IsAdministrator() {
				metrics.GateRejectionsTotal.WithLabelValues("administrator", domain.KindForbidden.String()).Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
