package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/araselthenilo/latihan-backend-uts/internal/api/middleware"
	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
)

// ctxClaims returns the session placed on the context by middleware.Auth.
// A missing session means the route was registered without the gate.
func ctxClaims(c echo.Context) (*domain.SessionClaims, error) {
	claims := middleware.Claims(c)
	if claims == nil {
		return nil, domain.ErrAuthMissing
	}
	return claims, nil
}

// pathID parses the :id segment. Anything that is not a positive integer
// cannot name a row, so it is reported as notFound.
func pathID(c echo.Context, notFound error) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, notFound
	}
	return id, nil
}
