package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
)

// bindValid decodes the body into req and runs the registered validator.
func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return fmt.Errorf("%w: malformed request body", domain.ErrInvalidPayload)
	}
	if err := c.Validate(req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	return nil
}
