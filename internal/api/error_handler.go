package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns the single place where errors become HTTP
// responses. Internal faults are logged and their text is passed through.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err)
		if code >= http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error) (int, string) {
	// Router 404/405 and bind failures.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch domain.Kind(err) {
	case domain.KindAuthMissing:
		return http.StatusUnauthorized, "Access denied. No token provided."
	case domain.KindAuthExpired:
		return http.StatusUnauthorized, "Session expired. Please sign in again."
	case domain.KindAuthInvalid:
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return http.StatusUnauthorized, "Invalid username or password!"
		}
		return http.StatusUnauthorized, "Invalid token."
	case domain.KindForbidden:
		return http.StatusForbidden, "Access denied: Administrators only!"
	case domain.KindNotFound:
		if errors.Is(err, domain.ErrProductNotFound) {
			return http.StatusNotFound, "Product not found!"
		}
		return http.StatusNotFound, "User not found!"
	case domain.KindConflict:
		if errors.Is(err, domain.ErrProductCodeExists) {
			return http.StatusBadRequest, "Product code already exists!"
		}
		return http.StatusBadRequest, "Username already exists!"
	case domain.KindBadRequest:
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
