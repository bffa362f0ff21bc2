package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"missing token", domain.ErrAuthMissing, http.StatusUnauthorized, "Access denied. No token provided."},
		{"invalid token", fmt.Errorf("%w: signature is invalid", domain.ErrAuthInvalid), http.StatusUnauthorized, "Invalid token."},
		{"expired token", domain.ErrAuthExpired, http.StatusUnauthorized, "Session expired. Please sign in again."},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password!"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "Access denied: Administrators only!"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "User not found!"},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound, "Product not found!"},
		{"username taken", domain.ErrUsernameExists, http.StatusBadRequest, "Username already exists!"},
		{"code taken", domain.ErrProductCodeExists, http.StatusBadRequest, "Product code already exists!"},
		{"bad payload", fmt.Errorf("%w: name is required", domain.ErrInvalidPayload), http.StatusBadRequest, "invalid payload: name is required"},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"internal", errors.New("connection refused"), http.StatusInternalServerError, "connection refused"},
	}

	h := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			h(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body["message"] != tc.msg {
				t.Fatalf("expected message %q, got %q", tc.msg, body["message"])
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.NoContent(http.StatusAccepted)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrForbidden, c)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
}
