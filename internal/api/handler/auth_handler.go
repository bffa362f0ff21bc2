package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/araselthenilo/latihan-backend-uts/internal/api/metrics"
	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
	"github.com/araselthenilo/latihan-backend-uts/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	cookie      SessionCookie
}

func NewAuthHandler(authService ports.AuthService, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// Signup registers a member account.
//
// @Summary      Register a new member
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindValid(c, &req); err != nil {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	_, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(signupResult(err)).Inc()
		return err
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	metrics.LifecycleTransitionsTotal.WithLabelValues("user", "create").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "New user added successfully!"})
}

// Signin verifies credentials and sets the session cookie.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  signinResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		metrics.SigninsTotal.WithLabelValues("invalid").Inc()
		return domain.ErrInvalidCredentials
	}

	res, err := h.authService.Signin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.SigninsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.SigninsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.SigninsTotal.WithLabelValues("success").Inc()
	c.SetCookie(h.cookie.issue(res.Token))
	return c.JSON(http.StatusOK, signinResponse{
		Message: "Successfully logged in!",
		User: sessionUser{
			UserID:   res.User.ID,
			Name:     res.User.Name,
			Username: res.User.Username,
			Role:     res.User.Role,
		},
	})
}

// Signout clears the session cookie. The token itself stays valid until it
// expires.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/signout [get]
func (h *AuthHandler) Signout(c echo.Context) error {
	c.SetCookie(h.cookie.clear())
	return c.JSON(http.StatusOK, messageResponse{Message: "Successfully signed out!"})
}

func signupResult(err error) string {
	switch domain.Kind(err) {
	case domain.KindConflict:
		return "duplicate"
	case domain.KindBadRequest:
		return "invalid"
	default:
		return "error"
	}
}
