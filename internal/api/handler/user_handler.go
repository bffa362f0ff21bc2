package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/araselthenilo/latihan-backend-uts/internal/api/metrics"
	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
	"github.com/araselthenilo/latihan-backend-uts/internal/core/ports"
)

// UserHandler serves /users. The inactive listings are administrator-only;
// exposeHash controls whether they include the password hash.
type UserHandler struct {
	service    ports.UserService
	exposeHash bool
}

func NewUserHandler(service ports.UserService, exposeInactiveHash bool) *UserHandler {
	return &UserHandler{service: service, exposeHash: exposeInactiveHash}
}

func (h *UserHandler) archive() projection {
	return projection{full: true, withHash: h.exposeHash}
}

// List handles GET /users.
//
// @Summary      List active users
// @Tags         users
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}   userView
// @Failure      401  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	users, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projectionFor(claims).users(users))
}

// Get handles GET /users/:id.
//
// @Summary      Get an active user
// @Tags         users
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  userView
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, domain.ErrUserNotFound)
	if err != nil {
		return err
	}
	user, err := h.service.GetActive(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projectionFor(claims).user(*user))
}

// Update handles PUT /users/:id.
//
// @Summary      Update an active user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int                true  "User ID"
// @Param        body  body      updateUserRequest  true  "New values"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrUserNotFound)
	if err != nil {
		return err
	}
	var req updateUserRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), id, ports.UpdateUserInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
	}); err != nil {
		return err
	}

	metrics.LifecycleTransitionsTotal.WithLabelValues("user", "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User updated successfully!"})
}

// Delete handles DELETE /users/:id. The row is deactivated, not removed.
//
// @Summary      Deactivate a user
// @Tags         users
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrUserNotFound)
	if err != nil {
		return err
	}
	if err := h.service.Deactivate(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.LifecycleTransitionsTotal.WithLabelValues("user", "deactivate").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully!"})
}

// ListInactive handles GET /users/inactive.
//
// @Summary      List deactivated users
// @Tags         users
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}   userView
// @Failure      403  {object}  messageResponse
// @Router       /users/inactive [get]
func (h *UserHandler) ListInactive(c echo.Context) error {
	users, err := h.service.ListInactive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.archive().users(users))
}

// GetInactive handles GET /users/inactive/:id.
//
// @Summary      Get a deactivated user
// @Tags         users
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  userView
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /users/inactive/{id} [get]
func (h *UserHandler) GetInactive(c echo.Context) error {
	id, err := pathID(c, domain.ErrUserNotFound)
	if err != nil {
		return err
	}
	user, err := h.service.GetInactive(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.archive().user(*user))
}

// Reactivate handles POST /users/reactivate/:id.
//
// @Summary      Reactivate a user
// @Tags         users
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /users/reactivate/{id} [post]
func (h *UserHandler) Reactivate(c echo.Context) error {
	id, err := pathID(c, domain.ErrUserNotFound)
	if err != nil {
		return err
	}
	if err := h.service.Reactivate(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.LifecycleTransitionsTotal.WithLabelValues("user", "reactivate").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User reactivated successfully!"})
}
