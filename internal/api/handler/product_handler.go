package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/araselthenilo/latihan-backend-uts/internal/api/metrics"
	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
	"github.com/araselthenilo/latihan-backend-uts/internal/core/ports"
)

type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func toProductInput(req productRequest) ports.ProductInput {
	return ports.ProductInput{
		Name:        req.Name,
		ProductCode: req.ProductCode,
		Price:       *req.Price,
		Stock:       *req.Stock,
	}
}

// Create handles POST /products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      productRequest  true  "Product"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if _, err := h.service.Create(c.Request().Context(), toProductInput(req)); err != nil {
		return err
	}
	metrics.LifecycleTransitionsTotal.WithLabelValues("product", "create").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "New product added successfully!"})
}

// List handles GET /products.
//
// @Summary      List active products
// @Tags         products
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}   productView
// @Failure      401  {object}  messageResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	products, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projectionFor(claims).products(products))
}

// Get handles GET /products/:id.
//
// @Summary      Get an active product
// @Tags         products
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  productView
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, domain.ErrProductNotFound)
	if err != nil {
		return err
	}
	product, err := h.service.GetActive(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projectionFor(claims).product(*product))
}

// Update handles PUT /products/:id.
//
// @Summary      Update an active product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int             true  "Product ID"
// @Param        body  body      productRequest  true  "New values"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrProductNotFound)
	if err != nil {
		return err
	}
	var req productRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := h.service.Update(c.Request().Context(), id, toProductInput(req)); err != nil {
		return err
	}
	metrics.LifecycleTransitionsTotal.WithLabelValues("product", "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Product updated successfully!"})
}

// Delete handles DELETE /products/:id.
//
// @Summary      Deactivate a product
// @Tags         products
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrProductNotFound)
	if err != nil {
		return err
	}
	if err := h.service.Deactivate(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.LifecycleTransitionsTotal.WithLabelValues("product", "deactivate").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Product deleted successfully!"})
}

// ListInactive handles GET /products/inactive.
//
// @Summary      List deactivated products
// @Tags         products
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}   productView
// @Failure      403  {object}  messageResponse
// @Router       /products/inactive [get]
func (h *ProductHandler) ListInactive(c echo.Context) error {
	products, err := h.service.ListInactive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projection{full: true}.products(products))
}

// GetInactive handles GET /products/inactive/:id.
//
// @Summary      Get a deactivated product
// @Tags         products
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  productView
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /products/inactive/{id} [get]
func (h *ProductHandler) GetInactive(c echo.Context) error {
	id, err := pathID(c, domain.ErrProductNotFound)
	if err != nil {
		return err
	}
	product, err := h.service.GetInactive(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projection{full: true}.product(*product))
}

// Reactivate handles POST /products/reactivate/:id.
//
// @Summary      Reactivate a product
// @Tags         products
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /products/reactivate/{id} [post]
func (h *ProductHandler) Reactivate(c echo.Context) error {
	id, err := pathID(c, domain.ErrProductNotFound)
	if err != nil {
		return err
	}
	if err := h.service.Reactivate(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.LifecycleTransitionsTotal.WithLabelValues("product", "reactivate").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Product reactivated successfully!"})
}
