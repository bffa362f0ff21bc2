package api

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/araselthenilo/latihan-backend-uts/docs"
	"github.com/araselthenilo/latihan-backend-uts/internal/api/handler"
	"github.com/araselthenilo/latihan-backend-uts/internal/api/metrics"
	"github.com/araselthenilo/latihan-backend-uts/internal/api/middleware"
	"github.com/araselthenilo/latihan-backend-uts/internal/core/service"
	"github.com/araselthenilo/latihan-backend-uts/internal/infrastructure/db/sqlstore"
	"github.com/araselthenilo/latihan-backend-uts/internal/pkg/config"
	"github.com/araselthenilo/latihan-backend-uts/internal/pkg/security"
)

const metricsNamespace = "storefront"

// Deps is everything the router needs from main.
type Deps struct {
	Config   *config.Config
	DB       *sqlx.DB
	Registry *prometheus.Registry
	Logger   zerolog.Logger
}

// gate is the access requirement declared for a route.
type gate int

const (
	public gate = iota
	authenticated
	administrator
)

type route struct {
	method  string
	path    string
	gate    gate
	handler echo.HandlerFunc
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(deps Deps) (*echo.Echo, error) {
	cfg := deps.Config

	if err := metrics.Register(deps.Registry); err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}
	if err := deps.Registry.Register(collectors.NewDBStatsCollector(deps.DB.DB, metricsNamespace)); err != nil {
		return nil, fmt.Errorf("registering db stats: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	httpLog := deps.Logger.With().Str("component", "http").Logger()
	e.HTTPErrorHandler = NewHTTPErrorHandler(httpLog)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(httpLog))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  metricsNamespace,
		Subsystem:  "http",
		Registerer: deps.Registry,
	}))

	// --- Dependencies ---
	tokens := security.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL.Duration())
	users := sqlstore.NewUserRepository(deps.DB)
	products := sqlstore.NewProductRepository(deps.DB)

	authHandler := handler.NewAuthHandler(
		service.NewAuthService(users, tokens, deps.Logger.With().Str("component", "auth").Logger()),
		handler.NewSessionCookie(cfg.IsProduction()),
	)
	userHandler := handler.NewUserHandler(
		service.NewUserService(users, deps.Logger.With().Str("component", "users").Logger()),
		cfg.ExposeInactivePasswordHash,
	)
	productHandler := handler.NewProductHandler(
		service.NewProductService(products, deps.Logger.With().Str("component", "products").Logger()),
	)
	healthHandler := handler.NewHealthHandler(deps.DB)

	routes := []route{
		{http.MethodGet, "/", public, healthHandler.Root},
		{http.MethodGet, "/health", public, healthHandler.Liveness},
		{http.MethodGet, "/health/ready", public, healthHandler.Readiness},

		{http.MethodPost, "/auth/signup", public, authHandler.Signup},
		{http.MethodPost, "/auth/signin", public, authHandler.Signin},
		{http.MethodGet, "/auth/signout", public, authHandler.Signout},

		{http.MethodGet, "/users/inactive", administrator, userHandler.ListInactive},
		{http.MethodGet, "/users/inactive/:id", administrator, userHandler.GetInactive},
		{http.MethodPost, "/users/reactivate/:id", administrator, userHandler.Reactivate},
		{http.MethodGet, "/users", authenticated, userHandler.List},
		{http.MethodGet, "/users/:id", authenticated, userHandler.Get},
		{http.MethodPut, "/users/:id", administrator, userHandler.Update},
		{http.MethodDelete, "/users/:id", administrator, userHandler.Delete},

		{http.MethodGet, "/products/inactive", administrator, productHandler.ListInactive},
		{http.MethodGet, "/products/inactive/:id", administrator, productHandler.GetInactive},
		{http.MethodPost, "/products/reactivate/:id", administrator, productHandler.Reactivate},
		{http.MethodGet, "/products", authenticated, productHandler.List},
		{http.MethodGet, "/products/:id", authenticated, productHandler.Get},
		{http.MethodPost, "/products", administrator, productHandler.Create},
		{http.MethodPut, "/products/:id", administrator, productHandler.Update},
		{http.MethodDelete, "/products/:id", administrator, productHandler.Delete},
	}

	authn := middleware.Auth(tokens)
	authz := middleware.RequireAdministrator()
	for _, r := range routes {
		var mws []echo.MiddlewareFunc
		switch r.gate {
		case authenticated:
			mws = []echo.MiddlewareFunc{authn}
		case administrator:
			mws = []echo.MiddlewareFunc{authn, authz}
		}
		e.Add(r.method, r.path, r.handler, mws...)
	}

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Registry}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
