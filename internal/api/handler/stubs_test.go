package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/araselthenilo/latihan-backend-uts/internal/api/middleware"
	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
	"github.com/araselthenilo/latihan-backend-uts/internal/core/ports"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, in ports.SignupInput) (*domain.User, error)
	signinFn func(ctx context.Context, username, password string) (*ports.SigninResult, error)
}

func (s *stubAuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	return s.signupFn(ctx, in)
}

func (s *stubAuthService) Signin(ctx context.Context, username, password string) (*ports.SigninResult, error) {
	return s.signinFn(ctx, username, password)
}

// stubUserService embeds the interface so each test only sets what it uses.
type stubUserService struct {
	ports.UserService
	listFn         func(ctx context.Context) ([]domain.User, error)
	getFn          func(ctx context.Context, id int64) (*domain.User, error)
	updateFn       func(ctx context.Context, id int64, in ports.UpdateUserInput) error
	deactivateFn   func(ctx context.Context, id int64) error
	listInactiveFn func(ctx context.Context) ([]domain.User, error)
	getInactiveFn  func(ctx context.Context, id int64) (*domain.User, error)
	reactivateFn   func(ctx context.Context, id int64) error
}

func (s *stubUserService) ListActive(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}
func (s *stubUserService) GetActive(ctx context.Context, id int64) (*domain.User, error) {
	return s.getFn(ctx, id)
}
func (s *stubUserService) Update(ctx context.Context, id int64, in ports.UpdateUserInput) error {
	return s.updateFn(ctx, id, in)
}
func (s *stubUserService) Deactivate(ctx context.Context, id int64) error {
	return s.deactivateFn(ctx, id)
}
func (s *stubUserService) ListInactive(ctx context.Context) ([]domain.User, error) {
	return s.listInactiveFn(ctx)
}
func (s *stubUserService) GetInactive(ctx context.Context, id int64) (*domain.User, error) {
	return s.getInactiveFn(ctx, id)
}
func (s *stubUserService) Reactivate(ctx context.Context, id int64) error {
	return s.reactivateFn(ctx, id)
}

type stubProductService struct {
	ports.ProductService
	createFn func(ctx context.Context, in ports.ProductInput) (*domain.Product, error)
	listFn   func(ctx context.Context) ([]domain.Product, error)
	getFn    func(ctx context.Context, id int64) (*domain.Product, error)
	updateFn func(ctx context.Context, id int64, in ports.ProductInput) error
}

func (s *stubProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	return s.createFn(ctx, in)
}
func (s *stubProductService) ListActive(ctx context.Context) ([]domain.Product, error) {
	return s.listFn(ctx)
}
func (s *stubProductService) GetActive(ctx context.Context, id int64) (*domain.Product, error) {
	return s.getFn(ctx, id)
}
func (s *stubProductService) Update(ctx context.Context, id int64, in ports.ProductInput) error {
	return s.updateFn(ctx, id, in)
}

var (
	member = &domain.SessionClaims{UserID: 2, Username: "budi", Role: domain.RoleMember}
	admin  = &domain.SessionClaims{UserID: 1, Username: "root", Role: domain.RoleAdministrator}
)

// newContext builds a request context with the validator registered, the
// given session (may be nil) and optional :id param.
func newContext(method, target, body string, claims *domain.SessionClaims, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set(middleware.ClaimsKey, claims)
	}
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}
