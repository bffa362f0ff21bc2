package ports

import (
	"context"

	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
)

// SignupInput carries a self-service registration. The role is never taken
// from the caller.
type SignupInput struct {
	Name     string
	Username string
	Password string
}

// SigninResult is returned on successful authentication.
type SigninResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	Signin(ctx context.Context, username, password string) (*SigninResult, error)
}
