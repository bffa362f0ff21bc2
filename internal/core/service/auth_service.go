package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
	"github.com/araselthenilo/latihan-backend-uts/internal/core/ports"
	"github.com/araselthenilo/latihan-backend-uts/internal/pkg/security"
)

// AuthService implements signup and signin.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenIssuer
	log    zerolog.Logger
	now    func() time.Time

	decoyOnce sync.Once
	decoy     string
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log, now: time.Now}
}

// Signup registers a member account.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	if in.Name == "" || in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidPayload
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: hash,
		Role:         domain.RoleMember,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user signed up")
	return user, nil
}

// Signin checks credentials against the active user with the given username
// and issues a session token. Unknown, inactive and wrong-password cases all
// yield domain.ErrInvalidCredentials.
func (s *AuthService) Signin(ctx context.Context, username, password string) (*ports.SigninResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Spend the same bcrypt work as a real comparison.
			security.CheckPassword(password, s.decoyHash())
			s.log.Info().Str("username", username).Msg("signin rejected: unknown or inactive user")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		s.log.Info().Str("username", username).Msg("signin rejected: wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.NewSessionClaims(user))
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Str("role", user.Role).Msg("user signed in")
	return &ports.SigninResult{Token: token, User: user}, nil
}

func (s *AuthService) decoyHash() string {
	s.decoyOnce.Do(func() {
		s.decoy, _ = security.HashPassword("decoy-password-for-timing")
	})
	return s.decoy
}
