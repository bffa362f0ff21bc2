package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/araselthenilo/latihan-backend-uts/internal/core/domain"
	"github.com/araselthenilo/latihan-backend-uts/internal/core/ports"
	"github.com/araselthenilo/latihan-backend-uts/internal/pkg/security"
)

func newAuthService(repo *stubUserRepo, issuer ports.TokenIssuer) *AuthService {
	return NewAuthService(repo, issuer, zerolog.Nop())
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubIssuer{})

	user, err := svc.Signup(context.Background(), ports.SignupInput{Name: "Budi", Username: "budi", Password: "pass123"})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected id to be assigned")
	}
	if user.Role != domain.RoleMember {
		t.Fatalf("signup must always create members, got %q", user.Role)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !user.IsActive || user.CreatedAt.IsZero() {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubIssuer{})

	for _, in := range []ports.SignupInput{
		{Username: "budi", Password: "x"},
		{Name: "Budi", Password: "x"},
		{Name: "Budi", Username: "budi"},
	} {
		if _, err := svc.Signup(context.Background(), in); !errors.Is(err, domain.ErrInvalidPayload) {
			t.Fatalf("Signup(%+v): expected ErrInvalidPayload, got %v", in, err)
		}
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubIssuer{})

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Name: "Budi", Username: "budi", Password: "a"}); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if _, err := svc.Signup(context.Background(), ports.SignupInput{Name: "Budi 2", Username: "budi", Password: "b"}); !errors.Is(err, domain.ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected exactly one row, got %d", len(repo.rows))
	}
}

func TestAuthService_Signin_Success(t *testing.T) {
	repo := newStubUserRepo()
	issuer := &stubIssuer{}
	svc := newAuthService(repo, issuer)

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Name: "Sari", Username: "sari", Password: "s3cret"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	res, err := svc.Signin(context.Background(), "sari", "s3cret")
	if err != nil {
		t.Fatalf("signin: %v", err)
	}
	if res.Token != "token-for-sari" {
		t.Fatalf("unexpected token %q", res.Token)
	}
	if res.User == nil || res.User.Username != "sari" {
		t.Fatalf("unexpected user: %+v", res.User)
	}
	if len(issuer.issued) != 1 || issuer.issued[0].Role != domain.RoleMember || issuer.issued[0].UserID != res.User.ID {
		t.Fatalf("unexpected claims issued: %+v", issuer.issued)
	}
}

func TestAuthService_Signin_RealTokenRoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	issuer := security.NewTokenIssuer("secret", time.Hour)
	svc := newAuthService(repo, issuer)

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Name: "Sari", Username: "sari", Password: "s3cret"}); err != nil {
		t.Fatalf("signup: %v", err)
	}
	res, err := svc.Signin(context.Background(), "sari", "s3cret")
	if err != nil {
		t.Fatalf("signin: %v", err)
	}

	claims, err := issuer.Verify(res.Token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Username != "sari" || claims.Name != "Sari" || claims.Role != domain.RoleMember {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Signin_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubIssuer{})

	_, _ = svc.Signup(context.Background(), ports.SignupInput{Name: "Dewi", Username: "dewi", Password: "goodpass"})
	if _, err := svc.Signin(context.Background(), "dewi", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Signin_UnknownUser(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubIssuer{})

	if _, err := svc.Signin(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Signin_DeactivatedUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubIssuer{})

	user, err := svc.Signup(context.Background(), ports.SignupInput{Name: "Eko", Username: "eko", Password: "pw"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if err := repo.Deactivate(context.Background(), user.ID, time.Now()); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, err := svc.Signin(context.Background(), "eko", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for inactive user, got %v", err)
	}
}

func TestAuthService_Signin_StoreFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.err = errors.New("connection reset")
	svc := newAuthService(repo, &stubIssuer{})

	_, err := svc.Signin(context.Background(), "budi", "pw")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected raw store error, got %v", err)
	}
}

func TestAuthService_Signin_EmptyCredentials(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubIssuer{})
	if _, err := svc.Signin(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
