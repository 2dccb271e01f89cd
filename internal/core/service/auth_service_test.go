package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/core/domain"
	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository for service tests.
type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email.Equals(user.Email) {
			return domain.ErrEmailExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email domain.Email) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email.Equals(email) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context, filter ports.ListFilter) ([]*domain.User, int64, error) {
	var out []*domain.User
	for _, u := range r.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Active != nil && u.Active != *filter.Active {
			continue
		}
		out = append(out, cloneUser(u))
	}
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Deactivate(_ context.Context, id string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	if !u.Active {
		return domain.ErrAlreadyDeleted
	}
	u.Active = false
	return nil
}

func newAuthService(repo ports.UserRepository) *AuthService {
	hasher := NewHashService(bcrypt.MinCost)
	tokens := NewTokenService("secret")
	return NewAuthService(repo, hasher, tokens, time.Hour, zerolog.Nop())
}

func TestAuthService_SignUp_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	token, user, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Name:     "John Doe",
		Email:    "JOHN@EXAMPLE.COM",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if user.Email.String() != "john@example.com" {
		t.Fatalf("expected canonical email, got %q", user.Email.String())
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role USER, got %q", user.Role)
	}
	if user.PasswordHash == "secret123" {
		t.Fatalf("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	claims, err := NewTokenService("secret").Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_SignUp_ExplicitAdminRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, user, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Name:     "Root Admin",
		Email:    "admin@example.com",
		Password: "secret123",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("explicit ADMIN must be honoured, got %q", user.Role)
	}

	// Anything other than the exact ADMIN constant stays USER.
	_, user, err = svc.SignUp(context.Background(), ports.SignUpInput{
		Name:     "Plain User",
		Email:    "plain@example.com",
		Password: "secret123",
		Role:     "admin",
	})
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("lowercase role must not elevate, got %q", user.Role)
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Name: "First User", Email: "dup@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("first SignUp failed: %v", err)
	}

	// Same address in a different case is still a duplicate.
	if _, _, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Name: "Second User", Email: " DUP@Example.com ", Password: "other456",
	}); err != domain.ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("duplicate sign-up must not create a record, have %d", len(repo.users))
	}
}

func TestAuthService_SignUp_InvalidEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Name: "Broken Email", Email: "not-an-email", Password: "secret123",
	}); err != domain.ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestAuthService_SignIn_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, created, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Name: "Carol Jones", Email: "carol@example.com", Password: "s3cret99",
	})
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	// Mixed-case sign-in matches the canonical record.
	token, user, err := svc.SignIn(context.Background(), "CAROL@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if user.ID != created.ID {
		t.Fatalf("expected user %s, got %s", created.ID, user.ID)
	}
}

func TestAuthService_SignIn_UnifiedFailures(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Name: "Dave Smith", Email: "dave@example.com", Password: "goodpass",
	}); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	// Wrong password and unknown email must be indistinguishable.
	_, _, wrongPass := svc.SignIn(context.Background(), "dave@example.com", "badpass")
	_, _, unknown := svc.SignIn(context.Background(), "ghost@example.com", "goodpass")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if unknown != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknown)
	}
	if wrongPass.Error() != unknown.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPass, unknown)
	}
}
