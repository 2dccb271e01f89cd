package ports

import (
	"context"

	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/core/domain"
)

// SignUpInput carries the public registration payload. Role is accepted as
// an input and defaults to USER when empty.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthService defines the public (unauthenticated) operations.
type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (string, *domain.User, error)
	SignIn(ctx context.Context, email, password string) (string, *domain.User, error)
}
