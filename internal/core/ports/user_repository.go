package ports

import (
	"context"

	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/core/domain"
)

// ListFilter narrows and pages a user listing. Role, when set, has already
// been validated against the closed role set. Active is a tri-state: nil
// means "no filter". Search is matched case-insensitively as a substring of
// name or email.
type ListFilter struct {
	Role   string
	Active *bool
	Search string
	Page   int
	Limit  int
}

// UserRepository is the persistence boundary for user records. Delete is
// logical only: implementations flip the active flag and must report
// domain.ErrAlreadyDeleted when the target is already inactive.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error)
	FindAll(ctx context.Context, filter ListFilter) ([]*domain.User, int64, error)
	Update(ctx context.Context, user *domain.User) error
	Deactivate(ctx context.Context, id string) error
}
