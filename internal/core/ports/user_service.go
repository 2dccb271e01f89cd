package ports

import (
	"context"

	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/core/domain"
)

// Identity is the authenticated actor resolved by the auth guard. Every
// user-service operation receives one so ownership and role checks happen
// next to the business logic.
type Identity struct {
	UserID string
	Role   string
}

// IsAdmin reports whether the identity carries the ADMIN role.
func (i Identity) IsAdmin() bool {
	return i.Role == domain.RoleAdmin
}

// UpdateUserInput carries a partial update; nil pointers mean "leave as is".
// At least one field must be non-nil.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
	Active   *bool
}

// Empty reports whether no field is present.
func (in UpdateUserInput) Empty() bool {
	return in.Name == nil && in.Email == nil && in.Password == nil &&
		in.Role == nil && in.Active == nil
}

// ListUsersResult is the paginated listing envelope.
type ListUsersResult struct {
	Users      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines the authenticated user-management operations. Each
// implementation enforces the access policy: List is admin-only; Get,
// Update and Delete allow admins or the record's owner.
type UserService interface {
	Get(ctx context.Context, id string, who Identity) (*domain.User, error)
	List(ctx context.Context, filter ListFilter, who Identity) (*ListUsersResult, error)
	Update(ctx context.Context, id string, in UpdateUserInput, who Identity) (*domain.User, error)
	Delete(ctx context.Context, id string, who Identity) error
}
