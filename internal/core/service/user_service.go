package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/core/domain"
	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// UserService implements the authenticated user-management use cases with
// the access policy applied before any repository call.
type UserService struct {
	repo   ports.UserRepository
	hasher *HashService
	log    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher *HashService, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, log: log}
}

// canAccess reports whether who may operate on the record identified by id:
// admins always, everyone else only on their own record.
func canAccess(who ports.Identity, id string) bool {
	return who.IsAdmin() || who.UserID == id
}

// Get returns a single user, admin-or-self.
func (s *UserService) Get(ctx context.Context, id string, who ports.Identity) (*domain.User, error) {
	if !canAccess(who, id) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, id)
}

// List returns a page of users. Admin only.
func (s *UserService) List(ctx context.Context, filter ports.ListFilter, who ports.Identity) (*ports.ListUsersResult, error) {
	if !who.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if filter.Role != "" {
		role, err := domain.ParseRole(filter.Role)
		if err != nil {
			return nil, err
		}
		filter.Role = role
	}
	if filter.Page <= 0 {
		filter.Page = defaultPage
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	users, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.ListUsersResult{
		Users:      users,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update applies a partial update through the entity's validated mutators,
// admin-or-self. At least one field must be present.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput, who ports.Identity) (*domain.User, error) {
	if !canAccess(who, id) {
		return nil, domain.ErrForbidden
	}
	if in.Empty() {
		return nil, domain.ErrNoUpdateFields
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if err := user.UpdateName(*in.Name); err != nil {
			return nil, err
		}
	}
	if in.Email != nil {
		if err := user.UpdateEmail(*in.Email); err != nil {
			return nil, err
		}
	}
	if in.Role != nil {
		if err := user.UpdateRole(*in.Role); err != nil {
			return nil, err
		}
	}
	if in.Active != nil {
		user.SetActive(*in.Active)
	}
	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.UpdatePasswordHash(hash)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user updated")
	return user, nil
}

// Delete deactivates a user, admin-or-self. Deleting an already-inactive
// user reports ErrAlreadyDeleted rather than succeeding silently; the record
// is never physically removed.
func (s *UserService) Delete(ctx context.Context, id string, who ports.Identity) error {
	if !canAccess(who, id) {
		return domain.ErrForbidden
	}
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deactivated")
	return nil
}
