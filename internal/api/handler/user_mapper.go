package handler

import (
	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/core/domain"
	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/core/ports"
)

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email.String(),
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toListResponse(r *ports.ListUsersResult) listUsersResponse {
	users := make([]userResponse, len(r.Users))
	for i, u := range r.Users {
		users[i] = toUserResponse(u)
	}
	return listUsersResponse{
		Users: users,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}

// --- HTTP request → Service input ---

func toUpdateInput(req updateUserRequest) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Active:   req.Active,
	}
}
