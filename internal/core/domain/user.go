package domain

import (
	"strings"
	"time"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// ParseRole normalizes a role string and validates it against the closed set.
func ParseRole(s string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", ErrInvalidRole
	}
}

const (
	minNameLen = 2
	maxNameLen = 50
)

// User models one account. The password is held only as a bcrypt hash and
// never serialized. Mutation goes through the validated methods below;
// ID and CreatedAt are fixed at construction.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        Email     `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser builds a validated User. The role defaults to USER when empty.
func NewUser(id, name string, email Email, passwordHash, role string) (*User, error) {
	name = strings.TrimSpace(name)
	if len(name) < minNameLen || len(name) > maxNameLen {
		return nil, ErrInvalidName
	}
	if role == "" {
		role = RoleUser
	}
	role, err := ParseRole(role)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// UpdateName replaces the display name after trimming and length validation.
func (u *User) UpdateName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < minNameLen || len(name) > maxNameLen {
		return ErrInvalidName
	}
	u.Name = name
	return nil
}

// UpdateEmail replaces the email with the canonical form of raw.
func (u *User) UpdateEmail(raw string) error {
	email, err := NewEmail(raw)
	if err != nil {
		return err
	}
	u.Email = email
	return nil
}

// UpdateRole replaces the role; only ADMIN and USER are accepted.
func (u *User) UpdateRole(role string) error {
	parsed, err := ParseRole(role)
	if err != nil {
		return err
	}
	u.Role = parsed
	return nil
}

// SetActive flips the logical-delete flag.
func (u *User) SetActive(active bool) {
	u.Active = active
}

// UpdatePasswordHash stores a new password hash. Hashing happens in the
// hash service; the entity never sees plaintext.
func (u *User) UpdatePasswordHash(hash string) {
	u.PasswordHash = hash
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
