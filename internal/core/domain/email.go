package domain

import (
	"regexp"
	"strings"
)

// emailPattern is deliberately conservative: local part, "@", domain, and a
// top-level segment of at least two characters.
var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w{2,}$`)

// Email is an immutable value object wrapping a canonical (trimmed,
// lower-cased) email string. It is the uniqueness key for users.
type Email struct {
	value string
}

// NewEmail normalizes raw (trim, lower-case) and validates its shape.
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if !emailPattern.MatchString(normalized) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: normalized}, nil
}

// String returns the canonical email value.
func (e Email) String() string {
	return e.value
}

// Equals reports value equality on the canonical strings.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// IsZero reports whether the Email was never constructed through NewEmail.
func (e Email) IsZero() bool {
	return e.value == ""
}

// MarshalJSON renders the canonical string.
func (e Email) MarshalJSON() ([]byte, error) {
	return []byte(`"` + e.value + `"`), nil
}

// UnmarshalJSON re-validates on the way in, so a decoded Email carries the
// same guarantees as a constructed one.
func (e *Email) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return ErrInvalidEmail
	}
	parsed, err := NewEmail(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
