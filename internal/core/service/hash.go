package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashService wraps bcrypt for password storage. The cost is tunable so
// deployments can raise the work factor without code changes; every call
// re-derives from scratch, results are never cached.
type HashService struct {
	cost int
}

// NewHashService returns a HashService. A non-positive cost falls back to
// bcrypt.DefaultCost.
func NewHashService(cost int) *HashService {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &HashService{cost: cost}
}

// Hash derives a bcrypt hash of plain. Empty input is rejected.
func (h *HashService) Hash(plain string) (string, error) {
	if plain == "" {
		return "", errors.New("hash: empty password")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain reproduces hash. bcrypt's comparison is
// constant-time with respect to the password bytes.
func (h *HashService) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
