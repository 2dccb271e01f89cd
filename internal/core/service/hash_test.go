package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashService_RoundTrip(t *testing.T) {
	h := NewHashService(bcrypt.MinCost)

	hash, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "secret123" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !h.Verify("secret123", hash) {
		t.Fatalf("Verify rejected the original password")
	}
	if h.Verify("secret124", hash) {
		t.Fatalf("Verify accepted a wrong password")
	}
}

func TestHashService_RejectsEmpty(t *testing.T) {
	h := NewHashService(bcrypt.MinCost)
	if _, err := h.Hash(""); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

func TestHashService_NoDeterministicOutput(t *testing.T) {
	h := NewHashService(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("first hash failed: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("second hash failed: %v", err)
	}
	// bcrypt salts per call; both must still verify.
	if first == second {
		t.Fatalf("expected distinct hashes for repeated input")
	}
	if !h.Verify("same-password", first) || !h.Verify("same-password", second) {
		t.Fatalf("both hashes must verify the original password")
	}
}

func TestNewHashService_DefaultCost(t *testing.T) {
	h := NewHashService(0)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, h.cost)
	}
}
