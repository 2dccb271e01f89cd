package ports

import "time"

// TokenClaims is the decoded identity carried by a bearer token.
type TokenClaims struct {
	UserID string
	Email  string
	Role   string
}

// TokenIssuer signs identity tokens. A non-positive ttl selects the
// service's default.
type TokenIssuer interface {
	Issue(claims TokenClaims, ttl time.Duration) (string, error)
}

// TokenVerifier checks a raw token and returns its claims. Failures are the
// domain token sentinels: expired, signature invalid, malformed.
type TokenVerifier interface {
	Verify(raw string) (*TokenClaims, error)
}
