package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/api/metrics"
	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/core/domain"
	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/core/ports"
)

// Context keys set by Auth on a successful verification.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
	CtxEmail  = "email"
)

// Auth is the bearer-token guard. The status split is deliberate: absent
// credentials are 401 Unauthorized, present-but-invalid credentials (empty
// or literal "null" token, bad signature, expired, malformed) are 403
// Forbidden.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid authorization header")
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if token == "" || token == "null" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(verifyFailureReason(err)).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "unauthorized or expired token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, claims.Role)
			c.Set(CtxEmail, claims.Email)

			return next(c)
		}
	}
}

func verifyFailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignatureInvalid):
		return "invalid_signature"
	default:
		return "malformed"
	}
}
