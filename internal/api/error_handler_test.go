package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/core/domain"
)

func handleError(t *testing.T, err error, dev bool) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop(), dev)(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"invalid email", domain.ErrInvalidEmail, http.StatusBadRequest, domain.ErrInvalidEmail.Error()},
		{"invalid name", domain.ErrInvalidName, http.StatusBadRequest, domain.ErrInvalidName.Error()},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest, domain.ErrInvalidRole.Error()},
		{"no update fields", domain.ErrNoUpdateFields, http.StatusBadRequest, domain.ErrNoUpdateFields.Error()},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"email exists", domain.ErrEmailExists, http.StatusConflict, domain.ErrEmailExists.Error()},
		{"already deleted", domain.ErrAlreadyDeleted, http.StatusGone, domain.ErrAlreadyDeleted.Error()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := handleError(t, tc.err, false)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if msg != tc.msg {
				t.Fatalf("expected message %q, got %q", tc.msg, msg)
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), domain.ErrUserNotFound)
	code, _ := handleError(t, wrapped, false)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped not-found, got %d", code)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), false)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != "invalid payload" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	boom := errors.New("database exploded")

	code, msg := handleError(t, boom, false)
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("production mode must not leak details, got %q", msg)
	}
	if strings.Contains(msg, "exploded") {
		t.Fatalf("internal details leaked: %q", msg)
	}

	_, devMsg := handleError(t, boom, true)
	if devMsg != "database exploded" {
		t.Fatalf("dev mode should expose details, got %q", devMsg)
	}
}
