package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/genosentinel/auth-gateway/internal/core/domain"
	"github.com/genosentinel/auth-gateway/internal/core/service"
)

func newTokens(t *testing.T) *service.TokenService {
	t.Helper()
	return service.NewTokenService("not-base64-secret!", time.Hour)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := newTokens(t)

	token, err := tokens.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Authenticate(tokens)
	handler := mw(func(c echo.Context) error {
		called = true
		id, ok := Identity(c)
		if !ok {
			t.Fatalf("identity not attached")
		}
		if id.Username != "alice" || id.Role != domain.RoleUser {
			t.Fatalf("unexpected identity: %+v", id)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_MissingHeaderIsAnonymous(t *testing.T) {
	e := echo.New()
	tokens := newTokens(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Authenticate(tokens)
	handler := mw(func(c echo.Context) error {
		if _, ok := Identity(c); ok {
			t.Fatalf("identity attached without a token")
		}
		return c.NoContent(http.StatusOK)
	})

	// The authenticator must never reject on its own.
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticate_NonBearerHeaderIsAnonymous(t *testing.T) {
	e := echo.New()
	tokens := newTokens(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Authenticate(tokens)
	handler := mw(func(c echo.Context) error {
		if _, ok := Identity(c); ok {
			t.Fatalf("identity attached for non-bearer header")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthenticate_InvalidTokenIsAnonymous(t *testing.T) {
	e := echo.New()
	tokens := newTokens(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Authenticate(tokens)
	handler := mw(func(c echo.Context) error {
		if _, ok := Identity(c); ok {
			t.Fatalf("identity attached for invalid token")
		}
		return c.NoContent(http.StatusOK)
	})

	// Decode failure continues the request anonymously.
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireUser_RejectsAnonymous(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequireUser()
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if err == nil {
		t.Fatalf("expected error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestRequireUser_PassesAuthenticated(t *testing.T) {
	e := echo.New()
	tokens := newTokens(t)

	token, err := tokens.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	chain := Authenticate(tokens)(RequireUser()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}))

	if err := chain(c); err != nil {
		t.Fatalf("chain error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}
