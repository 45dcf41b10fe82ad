package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skillshare/skillshare-api/internal/core/service"
)

func newTokens(t *testing.T) *service.TokenService {
	t.Helper()
	tokens, err := service.NewTokenService("test-secret", time.Hour, zerolog.Nop())
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return tokens
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := newTokens(t)
	signed, err := tokens.Issue("user_1", "alice@example.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(tokens)(func(c echo.Context) error {
		called = true
		if c.Get(ContextUserID) != "user_1" {
			t.Fatalf("subject not set, got %v", c.Get(ContextUserID))
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

func TestAuthenticate_NoHeaderIsAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(newTokens(t))(func(c echo.Context) error {
		called = true
		if c.Get(ContextUserID) != nil {
			t.Fatalf("anonymous request must carry no subject")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("anonymous request must reach the handler")
	}
}

func TestAuthenticate_BadTokenRejectedEverywhere(t *testing.T) {
	// A present-but-invalid credential is a 401 even though the route
	// itself would accept anonymous traffic.
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(newTokens(t))(func(c echo.Context) error {
		t.Fatalf("handler must not run with a bad token")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	e := echo.New()
	tokens := newTokens(t)
	signed, _ := tokens.Issue("user_1", "a@example.com")

	for _, header := range []string{"Token abc", signed, "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Authenticate(tokens)(func(c echo.Context) error {
			t.Fatalf("handler ran with malformed header %q", header)
			return nil
		})

		err := handler(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401 HTTPError, got %v", header, err)
		}
	}
}

func TestAuthenticate_WrongKey(t *testing.T) {
	e := echo.New()
	other, err := service.NewTokenService("different-secret", time.Hour, zerolog.Nop())
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	signed, _ := other.Issue("user_1", "a@example.com")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(newTokens(t))(func(c echo.Context) error {
		t.Fatalf("handler ran with a foreign-key token")
		return nil
	})

	err = handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestRequireAuth(t *testing.T) {
	e := echo.New()

	// Without a subject: rejected.
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireAuth()(func(c echo.Context) error {
		t.Fatalf("handler ran without a subject")
		return nil
	})
	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}

	// With a subject: passes through.
	c = e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
	c.Set(ContextUserID, "user_1")
	called := false
	handler = RequireAuth()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("authenticated request must reach the handler")
	}
}
