package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestMiddleware(t *testing.T) (*Issuer, echo.MiddlewareFunc, *echo.Echo) {
	t.Helper()
	issuer := NewIssuer(testSecret, time.Hour, 24*time.Hour)
	return issuer, JWTMiddleware(issuer), echo.New()
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	issuer, mw, e := newTestMiddleware(t)
	userID := uuid.New()
	pair, err := issuer.IssuePair(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Access)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got uuid.UUID
	handler := mw(func(c echo.Context) error {
		got = UserIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != userID {
		t.Errorf("expected user %s on context, got %s", userID, got)
	}
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	_, mw, e := newTestMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestJWTMiddleware_BadScheme(t *testing.T) {
	issuer, mw, e := newTestMiddleware(t)
	pair, _ := issuer.IssuePair(uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic "+pair.Access)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestJWTMiddleware_RefreshTokenRejected(t *testing.T) {
	issuer, mw, e := newTestMiddleware(t)
	pair, _ := issuer.IssuePair(uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Refresh)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for refresh token, got %v", err)
	}
}
