package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newCORSTestServer() *echo.Echo {
	e := echo.New()
	SetupMiddleware(e)
	e.POST("/v1/likes/toggle", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return e
}

func TestPreflightAnsweredWith200(t *testing.T) {
	e := newCORSTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/v1/likes/toggle", nil)
	req.Header.Set(echo.HeaderOrigin, "https://some-host-site.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected preflight 200, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "*" {
		t.Errorf("expected allow-origin *, got %q", got)
	}
	if rec.Header().Get(echo.HeaderAccessControlAllowMethods) == "" {
		t.Errorf("expected allow-methods header on preflight")
	}
	if rec.Header().Get(echo.HeaderAccessControlAllowHeaders) == "" {
		t.Errorf("expected allow-headers header on preflight")
	}
}

func TestNonPreflightCarriesAllowOrigin(t *testing.T) {
	e := newCORSTestServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/likes/toggle", nil)
	req.Header.Set(echo.HeaderOrigin, "https://some-host-site.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "*" {
		t.Errorf("expected allow-origin * on actual request, got %q", got)
	}
}
