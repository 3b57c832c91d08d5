package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vedavayu/clinic-backend/internal/domain"
	apperrors "github.com/vedavayu/clinic-backend/pkg/util"
)

func newGatedApp(t *testing.T, tm *TokenManager) (*fiber.App, *int) {
	t.Helper()
	hits := 0
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return c.SendStatus(apperrors.ToDomainError(err).HTTPStatus)
		}
		return nil
	})

	mw := NewMiddleware(tm)
	handler := func(c *fiber.Ctx) error {
		hits++
		return c.SendStatus(http.StatusOK)
	}
	app.Get("/api/doctors", mw.Authenticate, handler)
	app.Post("/api/doctors", mw.Authenticate, RequireAdmin(), handler)
	app.Get("/api/users", mw.Authenticate, handler)
	return app, &hits
}

func issueToken(t *testing.T, tm *TokenManager, role domain.Role) string {
	t.Helper()
	token, _, err := tm.Issue(Identity{UserID: "u-1", Email: "a@b.c", Role: role}, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return token
}

func TestAuthenticateBypassesPublicReads(t *testing.T) {
	tm := NewTokenManager("secret")
	app, hits := newGatedApp(t, tm)

	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if *hits != 1 {
		t.Fatalf("expected handler hit, got %d", *hits)
	}
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	tm := NewTokenManager("secret")
	app, hits := newGatedApp(t, tm)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodPost, "/api/doctors", nil),
		httptest.NewRequest(http.MethodGet, "/api/users", nil),
	} {
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("test request: %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", req.Method, req.URL.Path, resp.StatusCode)
		}
	}
	if *hits != 0 {
		t.Fatalf("handler should not run, got %d hits", *hits)
	}
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	tm := NewTokenManager("secret")
	app, hits := newGatedApp(t, tm)

	req := httptest.NewRequest(http.MethodPost, "/api/doctors", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if *hits != 0 {
		t.Fatalf("handler should not run, got %d hits", *hits)
	}
}

func TestRequireAdminRejectsNonAdmin(t *testing.T) {
	tm := NewTokenManager("secret")
	app, hits := newGatedApp(t, tm)

	req := httptest.NewRequest(http.MethodPost, "/api/doctors", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tm, domain.RoleUser))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	if *hits != 0 {
		t.Fatalf("handler should not run, got %d hits", *hits)
	}
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	tm := NewTokenManager("secret")
	app, hits := newGatedApp(t, tm)

	req := httptest.NewRequest(http.MethodPost, "/api/doctors", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tm, domain.RoleAdmin))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if *hits != 1 {
		t.Fatalf("expected handler hit, got %d", *hits)
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"", "", false},
		{"abc", "", false},
	}
	for _, tc := range cases {
		got, ok := bearerToken(tc.header)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("bearerToken(%q) = %q, %v; want %q, %v", tc.header, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPrincipalAttachedForValidToken(t *testing.T) {
	tm := NewTokenManager("secret")
	mw := NewMiddleware(tm)

	var principal *Principal
	app := fiber.New()
	app.Post("/api/doctors", mw.Authenticate, func(c *fiber.Ctx) error {
		principal, _ = PrincipalFromContext(c)
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/doctors", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tm, domain.RoleAdmin))
	if _, err := app.Test(req); err != nil {
		t.Fatalf("test request: %v", err)
	}
	if principal == nil {
		t.Fatal("expected principal in context")
	}
	if principal.UserID != "u-1" || principal.Role != domain.RoleAdmin {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}
