package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jobzen/dashboard/internal/api/cookie"
	"github.com/jobzen/dashboard/internal/core/domain"
)

func mirrorCookie(t *testing.T, role domain.Role) *http.Cookie {
	t.Helper()
	val, err := domain.NewAuthSnapshot(domain.User{ID: "u1", Role: role}).Encode()
	if err != nil {
		t.Fatalf("encode snapshot: %v", err)
	}
	return &http.Cookie{Name: cookie.AuthStorageName, Value: val}
}

// runGuard passes path through Guard and reports whether the next handler
// ran along with the recorded response.
func runGuard(t *testing.T, path string, ck *http.Cookie) (bool, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if ck != nil {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Guard()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return called, rec
}

func TestGuard_PublicPaths(t *testing.T) {
	for _, path := range []string{"/", "/login", "/register", "/forgot-password", "/reset-password", "/terms", "/privacy", "/auth/callback"} {
		called, _ := runGuard(t, path, nil)
		if !called {
			t.Errorf("%s: expected public path to pass", path)
		}
	}
}

func TestGuard_SkipsUnmatchedPaths(t *testing.T) {
	for _, path := range []string{"/api/users/me", "/_next/static/chunk.js", "/favicon.ico", "/logo.png", "/public/img", "/health/ready", "/metrics", "/swagger/index.html"} {
		called, _ := runGuard(t, path, nil)
		if !called {
			t.Errorf("%s: expected guard to be skipped", path)
		}
	}
}

func TestGuard_NoCookieRedirectsWithReturnPath(t *testing.T) {
	called, rec := runGuard(t, "/employer/clients", nil)
	if called {
		t.Fatal("next handler must not run")
	}
	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login?redirect=%2Femployer%2Fclients" {
		t.Fatalf("unexpected location: %s", loc)
	}
}

func TestGuard_BadCookie(t *testing.T) {
	cases := map[string]*http.Cookie{
		"not json": {Name: cookie.AuthStorageName, Value: "garbage"},
		"no user":  {Name: cookie.AuthStorageName, Value: url.QueryEscape(`{"state":{"user":null,"isAuthenticated":false}}`)},
		"no state": {Name: cookie.AuthStorageName, Value: `{}`},
	}
	for name, ck := range cases {
		called, rec := runGuard(t, "/profile", ck)
		if called {
			t.Errorf("%s: next handler must not run", name)
		}
		if loc := rec.Header().Get("Location"); loc != "/login" {
			t.Errorf("%s: expected /login, got %s", name, loc)
		}
	}
}

func TestGuard_WrongRoleRedirectsToOwnDashboard(t *testing.T) {
	called, rec := runGuard(t, "/admin/dashboard", mirrorCookie(t, domain.RoleWorker))
	if called {
		t.Fatal("next handler must not run")
	}
	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/worker/dashboard" {
		t.Fatalf("expected /worker/dashboard, got %s", loc)
	}
}

func TestGuard_UnassignedGoesToCompleteProfile(t *testing.T) {
	_, rec := runGuard(t, "/worker/dashboard", mirrorCookie(t, domain.RoleUnassigned))
	if loc := rec.Header().Get("Location"); loc != "/auth/complete-profile" {
		t.Fatalf("expected /auth/complete-profile, got %s", loc)
	}
}

func TestGuard_AllowsOwnAndSharedPaths(t *testing.T) {
	ck := mirrorCookie(t, domain.RoleEmployer)
	for _, path := range []string{"/employer/dashboard", "/employer/workers", "/profile", "/auth/complete-profile", "/administrator"} {
		called, _ := runGuard(t, path, ck)
		if !called {
			t.Errorf("%s: expected pass", path)
		}
	}
}
