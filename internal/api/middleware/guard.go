package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jobzen/dashboard/internal/api/cookie"
	"github.com/jobzen/dashboard/internal/api/metrics"
	"github.com/jobzen/dashboard/internal/core/domain"
)

// publicPaths are reachable without signing in. Matching is exact.
var publicPaths = map[string]struct{}{
	"/":                {},
	"/login":           {},
	"/register":        {},
	"/forgot-password": {},
	"/reset-password":  {},
	"/terms":           {},
	"/privacy":         {},
	"/auth/callback":   {},
}

// unguardedPrefixes never reach the guard: API routes, static assets and
// the server's own operational endpoints.
var unguardedPrefixes = []string{
	"/api",
	"/_next/static",
	"/_next/image",
	"/favicon.ico",
	"/public",
	"/health",
	"/metrics",
	"/swagger",
}

// GuardSkipper reports whether path is outside the guard's matcher.
func GuardSkipper(c echo.Context) bool {
	path := c.Request().URL.Path
	if strings.Contains(path, ".") {
		return true
	}
	for _, p := range unguardedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Guard protects page routes using the auth-storage mirror cookie:
//   - public paths pass.
//   - no cookie redirects to /login?redirect=<path>.
//   - an unreadable cookie or one without a user redirects to /login.
//   - a path under another role's prefix redirects to the user's dashboard.
func Guard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if GuardSkipper(c) {
				return next(c)
			}
			path := c.Request().URL.Path
			if _, ok := publicPaths[path]; ok {
				return next(c)
			}

			ck, err := c.Cookie(cookie.AuthStorageName)
			if err != nil || ck.Value == "" {
				return guardRedirect(c, "no_cookie", "/login?redirect="+url.QueryEscape(path))
			}

			snap, err := domain.DecodeAuthSnapshot(ck.Value)
			if err != nil || snap.State.User == nil {
				return guardRedirect(c, "bad_cookie", "/login")
			}

			role := snap.State.User.Role
			if !role.CanVisit(path) {
				return guardRedirect(c, "wrong_role", role.Dashboard())
			}

			c.Set("auth_user", snap.State.User)
			return next(c)
		}
	}
}

func guardRedirect(c echo.Context, reason, to string) error {
	metrics.GuardRedirectsTotal.WithLabelValues(reason).Inc()
	return c.Redirect(http.StatusTemporaryRedirect, to)
}
