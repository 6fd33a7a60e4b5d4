package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobzen/dashboard/internal/api/cookie"
	"github.com/jobzen/dashboard/internal/api/metrics"
	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

// LoadSession resolves the session cookie and injects the session, role and
// user id into context. Requests without a live session pass through
// untouched; a stale session cookie is cleared along with its mirror.
func LoadSession(store ports.SessionStore, jar cookie.Jar, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := cookie.SessionID(c)
			if id == "" {
				return next(c)
			}

			sess, err := store.Get(c.Request().Context(), id)
			switch {
			case err == nil:
				c.Set("session", sess)
				c.Set("role", sess.User.Role)
				c.Set("user_id", sess.User.ID)
			case errors.Is(err, domain.ErrSessionNotFound):
				metrics.SessionEventsTotal.WithLabelValues("stale").Inc()
				jar.ClearSession(c)
			default:
				log.Error().Err(err).Msg("load session")
			}
			return next(c)
		}
	}
}

// RequireSession rejects requests that LoadSession left without a session.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get("session").(*domain.Session); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			return next(c)
		}
	}
}
