package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobzen/dashboard/internal/api/cookie"
	"github.com/jobzen/dashboard/internal/api/handler"
	"github.com/jobzen/dashboard/internal/api/metrics"
	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error    string        `json:"error"`
	Toast    *domain.Toast `json:"toast,omitempty"`
	Redirect string        `json:"redirect,omitempty"`
}

// userMessager is implemented by Jobzen API errors that carry a message
// meant for the end user.
type userMessager interface {
	UserMessage() string
}

// statusCoder is implemented by Jobzen API errors.
type statusCoder interface {
	StatusCode() int
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Ends the session when the API refused to refresh it, clearing both
//     auth cookies and pointing the browser at /login.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error", "toast", "redirect"}.
func NewHTTPErrorHandler(log zerolog.Logger, jar cookie.Jar, sessions ports.SessionStore) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := errorResponse{}
		code, msg := resolveError(err, log, c)
		resp.Error = msg

		if errors.Is(err, domain.ErrSessionExpired) {
			metrics.SessionEventsTotal.WithLabelValues("expired").Inc()
			if id := cookie.SessionID(c); id != "" {
				if derr := sessions.Delete(c.Request().Context(), id); derr != nil {
					log.Warn().Err(derr).Msg("delete expired session")
				}
			}
			jar.ClearSession(c)
			resp.Redirect = "/login"
		}

		resp.Toast = resolveToast(err, code, msg)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized, "session expired"
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "invalid role"
	case errors.Is(err, domain.ErrInvalidTheme):
		return http.StatusBadRequest, "unknown theme"
	}

	// The API rejected the input: pass its message through.
	var sc statusCoder
	if errors.As(err, &sc) && sc.StatusCode() >= 400 && sc.StatusCode() < 500 {
		msg := "request rejected"
		var um userMessager
		if errors.As(err, &um) && um.UserMessage() != "" {
			msg = um.UserMessage()
		}
		return http.StatusBadRequest, msg
	}

	if errors.Is(err, domain.ErrUpstream) {
		log.Warn().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("upstream failure")
		return http.StatusBadGateway, "service temporarily unavailable"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

// resolveToast picks the notification for an error: session expiry first,
// then the handler's choice, then a message from the Jobzen API, then the
// generic message.
func resolveToast(err error, code int, msg string) *domain.Toast {
	var te *handler.ToastError
	var um userMessager
	hasUpstream := errors.As(err, &um) && um.UserMessage() != ""

	switch {
	case errors.Is(err, domain.ErrSessionExpired):
		t := domain.ErrorToast("Your session has expired. Please sign in again.")
		return &t
	case errors.As(err, &te):
		t := te.Toast
		if te.PreferUpstream && hasUpstream {
			t.Description = um.UserMessage()
		}
		return &t
	case hasUpstream:
		t := domain.ErrorToast(um.UserMessage())
		return &t
	case code == http.StatusNotFound:
		return nil
	default:
		t := domain.ErrorToast(msg)
		return &t
	}
}
