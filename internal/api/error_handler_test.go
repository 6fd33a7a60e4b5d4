package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobzen/dashboard/internal/api/cookie"
	"github.com/jobzen/dashboard/internal/api/handler"
	"github.com/jobzen/dashboard/internal/core/domain"
)

// apiErr mimics an error answer of the Jobzen API.
type apiErr struct {
	status int
	msg    string
}

func (e apiErr) Error() string       { return fmt.Sprintf("status %d", e.status) }
func (e apiErr) StatusCode() int     { return e.status }
func (e apiErr) UserMessage() string { return e.msg }

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantToast string
	}{
		{"echo error", echo.NewHTTPError(http.StatusTooManyRequests, "slow down"), http.StatusTooManyRequests, "slow down"},
		{"not found route", echo.ErrNotFound, http.StatusNotFound, ""},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"forbidden", fmt.Errorf("list: %w", domain.ErrForbidden), http.StatusForbidden, "access forbidden"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"invalid theme", domain.ErrInvalidTheme, http.StatusBadRequest, "unknown theme"},
		{"upstream 422", apiErr{status: 422, msg: "phone is invalid"}, http.StatusBadRequest, "phone is invalid"},
		{"upstream down", errors.Join(domain.ErrUpstream, errors.New("dial tcp")), http.StatusBadGateway, "service temporarily unavailable"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
		{"handler toast", &handler.ToastError{Err: domain.ErrUpstream, Toast: domain.ErrorToast("Failed to load workers")}, http.StatusBadGateway, "Failed to load workers"},
		{
			"handler toast prefers upstream",
			&handler.ToastError{Err: apiErr{status: 400, msg: "Email is not verified"}, Toast: domain.ErrorToast("Login failed."), PreferUpstream: true},
			http.StatusBadRequest,
			"Email is not verified",
		},
	}

	h := NewHTTPErrorHandler(zerolog.Nop(), cookie.Jar{}, newMemorySessions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/x", nil), rec)

			h(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			var env errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			switch {
			case tt.wantToast == "" && env.Toast != nil:
				t.Fatalf("expected no toast, got %+v", env.Toast)
			case tt.wantToast != "" && (env.Toast == nil || env.Toast.Description != tt.wantToast):
				t.Fatalf("expected toast %q, got %+v", tt.wantToast, env.Toast)
			}
			if env.Redirect != "" {
				t.Fatalf("unexpected redirect %q", env.Redirect)
			}
		})
	}
}

func TestHTTPErrorHandler_SessionExpired(t *testing.T) {
	sessions := newMemorySessions()
	sessions.put(domain.Session{ID: "s1"})
	h := NewHTTPErrorHandler(zerolog.Nop(), cookie.Jar{}, sessions)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.AddCookie(&http.Cookie{Name: cookie.SessionName, Value: "s1"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h(fmt.Errorf("me: %w", domain.ErrSessionExpired), c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if _, ok := sessions.sessions["s1"]; ok {
		t.Fatalf("expected session to be deleted")
	}
	var env errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if env.Redirect != "/login" {
		t.Fatalf("expected redirect to /login, got %q", env.Redirect)
	}
	if len(rec.Result().Cookies()) != 2 {
		t.Fatalf("expected both auth cookies to be cleared, got %v", rec.Result().Cookies())
	}
}

func TestHTTPErrorHandler_Committed(t *testing.T) {
	h := NewHTTPErrorHandler(zerolog.Nop(), cookie.Jar{}, newMemorySessions())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "done")

	h(errors.New("late"), c)
	if rec.Body.String() != "done" {
		t.Fatalf("committed response must not be rewritten, got %q", rec.Body.String())
	}
}
