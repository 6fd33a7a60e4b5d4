package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

type stubAuthService struct {
	loginFn           func(ctx context.Context, in ports.LoginInput) (*domain.Session, error)
	registerFn        func(ctx context.Context, in ports.RegisterInput) (*domain.Session, error)
	logoutFn          func(ctx context.Context, sessionID string) error
	oauthFn           func(ctx context.Context, token, userParam string) (*domain.Session, error)
	forgotFn          func(ctx context.Context, email string) error
	resetFn           func(ctx context.Context, token, password string) error
	completeProfileFn func(ctx context.Context, s *domain.Session, role domain.Role) (*domain.Session, error)
}

func (s *stubAuthService) Login(ctx context.Context, in ports.LoginInput) (*domain.Session, error) {
	return s.loginFn(ctx, in)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Session, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFn(ctx, sessionID)
}

func (s *stubAuthService) OAuthCallback(ctx context.Context, token, userParam string) (*domain.Session, error) {
	return s.oauthFn(ctx, token, userParam)
}

func (s *stubAuthService) ForgotPassword(ctx context.Context, email string) error {
	return s.forgotFn(ctx, email)
}

func (s *stubAuthService) ResetPassword(ctx context.Context, token, password string) error {
	return s.resetFn(ctx, token, password)
}

func (s *stubAuthService) CompleteProfile(ctx context.Context, sess *domain.Session, role domain.Role) (*domain.Session, error) {
	return s.completeProfileFn(ctx, sess, role)
}

type stubToastQueue struct {
	pushed map[string][]domain.Toast
	err    error
}

func (q *stubToastQueue) Push(_ context.Context, sessionID string, t domain.Toast) error {
	if q.pushed == nil {
		q.pushed = map[string][]domain.Toast{}
	}
	q.pushed[sessionID] = append(q.pushed[sessionID], t)
	return nil
}

func (q *stubToastQueue) Drain(_ context.Context, sessionID string) ([]domain.Toast, error) {
	if q.err != nil {
		return nil, q.err
	}
	out := q.pushed[sessionID]
	delete(q.pushed, sessionID)
	return out, nil
}

type stubManagedService struct {
	listFn   func(ctx context.Context, role domain.Role) (domain.ManagedUserList, error)
	createFn func(ctx context.Context, in domain.CreateManagedUser) (*domain.User, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubManagedService) List(ctx context.Context, _ *domain.Session, role domain.Role) (domain.ManagedUserList, error) {
	return s.listFn(ctx, role)
}

func (s *stubManagedService) Create(ctx context.Context, _ *domain.Session, in domain.CreateManagedUser) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubManagedService) Delete(ctx context.Context, _ *domain.Session, id string) error {
	return s.deleteFn(ctx, id)
}

// newJSONContext builds an echo context for a JSON request with the
// validator installed.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withSession(c echo.Context, sess *domain.Session) {
	c.Set("session", sess)
	c.Set("role", sess.User.Role)
	c.Set("user_id", sess.User.ID)
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

// assertBadRequest checks err is a validation failure mentioning want.
func assertBadRequest(t *testing.T, err error, want string) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	var te *ToastError
	if !errors.As(err, &te) || te.Toast.Variant != domain.ToastDestructive {
		t.Fatalf("expected destructive toast, got %v", err)
	}
	if !strings.Contains(te.Toast.Title+te.Toast.Description, want) {
		t.Fatalf("expected toast to mention %q, got %+v", want, te.Toast)
	}
}
