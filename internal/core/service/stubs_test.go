package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubSessionStore struct {
	sessions map[string]*domain.Session
	next     int
	saveErr  error
	deleted  []string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func cloneSession(s *domain.Session) *domain.Session {
	clone := *s
	return &clone
}

func (s *stubSessionStore) Create(_ context.Context, sess *domain.Session) error {
	s.next++
	if sess.ID == "" {
		sess.ID = "sess-" + strconv.Itoa(s.next)
	}
	s.sessions[sess.ID] = cloneSession(sess)
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return cloneSession(sess), nil
}

func (s *stubSessionStore) Save(_ context.Context, sess *domain.Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	if _, ok := s.sessions[sess.ID]; !ok {
		return domain.ErrSessionNotFound
	}
	s.sessions[sess.ID] = cloneSession(sess)
	return nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	s.deleted = append(s.deleted, id)
	return nil
}

// stubAPI simulates the Jobzen API in memory. Managed users are kept per
// email so duplicates can be rejected like the real API does.
type stubAPI struct {
	loginRes  *domain.AuthResult
	loginErr  error
	me        *domain.User
	meErr     error
	logoutErr error
	logouts   int
	managed   []domain.User
	lastList  domain.Role
	updates   []domain.ProfileUpdate
	// refreshOnCall simulates a 401-triggered refresh by handing a new
	// access token to the token source.
	refreshOnCall string
}

var _ ports.UpstreamAPI = (*stubAPI)(nil)

func (a *stubAPI) Login(_ context.Context, _ ports.LoginInput) (*domain.AuthResult, error) {
	return a.loginRes, a.loginErr
}

func (a *stubAPI) Register(_ context.Context, in ports.RegisterInput) (*domain.AuthResult, error) {
	return &domain.AuthResult{
		AccessToken:  "acc",
		RefreshToken: "ref",
		User:         domain.User{ID: "new", Email: in.Email, Role: in.Role},
	}, nil
}

func (a *stubAPI) ForgotPassword(_ context.Context, _ string) error { return nil }

func (a *stubAPI) ResetPassword(_ context.Context, _, _ string) error { return nil }

func (a *stubAPI) Logout(_ context.Context, _ ports.TokenSource) error {
	a.logouts++
	return a.logoutErr
}

func (a *stubAPI) Me(ctx context.Context, ts ports.TokenSource) (*domain.User, error) {
	if a.refreshOnCall != "" {
		if err := ts.UpdateAccessToken(ctx, a.refreshOnCall); err != nil {
			return nil, err
		}
	}
	if a.meErr != nil {
		return nil, a.meErr
	}
	u := *a.me
	return &u, nil
}

func (a *stubAPI) UpdateProfile(_ context.Context, _ ports.TokenSource, in domain.ProfileUpdate) (*domain.User, error) {
	a.updates = append(a.updates, in)
	return &domain.User{Name: in.Name, FirstName: in.FirstName, LastName: in.LastName, Phone: in.Phone}, nil
}

func (a *stubAPI) CompleteProfile(_ context.Context, _ ports.TokenSource, role domain.Role) (*domain.User, error) {
	return &domain.User{ID: "u1", Email: "oauth@gmail.com", Role: role}, nil
}

func (a *stubAPI) ListManagedUsers(_ context.Context, _ ports.TokenSource, role domain.Role) ([]domain.User, error) {
	a.lastList = role
	var out []domain.User
	for _, u := range a.managed {
		if role == "" || u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (a *stubAPI) CreateManagedUser(_ context.Context, _ ports.TokenSource, in domain.CreateManagedUser) (*domain.User, error) {
	for _, u := range a.managed {
		if u.Email == in.Email {
			return nil, errors.Join(domain.ErrUserExists, errors.New("upstream: status 409: Email already in use"))
		}
	}
	u := domain.User{ID: in.Email, Email: in.Email, Name: in.Name, Role: in.Role, Status: domain.StatusActive}
	a.managed = append(a.managed, u)
	return &u, nil
}

func (a *stubAPI) DeleteManagedUser(_ context.Context, _ ports.TokenSource, id string) error {
	for i, u := range a.managed {
		if u.ID == id {
			a.managed = append(a.managed[:i], a.managed[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubPrefs struct {
	prefs  map[string]domain.ThemeID
	getErr error
}

func newStubPrefs() *stubPrefs {
	return &stubPrefs{prefs: make(map[string]domain.ThemeID)}
}

func (p *stubPrefs) Get(_ context.Context, userID string) (domain.ThemeID, error) {
	if p.getErr != nil {
		return "", p.getErr
	}
	id, ok := p.prefs[userID]
	if !ok {
		return "", domain.ErrPreferenceNotFound
	}
	return id, nil
}

func (p *stubPrefs) Save(_ context.Context, userID string, id domain.ThemeID) error {
	p.prefs[userID] = id
	return nil
}
