package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

// AuthService turns API sign-ins into server-side sessions.
type AuthService struct {
	api      ports.UpstreamAPI
	sessions ports.SessionStore
	log      zerolog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(api ports.UpstreamAPI, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{api: api, sessions: sessions, log: log}
}

func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*domain.Session, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	res, err := s.api.Login(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.startSession(ctx, res.AccessToken, res.RefreshToken, res.User)
}

// Register signs a new account up. Only roles offered on the sign-up form
// are accepted.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Session, error) {
	if !in.Role.Selectable() {
		return nil, domain.ErrInvalidRole
	}
	res, err := s.api.Register(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.startSession(ctx, res.AccessToken, res.RefreshToken, res.User)
}

// Logout revokes the tokens upstream when possible and always drops the
// local session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	switch {
	case err == nil:
		if err := s.api.Logout(ctx, tokensFor(s.sessions, sess)); err != nil {
			s.log.Warn().Err(err).Str("session_id", sessionID).Msg("upstream logout failed")
		}
	case !errors.Is(err, domain.ErrSessionNotFound):
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("load session for logout")
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// OAuthCallback builds a session from the token and JSON user handed back by
// the OAuth provider redirect. There is no refresh token on this path.
func (s *AuthService) OAuthCallback(ctx context.Context, token, userParam string) (*domain.Session, error) {
	if token == "" || userParam == "" {
		return nil, domain.ErrOAuthTokenMissing
	}

	user, err := parseOAuthUser(userParam)
	if err != nil {
		s.log.Warn().Err(err).Msg("parse oauth user")
		return nil, domain.ErrOAuthFailed
	}
	if user.Role == "" {
		user.Role = domain.RoleUnassigned
	}
	return s.startSession(ctx, token, "", user)
}

func parseOAuthUser(param string) (domain.User, error) {
	var u domain.User
	if err := json.Unmarshal([]byte(param), &u); err == nil {
		return u, nil
	}
	decoded, err := url.QueryUnescape(param)
	if err != nil {
		return domain.User{}, err
	}
	if err := json.Unmarshal([]byte(decoded), &u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	return s.api.ForgotPassword(ctx, email)
}

func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	if token == "" {
		return domain.ErrInvalidCredentials
	}
	return s.api.ResetPassword(ctx, token, password)
}

// CompleteProfile assigns the role chosen by a freshly signed-up OAuth user
// and replaces the cached user with the API's answer.
func (s *AuthService) CompleteProfile(ctx context.Context, sess *domain.Session, role domain.Role) (*domain.Session, error) {
	if !role.Selectable() {
		return nil, domain.ErrInvalidRole
	}
	user, err := s.api.CompleteProfile(ctx, tokensFor(s.sessions, sess), role)
	if err != nil {
		return nil, err
	}
	sess.User = *user
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("complete profile: %w", err)
	}
	return sess, nil
}

func (s *AuthService) startSession(ctx context.Context, access, refresh string, user domain.User) (*domain.Session, error) {
	sess := &domain.Session{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
		ExpiresAt:    sessionExpiry(access, refresh),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("session started")
	return sess, nil
}
