package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

// ProfileService keeps the session's cached user in step with the API.
type ProfileService struct {
	api      ports.UpstreamAPI
	sessions ports.SessionStore
	log      zerolog.Logger
}

var _ ports.ProfileService = (*ProfileService)(nil)

func NewProfileService(api ports.UpstreamAPI, sessions ports.SessionStore, log zerolog.Logger) *ProfileService {
	return &ProfileService{api: api, sessions: sessions, log: log}
}

// Profile fetches the current user and merges it into the cache. When the
// API is unreachable the cached user is served instead; an expired session
// is always reported.
func (s *ProfileService) Profile(ctx context.Context, sess *domain.Session) (*domain.User, error) {
	fresh, err := s.api.Me(ctx, tokensFor(s.sessions, sess))
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return nil, err
		}
		s.log.Warn().Err(err).Str("user_id", sess.User.ID).Msg("profile fetch failed, using cached user")
		cached := sess.User
		return &cached, nil
	}

	merged, err := s.store(ctx, sess, *fresh)
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// UpdateProfile sends the edited fields. An empty name is derived from the
// first and last names.
func (s *ProfileService) UpdateProfile(ctx context.Context, sess *domain.Session, in domain.ProfileUpdate) (*domain.User, error) {
	if in.Name == "" {
		in.Name = strings.TrimSpace(in.FirstName + " " + in.LastName)
	}
	fresh, err := s.api.UpdateProfile(ctx, tokensFor(s.sessions, sess), in)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, sess, *fresh)
}

func (s *ProfileService) store(ctx context.Context, sess *domain.Session, fresh domain.User) (*domain.User, error) {
	sess.User = sess.User.Merge(fresh)
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session user: %w", err)
	}
	u := sess.User
	return &u, nil
}
