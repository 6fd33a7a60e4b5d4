package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

// ThemeService resolves the active theme and persists selections.
type ThemeService struct {
	prefs ports.ThemePreferenceRepository
	log   zerolog.Logger
}

var _ ports.ThemeService = (*ThemeService)(nil)

// NewThemeService creates a ThemeService. prefs may be nil, in which case
// only the cookie carries the selection.
func NewThemeService(prefs ports.ThemePreferenceRepository, log zerolog.Logger) *ThemeService {
	return &ThemeService{prefs: prefs, log: log}
}

func (s *ThemeService) Active(ctx context.Context, userID, cookieValue string) domain.ThemeID {
	if userID != "" && s.prefs != nil {
		id, err := s.prefs.Get(ctx, userID)
		switch {
		case err == nil && id.Valid():
			return id
		case err != nil && !errors.Is(err, domain.ErrPreferenceNotFound):
			s.log.Warn().Err(err).Str("user_id", userID).Msg("load theme preference")
		}
	}
	return domain.ThemeID(cookieValue).Resolve()
}

// Select validates id and stores it for userID. Anonymous selections are
// only kept in the caller's cookie.
func (s *ThemeService) Select(ctx context.Context, userID string, id domain.ThemeID) (domain.Theme, error) {
	if !id.Valid() {
		return domain.Theme{}, domain.ErrInvalidTheme
	}
	if userID != "" && s.prefs != nil {
		if err := s.prefs.Save(ctx, userID, id); err != nil {
			return domain.Theme{}, err
		}
	}
	return domain.LookupTheme(id), nil
}

func (s *ThemeService) Tokens(id domain.ThemeID) domain.TokenMap {
	return domain.ThemeTokens(id)
}

func (s *ThemeService) StyleSheet(id domain.ThemeID) string {
	return domain.StyleSheet(id)
}
