package ports

import (
	"context"

	"github.com/jobzen/dashboard/internal/core/domain"
)

// SessionStore persists auth sessions between requests.
type SessionStore interface {
	Create(ctx context.Context, s *domain.Session) error
	// Get returns domain.ErrSessionNotFound when id is unknown or expired.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
}

// ToastQueue holds notifications raised during a redirect until the next
// page asks for them.
type ToastQueue interface {
	Push(ctx context.Context, sessionID string, t domain.Toast) error
	Drain(ctx context.Context, sessionID string) ([]domain.Toast, error)
}

// ThemePreferenceRepository stores the theme chosen by signed-in users.
type ThemePreferenceRepository interface {
	// Get returns domain.ErrPreferenceNotFound when the user never chose one.
	Get(ctx context.Context, userID string) (domain.ThemeID, error)
	Save(ctx context.Context, userID string, id domain.ThemeID) error
}
