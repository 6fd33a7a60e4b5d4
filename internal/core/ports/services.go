package ports

import (
	"context"

	"github.com/jobzen/dashboard/internal/core/domain"
)

// AuthService drives sign-in, sign-up, sign-out and password recovery.
type AuthService interface {
	Login(ctx context.Context, in LoginInput) (*domain.Session, error)
	Register(ctx context.Context, in RegisterInput) (*domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
	OAuthCallback(ctx context.Context, token, userParam string) (*domain.Session, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
	CompleteProfile(ctx context.Context, s *domain.Session, role domain.Role) (*domain.Session, error)
}

// ProfileService reads and edits the signed-in user's profile.
type ProfileService interface {
	Profile(ctx context.Context, s *domain.Session) (*domain.User, error)
	UpdateProfile(ctx context.Context, s *domain.Session, in domain.ProfileUpdate) (*domain.User, error)
}

// ManagedUserService lets employers manage client and worker accounts.
type ManagedUserService interface {
	List(ctx context.Context, s *domain.Session, role domain.Role) (domain.ManagedUserList, error)
	Create(ctx context.Context, s *domain.Session, in domain.CreateManagedUser) (*domain.User, error)
	Delete(ctx context.Context, s *domain.Session, id string) error
}

// ThemeService resolves and persists theme selections.
type ThemeService interface {
	// Active picks the stored preference of userID, then cookieValue, then
	// the default theme. userID may be empty for anonymous visitors.
	Active(ctx context.Context, userID, cookieValue string) domain.ThemeID
	Select(ctx context.Context, userID string, id domain.ThemeID) (domain.Theme, error)
	Tokens(id domain.ThemeID) domain.TokenMap
	StyleSheet(id domain.ThemeID) string
}

// DashboardService serves the per-role navigation and welcome banner.
type DashboardService interface {
	Config(role domain.Role) domain.DashboardConfig
}
