package ports

import (
	"context"

	"github.com/jobzen/dashboard/internal/core/domain"
)

// TokenSource hands the API client the caller's tokens and receives a new
// access token after a refresh.
type TokenSource interface {
	Tokens() (access, refresh string)
	UpdateAccessToken(ctx context.Context, access string) error
}

// LoginInput is the credential pair for password sign-in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput is the self-service sign-up payload.
type RegisterInput struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
	Phone    string      `json:"phone,omitempty"`
}

// UpstreamAPI is the external Jobzen REST API. Calls taking a TokenSource
// carry a bearer token and retry once after a 401-triggered refresh.
type UpstreamAPI interface {
	Login(ctx context.Context, in LoginInput) (*domain.AuthResult, error)
	Register(ctx context.Context, in RegisterInput) (*domain.AuthResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error

	Logout(ctx context.Context, ts TokenSource) error
	Me(ctx context.Context, ts TokenSource) (*domain.User, error)
	UpdateProfile(ctx context.Context, ts TokenSource, in domain.ProfileUpdate) (*domain.User, error)
	CompleteProfile(ctx context.Context, ts TokenSource, role domain.Role) (*domain.User, error)
	ListManagedUsers(ctx context.Context, ts TokenSource, role domain.Role) ([]domain.User, error)
	CreateManagedUser(ctx context.Context, ts TokenSource, in domain.CreateManagedUser) (*domain.User, error)
	DeleteManagedUser(ctx context.Context, ts TokenSource, id string) error
}
