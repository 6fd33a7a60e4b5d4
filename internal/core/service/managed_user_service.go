package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

// ManagedUserService lists, creates and deletes the client and worker
// accounts owned by an employer.
type ManagedUserService struct {
	api      ports.UpstreamAPI
	sessions ports.SessionStore
	log      zerolog.Logger
}

var _ ports.ManagedUserService = (*ManagedUserService)(nil)

func NewManagedUserService(api ports.UpstreamAPI, sessions ports.SessionStore, log zerolog.Logger) *ManagedUserService {
	return &ManagedUserService{api: api, sessions: sessions, log: log}
}

func (s *ManagedUserService) List(ctx context.Context, sess *domain.Session, role domain.Role) (domain.ManagedUserList, error) {
	if role != "" && !isManagedRole(role) {
		return domain.ManagedUserList{}, domain.ErrInvalidRole
	}
	users, err := s.api.ListManagedUsers(ctx, tokensFor(s.sessions, sess), role)
	if err != nil {
		return domain.ManagedUserList{}, err
	}
	return domain.NewManagedUserList(users), nil
}

// Create adds an account. The name falls back to first and last names.
func (s *ManagedUserService) Create(ctx context.Context, sess *domain.Session, in domain.CreateManagedUser) (*domain.User, error) {
	if !isManagedRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}
	if in.Name == "" {
		in.Name = domain.User{FirstName: in.FirstName, LastName: in.LastName}.DisplayName()
	}

	u, err := s.api.CreateManagedUser(ctx, tokensFor(s.sessions, sess), in)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", in.Role, err)
	}
	s.log.Info().Str("owner_id", sess.User.ID).Str("user_id", u.ID).Str("role", string(in.Role)).Msg("managed user created")
	return u, nil
}

func (s *ManagedUserService) Delete(ctx context.Context, sess *domain.Session, id string) error {
	if id == "" {
		return domain.ErrUserNotFound
	}
	if err := s.api.DeleteManagedUser(ctx, tokensFor(s.sessions, sess), id); err != nil {
		return fmt.Errorf("delete managed user: %w", err)
	}
	s.log.Info().Str("owner_id", sess.User.ID).Str("user_id", id).Msg("managed user deleted")
	return nil
}

func isManagedRole(r domain.Role) bool {
	return r == domain.RoleClient || r == domain.RoleWorker
}
