package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/taskhive/task-system/internal/api/metrics"
	"github.com/taskhive/task-system/internal/core/domain"
	"github.com/taskhive/task-system/internal/core/ports"
)

// UserService implements account lookups and the admin-creation flow.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

// CreateAdmin creates an admin account on behalf of actor. The actor is
// re-resolved from the store so the decision uses the persisted role, not a
// stale token claim.
func (s *UserService) CreateAdmin(ctx context.Context, actor domain.Actor, name, email, password string) (*domain.User, error) {
	stored, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if d := domain.CanPromoteToAdmin(domain.Actor{ID: stored.ID, Role: stored.Role}); !d.Allowed {
		metrics.AuthzDenialsTotal.WithLabelValues("create_admin", d.Reason).Inc()
		return nil, domain.ErrForbidden
	}

	user, err := newUser(name, email, password, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("admin_id", created.ID).
		Str("created_by", stored.ID).
		Msg("admin account created")
	return created, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return users, nil
}
