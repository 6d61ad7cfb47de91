package ports

import (
	"context"

	"github.com/taskhive/task-system/internal/core/domain"
)

// UserService exposes account lookups and the admin-creation flow.
type UserService interface {
	// CreateAdmin creates an admin account. The actor must itself be an
	// existing admin; anyone else gets domain.ErrForbidden.
	CreateAdmin(ctx context.Context, actor domain.Actor, name, email, password string) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
