package ports

import (
	"context"

	"github.com/taskhive/task-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Email uniqueness is enforced at this layer; Create returns
// domain.ErrUserExists on a duplicate email.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
}
