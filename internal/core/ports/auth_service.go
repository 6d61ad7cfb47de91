package ports

import (
	"context"

	"github.com/taskhive/task-system/internal/core/domain"
)

// AuthService handles registration and credential verification. Tokens are
// opaque to the rest of the system; the lifecycle services receive an already
// resolved domain.Actor.
type AuthService interface {
	// Register creates an ordinary user account. The role is always
	// domain.RoleUser; admin accounts are created through UserService.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// AdminLogin is like Login but refuses non-admin accounts with
	// domain.ErrForbidden before the password is checked.
	AdminLogin(ctx context.Context, email, password string) (string, *domain.User, error)
}
