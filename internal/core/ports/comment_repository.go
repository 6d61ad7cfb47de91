package ports

import (
	"context"

	"github.com/taskhive/task-system/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	FindAll(ctx context.Context) ([]*domain.Comment, error)
	UpdateBody(ctx context.Context, id string, body string) (*domain.Comment, error)
	// Delete removes the comment permanently. No soft-delete, no tombstone.
	Delete(ctx context.Context, id string) error
}
