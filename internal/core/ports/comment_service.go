package ports

import (
	"context"

	"github.com/taskhive/task-system/internal/core/domain"
)

// CommentService defines the comment lifecycle use cases.
type CommentService interface {
	Create(ctx context.Context, actor domain.Actor, taskID, body string) (*domain.Comment, error)
	Edit(ctx context.Context, actor domain.Actor, commentID, body string) (*domain.Comment, error)
	Delete(ctx context.Context, actor domain.Actor, commentID string) error
	List(ctx context.Context) ([]*domain.Comment, error)
}
