package ports

import (
	"context"

	"github.com/taskhive/task-system/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks. Update methods
// operate on a single document keyed by id and return the updated record, or
// domain.ErrTaskNotFound when the id does not resolve.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	FindAll(ctx context.Context) ([]*domain.Task, error)
	// FindByTag returns all tasks whose tag exactly equals tag, case-sensitive.
	FindByTag(ctx context.Context, tag string) ([]*domain.Task, error)
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error)
	UpdateTags(ctx context.Context, id string, tags string) (*domain.Task, error)
}
