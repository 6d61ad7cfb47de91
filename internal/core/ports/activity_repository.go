package ports

import (
	"context"

	"github.com/taskhive/task-system/internal/core/domain"
)

// ActivityRepository persists the per-task audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityEntry) error
	// ListByTask returns a task's entries in chronological order.
	ListByTask(ctx context.Context, taskID string) ([]*domain.ActivityEntry, error)
}
