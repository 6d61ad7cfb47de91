package ports

import (
	"context"

	"github.com/taskhive/task-system/internal/core/domain"
)

// ActivityService records and reads the per-task audit trail.
type ActivityService interface {
	Record(ctx context.Context, entry domain.ActivityEntry) error
	ListByTask(ctx context.Context, taskID string) ([]*domain.ActivityEntry, error)
}

// ActivityDispatcher decouples the lifecycle services from the activity
// worker pool. Enqueue must not block the calling request.
type ActivityDispatcher interface {
	Enqueue(entry domain.ActivityEntry)
}
