package ports

import (
	"context"
	"time"

	"github.com/taskhive/task-system/internal/core/domain"
)

// CreateTaskInput carries everything needed to create a task. The recipient
// is resolved by email and becomes the task owner; the actor becomes the
// assigner.
type CreateTaskInput struct {
	Actor          domain.Actor
	Title          string
	Description    string
	DueDate        time.Time
	Status         string // optional; defaults to "to-do"
	RecipientEmail string
}

// TaskService defines the task lifecycle use cases.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, taskID, status string) (*domain.Task, error)
	UpdateTags(ctx context.Context, actor domain.Actor, taskID, tags string) (*domain.Task, error)
	// FilterByTag returns tasks whose tag exactly equals tag. A tag matching
	// nothing yields an empty slice, not an error.
	FilterByTag(ctx context.Context, tag string) ([]*domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
}
