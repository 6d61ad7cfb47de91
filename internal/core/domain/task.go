package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusToDo       TaskStatus = "to-do"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// Valid reports whether s is one of the recognised statuses. Any valid status
// may be written by an authorized actor at any time; there is no forward-only
// ordering, and re-writing the current status is a no-op success.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

var ErrTaskNotFound = errors.New("task not found")
var ErrValidation = errors.New("validation failed")

// Task is a unit of work assigned by one user to another. OwnerID is the
// assignee responsible for completing it; AssignerID is who created it.
// Tags is a single free-text label, not a collection.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     time.Time  `json:"due_date"`
	Status      TaskStatus `json:"status"`
	Tags        string     `json:"tags,omitempty"`
	OwnerID     string     `json:"owner_id"`
	AssignerID  string     `json:"assigner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
