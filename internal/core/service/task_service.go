package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/task-system/internal/api/metrics"
	"github.com/taskhive/task-system/internal/core/domain"
	"github.com/taskhive/task-system/internal/core/ports"
)

// TaskService orchestrates the task lifecycle: it loads state, asks the
// decision functions, and only then mutates the store.
type TaskService struct {
	tasks    ports.TaskRepository
	users    ports.UserRepository
	activity ports.ActivityDispatcher
	log      zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository, activity ports.ActivityDispatcher, log zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, users: users, activity: activity, log: log}
}

// Create validates the payload, resolves assigner and recipient, and persists
// a new task owned by the recipient.
func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" || input.DueDate.IsZero() || strings.TrimSpace(input.RecipientEmail) == "" {
		return nil, fmt.Errorf("%w: title, due_date and recipient_email are required", domain.ErrValidation)
	}

	status := domain.StatusToDo
	if input.Status != "" {
		status = domain.TaskStatus(input.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, input.Status)
		}
	}

	assigner, err := s.users.FindByID(ctx, input.Actor.ID)
	if err != nil {
		return nil, err
	}
	recipient, err := s.users.FindByEmail(ctx, input.RecipientEmail)
	if err != nil {
		return nil, err
	}

	actor := domain.Actor{ID: assigner.ID, Role: assigner.Role}
	if d := domain.CanCreateTask(actor, recipient.Role); !d.Allowed {
		metrics.AuthzDenialsTotal.WithLabelValues("create_task", d.Reason).Inc()
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      status,
		OwnerID:     recipient.ID,
		AssignerID:  assigner.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create task")
		return nil, err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(created.Status)).Inc()
	s.record(domain.ActivityEntry{
		TaskID:  created.ID,
		ActorID: assigner.ID,
		Action:  domain.ActivityTaskCreated,
		Detail:  "assigned to " + recipient.Email,
	})

	s.log.Info().
		Str("task_id", created.ID).
		Str("owner_id", recipient.ID).
		Str("assigner_id", assigner.ID).
		Msg("task created")
	return created, nil
}

// UpdateStatus writes a new status after the actor passes the ownership
// check. Re-writing the current status is a no-op success.
func (s *TaskService) UpdateStatus(ctx context.Context, actor domain.Actor, taskID, status string) (*domain.Task, error) {
	newStatus := domain.TaskStatus(status)
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	task, resolved, err := s.loadTaskAndActor(ctx, actor, taskID)
	if err != nil {
		return nil, err
	}

	if d := domain.CanUpdateTask(resolved, task); !d.Allowed {
		metrics.AuthzDenialsTotal.WithLabelValues("update_status", d.Reason).Inc()
		return nil, domain.ErrForbidden
	}

	if task.Status == newStatus {
		return task, nil
	}

	updated, err := s.tasks.UpdateStatus(ctx, taskID, newStatus)
	if err != nil {
		return nil, err
	}

	metrics.TaskStatusUpdatesTotal.WithLabelValues(string(newStatus)).Inc()
	s.record(domain.ActivityEntry{
		TaskID:  updated.ID,
		ActorID: resolved.ID,
		Action:  domain.ActivityStatusChanged,
		Detail:  fmt.Sprintf("%s -> %s", task.Status, newStatus),
	})

	s.log.Info().
		Str("task_id", updated.ID).
		Str("status", string(newStatus)).
		Str("actor_id", resolved.ID).
		Msg("task status updated")
	return updated, nil
}

// UpdateTags replaces the task's tag. Requires the same authorization as a
// status update: the observed behavior had no check here, which was flagged as
// a gap and is deliberately closed.
func (s *TaskService) UpdateTags(ctx context.Context, actor domain.Actor, taskID, tags string) (*domain.Task, error) {
	task, resolved, err := s.loadTaskAndActor(ctx, actor, taskID)
	if err != nil {
		return nil, err
	}

	if d := domain.CanUpdateTask(resolved, task); !d.Allowed {
		metrics.AuthzDenialsTotal.WithLabelValues("update_tags", d.Reason).Inc()
		return nil, domain.ErrForbidden
	}

	updated, err := s.tasks.UpdateTags(ctx, taskID, tags)
	if err != nil {
		return nil, err
	}

	metrics.TaskTagUpdatesTotal.Inc()
	s.record(domain.ActivityEntry{
		TaskID:  updated.ID,
		ActorID: resolved.ID,
		Action:  domain.ActivityTagsChanged,
		Detail:  tags,
	})
	return updated, nil
}

// FilterByTag returns all tasks whose tag exactly equals tag, case-sensitive.
func (s *TaskService) FilterByTag(ctx context.Context, tag string) ([]*domain.Task, error) {
	tasks, err := s.tasks.FindByTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.FindByID(ctx, id)
}

func (s *TaskService) List(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.tasks.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

// loadTaskAndActor resolves both sides of a check-then-mutate operation,
// returning the actor with its persisted role.
func (s *TaskService) loadTaskAndActor(ctx context.Context, actor domain.Actor, taskID string) (*domain.Task, domain.Actor, error) {
	user, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, domain.Actor{}, err
	}
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, domain.Actor{}, err
	}
	return task, domain.Actor{ID: user.ID, Role: user.Role}, nil
}

func (s *TaskService) record(entry domain.ActivityEntry) {
	if s.activity == nil {
		return
	}
	entry.Timestamp = time.Now().UTC()
	s.activity.Enqueue(entry)
}
