package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taskhive/task-system/internal/core/domain"
	"github.com/taskhive/task-system/internal/core/ports"
)

// ActivityService persists and reads the per-task audit trail. Record is
// called from the dispatcher workers, never from a request goroutine.
type ActivityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) *ActivityService {
	return &ActivityService{repo: repo, log: log}
}

func (s *ActivityService) Record(ctx context.Context, entry domain.ActivityEntry) error {
	if entry.TaskID == "" || entry.Action == "" {
		return fmt.Errorf("%w: activity entry requires task_id and action", domain.ErrValidation)
	}
	if err := s.repo.Insert(ctx, &entry); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

func (s *ActivityService) ListByTask(ctx context.Context, taskID string) ([]*domain.ActivityEntry, error) {
	entries, err := s.repo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.ActivityEntry{}
	}
	return entries, nil
}
