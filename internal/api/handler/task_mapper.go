package handler

import (
	"time"

	"github.com/taskhive/task-system/internal/core/domain"
)

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate.UTC().Format(time.RFC3339),
		Status:      string(t.Status),
		Tags:        t.Tags,
		OwnerID:     t.OwnerID,
		AssignerID:  t.AssignerID,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toTasksResponse(tasks []*domain.Task) tasksResponse {
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return tasksResponse{Tasks: out}
}

func toActivityResponse(entries []*domain.ActivityEntry) activityResponse {
	out := make([]activityEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, activityEntryResponse{
			ID:        e.ID,
			TaskID:    e.TaskID,
			ActorID:   e.ActorID,
			Action:    string(e.Action),
			Detail:    e.Detail,
			Timestamp: e.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	return activityResponse{Entries: out}
}
