package handler

import "time"

// --- Request types ---

type createTaskRequest struct {
	Title          string    `json:"title"           validate:"required"`
	Description    string    `json:"description"`
	DueDate        time.Time `json:"due_date"        validate:"required"`
	Status         string    `json:"status"          validate:"omitempty,oneof=to-do in_progress completed"`
	RecipientEmail string    `json:"recipient_email" validate:"required,email"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=to-do in_progress completed"`
}

type updateTagsRequest struct {
	Tags string `json:"tags" validate:"required"`
}

// --- Response types ---

type taskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
	Tags        string `json:"tags,omitempty"`
	OwnerID     string `json:"owner_id"`
	AssignerID  string `json:"assigner_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type tasksResponse struct {
	Tasks []taskResponse `json:"tasks"`
}

type activityEntryResponse struct {
	ID        string `json:"id"`
	TaskID    string `json:"task_id"`
	ActorID   string `json:"actor_id"`
	Action    string `json:"action"`
	Detail    string `json:"detail,omitempty"`
	Timestamp string `json:"timestamp"`
}

type activityResponse struct {
	Entries []activityEntryResponse `json:"entries"`
}
