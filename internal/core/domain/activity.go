package domain

import "time"

// ActivityAction identifies the kind of mutation an activity entry records.
type ActivityAction string

const (
	ActivityTaskCreated    ActivityAction = "task_created"
	ActivityStatusChanged  ActivityAction = "status_changed"
	ActivityTagsChanged    ActivityAction = "tags_changed"
	ActivityCommentAdded   ActivityAction = "comment_added"
	ActivityCommentEdited  ActivityAction = "comment_edited"
	ActivityCommentDeleted ActivityAction = "comment_deleted"
)

// ActivityEntry is a single audit record for a task. Entries are written
// asynchronously; per-task ordering is preserved by the dispatcher.
type ActivityEntry struct {
	ID        string         `json:"id"`
	TaskID    string         `json:"task_id"`
	ActorID   string         `json:"actor_id"`
	Action    ActivityAction `json:"action"`
	Detail    string         `json:"detail,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
