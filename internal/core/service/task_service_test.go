package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taskhive/task-system/internal/core/domain"
	"github.com/taskhive/task-system/internal/core/ports"
)

type taskFixture struct {
	svc        *TaskService
	users      *stubUserRepo
	tasks      *stubTaskRepo
	dispatcher *stubDispatcher
	admin      *domain.User
	alice      *domain.User
	bob        *domain.User
}

func newTaskFixture() *taskFixture {
	users := newStubUserRepo()
	tasks := newStubTaskRepo()
	dispatcher := &stubDispatcher{}
	return &taskFixture{
		svc:        NewTaskService(tasks, users, dispatcher, discardLogger),
		users:      users,
		tasks:      tasks,
		dispatcher: dispatcher,
		admin:      seedUser(users, "Root", "root@x.com", "hash", domain.RoleAdmin),
		alice:      seedUser(users, "Alice", "a@x.com", "hash", domain.RoleUser),
		bob:        seedUser(users, "Bob", "b@x.com", "hash", domain.RoleUser),
	}
}

func (f *taskFixture) actor(u *domain.User) domain.Actor {
	return domain.Actor{ID: u.ID, Role: u.Role}
}

func createInput(actor domain.Actor, recipientEmail string) ports.CreateTaskInput {
	return ports.CreateTaskInput{
		Actor:          actor,
		Title:          "Ship the report",
		Description:    "quarterly numbers",
		DueDate:        time.Now().UTC().AddDate(0, 0, 7),
		RecipientEmail: recipientEmail,
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestTaskService_Create_Success(t *testing.T) {
	f := newTaskFixture()

	task, err := f.svc.Create(context.Background(), createInput(f.actor(f.admin), "a@x.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.OwnerID != f.alice.ID {
		t.Errorf("owner: expected %q, got %q", f.alice.ID, task.OwnerID)
	}
	if task.AssignerID != f.admin.ID {
		t.Errorf("assigner: expected %q, got %q", f.admin.ID, task.AssignerID)
	}
	if task.Status != domain.StatusToDo {
		t.Errorf("expected default status %q, got %q", domain.StatusToDo, task.Status)
	}
}

func TestTaskService_Create_ExplicitStatus(t *testing.T) {
	f := newTaskFixture()

	in := createInput(f.actor(f.admin), "a@x.com")
	in.Status = "in_progress"
	task, err := f.svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Status != domain.StatusInProgress {
		t.Errorf("expected status %q, got %q", domain.StatusInProgress, task.Status)
	}
}

func TestTaskService_Create_InvalidStatus(t *testing.T) {
	f := newTaskFixture()

	in := createInput(f.actor(f.admin), "a@x.com")
	in.Status = "done"
	if _, err := f.svc.Create(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestTaskService_Create_MissingRequiredFields(t *testing.T) {
	f := newTaskFixture()
	actor := f.actor(f.admin)

	cases := []struct {
		name   string
		mutate func(*ports.CreateTaskInput)
	}{
		{"no title", func(in *ports.CreateTaskInput) { in.Title = "" }},
		{"no due date", func(in *ports.CreateTaskInput) { in.DueDate = time.Time{} }},
		{"no recipient", func(in *ports.CreateTaskInput) { in.RecipientEmail = "" }},
	}
	for _, tc := range cases {
		in := createInput(actor, "a@x.com")
		tc.mutate(&in)
		if _, err := f.svc.Create(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("%s: expected ErrValidation, got %v", tc.name, err)
		}
	}
}

func TestTaskService_Create_UnknownRecipient(t *testing.T) {
	f := newTaskFixture()

	_, err := f.svc.Create(context.Background(), createInput(f.actor(f.admin), "ghost@x.com"))
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTaskService_Create_UnknownAssigner(t *testing.T) {
	f := newTaskFixture()

	_, err := f.svc.Create(context.Background(), createInput(domain.Actor{ID: "missing", Role: domain.RoleUser}, "a@x.com"))
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTaskService_Create_UserCannotAssignToAdmin(t *testing.T) {
	f := newTaskFixture()

	_, err := f.svc.Create(context.Background(), createInput(f.actor(f.alice), "root@x.com"))
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestTaskService_Create_AdminCanAssignToAdmin(t *testing.T) {
	f := newTaskFixture()

	if _, err := f.svc.Create(context.Background(), createInput(f.actor(f.admin), "root@x.com")); err != nil {
		t.Fatalf("admin assigning to admin must succeed, got %v", err)
	}
}

func TestTaskService_Create_RecordsActivity(t *testing.T) {
	f := newTaskFixture()

	task, err := f.svc.Create(context.Background(), createInput(f.actor(f.admin), "a@x.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.dispatcher.entries) != 1 {
		t.Fatalf("expected 1 activity entry, got %d", len(f.dispatcher.entries))
	}
	entry := f.dispatcher.entries[0]
	if entry.Action != domain.ActivityTaskCreated || entry.TaskID != task.ID {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

// ---------------------------------------------------------------------------
// UpdateStatus
// ---------------------------------------------------------------------------

func TestTaskService_UpdateStatus_OwnerAllowed(t *testing.T) {
	f := newTaskFixture()
	task, _ := f.svc.Create(context.Background(), createInput(f.actor(f.admin), "a@x.com"))

	updated, err := f.svc.UpdateStatus(context.Background(), f.actor(f.alice), task.ID, "completed")
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Status != domain.StatusCompleted {
		t.Fatalf("expected status completed, got %q", updated.Status)
	}
}

func TestTaskService_UpdateStatus_AdminBypassesOwnership(t *testing.T) {
	f := newTaskFixture()
	task, _ := f.svc.Create(context.Background(), createInput(f.actor(f.admin), "a@x.com"))

	if _, err := f.svc.UpdateStatus(context.Background(), f.actor(f.admin), task.ID, "in_progress"); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestTaskService_UpdateStatus_StrangerForbidden(t *testing.T) {
	f := newTaskFixture()
	task, _ := f.svc.Create(context.Background(), createInput(f.actor(f.admin), "a@x.com"))

	_, err := f.svc.UpdateStatus(context.Background(), f.actor(f.bob), task.ID, "completed")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestTaskService_UpdateStatus_Idempotent(t *testing.T) {
	f := newTaskFixture()
	task, _ := f.svc.Create(context.Background(), createInput(f.actor(f.admin), "a@x.com"))

	first, err := f.svc.UpdateStatus(context.Background(), f.actor(f.alice), task.ID, "completed")
	if err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	second, err := f.svc.UpdateStatus(context.Background(), f.actor(f.alice), task.ID, "completed")
	if err != nil {
		t.Fatalf("repeat update must succeed, got %v", err)
	}
	if second.Status != first.Status {
		t.Fatalf("status changed on repeat: %q vs %q", second.Status, first.Status)
	}
	if f.tasks.statusWrites != 1 {
		t.Fatalf("repeat write must be a no-op, got %d writes", f.tasks.statusWrites)
	}
}

func TestTaskService_UpdateStatus_UnknownTask(t *testing.T) {
	f := newTaskFixture()

	_, err := f.svc.UpdateStatus(context.Background(), f.actor(f.alice), "missing", "completed")
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_UpdateStatus_UnknownActor(t *testing.T) {
	f := newTaskFixture()
	task, _ := f.svc.Create(context.Background(), createInput(f.actor(f.admin), "a@x.com"))

	_, err := f.svc.UpdateStatus(context.Background(), domain.Actor{ID: "missing", Role: domain.RoleUser}, task.ID, "completed")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTaskService_UpdateStatus_InvalidStatus(t *testing.T) {
	f := newTaskFixture()
	task, _ := f.svc.Create(context.Background(), createInput(f.actor(f.admin), "a@x.com"))

	_, err := f.svc.UpdateStatus(context.Background(), f.actor(f.alice), task.ID, "archived")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// UpdateTags / FilterByTag
// ---------------------------------------------------------------------------

func TestTaskService_UpdateTags_RequiresOwnershipOrAdmin(t *testing.T) {
	f := newTaskFixture()
	task, _ := f.svc.Create(context.Background(), createInput(f.actor(f.admin), "a@x.com"))

	if _, err := f.svc.UpdateTags(context.Background(), f.actor(f.alice), task.ID, "urgent"); err != nil {
		t.Fatalf("owner tag update failed: %v", err)
	}
	if _, err := f.svc.UpdateTags(context.Background(), f.actor(f.admin), task.ID, "backlog"); err != nil {
		t.Fatalf("admin tag update failed: %v", err)
	}
	if _, err := f.svc.UpdateTags(context.Background(), f.actor(f.bob), task.ID, "mine"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for stranger, got %v", err)
	}
}

func TestTaskService_FilterByTag_ExactCaseSensitive(t *testing.T) {
	f := newTaskFixture()
	task, _ := f.svc.Create(context.Background(), createInput(f.actor(f.admin), "a@x.com"))
	_, _ = f.svc.UpdateTags(context.Background(), f.actor(f.alice), task.ID, "Urgent")

	matched, err := f.svc.FilterByTag(context.Background(), "Urgent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matched) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matched))
	}

	// Lookup is case-sensitive.
	other, err := f.svc.FilterByTag(context.Background(), "urgent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected 0 matches for different case, got %d", len(other))
	}
}

func TestTaskService_FilterByTag_NoMatchesIsEmptyNotError(t *testing.T) {
	f := newTaskFixture()

	matched, err := f.svc.FilterByTag(context.Background(), "nothing-here")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if matched == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(matched) != 0 {
		t.Fatalf("expected 0 matches, got %d", len(matched))
	}
}

// ---------------------------------------------------------------------------
// End-to-end scenario
// ---------------------------------------------------------------------------

func TestTaskService_Scenario_AdminAssignsUserCompletes(t *testing.T) {
	f := newTaskFixture()

	task, err := f.svc.Create(context.Background(), createInput(f.actor(f.admin), "a@x.com"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if task.OwnerID != f.alice.ID {
		t.Fatalf("expected owner %q, got %q", f.alice.ID, task.OwnerID)
	}

	done, err := f.svc.UpdateStatus(context.Background(), f.actor(f.alice), task.ID, "completed")
	if err != nil {
		t.Fatalf("owner completion failed: %v", err)
	}
	if done.Status != domain.StatusCompleted {
		t.Fatalf("expected completed, got %q", done.Status)
	}

	again, err := f.svc.UpdateStatus(context.Background(), f.actor(f.alice), task.ID, "completed")
	if err != nil {
		t.Fatalf("repeat completion must not error: %v", err)
	}
	if again.Status != domain.StatusCompleted {
		t.Fatalf("expected completed after repeat, got %q", again.Status)
	}

	if _, err := f.svc.UpdateStatus(context.Background(), f.actor(f.bob), task.ID, "to-do"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
}
