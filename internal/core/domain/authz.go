package domain

import "errors"

var ErrForbidden = errors.New("access forbidden")

// Decision is the outcome of an authorization check. A denial carries a
// reason code so callers can report why access was refused.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow returns a positive decision.
func Allow() Decision { return Decision{Allowed: true} }

// Deny returns a negative decision with the given reason code.
func Deny(reason string) Decision { return Decision{Reason: reason} }

// Reason codes carried by denials.
const (
	ReasonAssignToAdmin = "cannot_assign_task_to_admin"
	ReasonNotTaskOwner  = "not_task_owner"
	ReasonNotAuthor     = "not_comment_author"
	ReasonAdminOnly     = "admin_only"
)

// CanCreateTask decides whether actor may assign a task to a user holding
// assigneeRole. Ordinary users may not burden admins with tasks; everything
// else is allowed.
func CanCreateTask(actor Actor, assigneeRole Role) Decision {
	if actor.Role == RoleUser && assigneeRole == RoleAdmin {
		return Deny(ReasonAssignToAdmin)
	}
	return Allow()
}

// CanUpdateTask decides whether actor may mutate the task's status or tags.
// Admins bypass ownership; everyone else must own the task.
func CanUpdateTask(actor Actor, task *Task) Decision {
	if actor.Role == RoleAdmin {
		return Allow()
	}
	if actor.ID == task.OwnerID {
		return Allow()
	}
	return Deny(ReasonNotTaskOwner)
}

// CanEditComment decides whether actor may rewrite a comment's body. Only the
// author may edit; admins moderate through deletion, not rewriting.
func CanEditComment(actor Actor, comment *Comment) Decision {
	if actor.ID == comment.AuthorID {
		return Allow()
	}
	return Deny(ReasonNotAuthor)
}

// CanDeleteComment decides whether actor may remove a comment. Authors may
// delete their own; admins may delete any.
func CanDeleteComment(actor Actor, comment *Comment) Decision {
	if actor.Role == RoleAdmin || actor.ID == comment.AuthorID {
		return Allow()
	}
	return Deny(ReasonNotAuthor)
}

// CanPromoteToAdmin decides whether actor may create admin accounts.
func CanPromoteToAdmin(actor Actor) Decision {
	if actor.Role == RoleAdmin {
		return Allow()
	}
	return Deny(ReasonAdminOnly)
}
