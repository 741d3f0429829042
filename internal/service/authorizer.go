package service

import (
	"fmt"

	"github.com/teamwell/taskman/internal/domain"
)

// Authorizer is the access-control decision engine. Every mutating or read
// rule in the system lives here, evaluated against already-loaded records:
// the engine never performs I/O and never mutates state. Denials wrap
// domain.ErrForbidden; the internal detail is for logs only and is never
// returned to the caller.
type Authorizer struct{}

// NewAuthorizer creates a new Authorizer.
func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

// CanCreateTask validates task creation. Every authenticated user may create
// tasks; whether an explicit assignee is honored is decided at apply time.
func (a *Authorizer) CanCreateTask(caller *domain.User) error {
	return nil
}

// CanUpdateTask validates a task update, including an optional reassignment
// request. A non-admin may update only a task they are currently assigned to,
// and may name an assignee only if it is themselves. This last rule is a
// deliberate no-op reassignment: the current assignee restating their own id
// is allowed, naming anyone else is not.
func (a *Authorizer) CanUpdateTask(caller *domain.User, task *domain.Task, requestedAssigneeID *string) error {
	if caller.IsAdmin() {
		return nil
	}
	if !task.IsAssignedTo(caller.ID) {
		return fmt.Errorf("%w: user %s is not assignee of task %s", domain.ErrForbidden, caller.ID, task.ID)
	}
	if requestedAssigneeID != nil && *requestedAssigneeID != caller.ID {
		return fmt.Errorf("%w: user %s cannot reassign task %s to another user", domain.ErrForbidden, caller.ID, task.ID)
	}
	return nil
}

// CanDeleteTask validates task deletion. Admin only.
func (a *Authorizer) CanDeleteTask(caller *domain.User) error {
	if !caller.IsAdmin() {
		return fmt.Errorf("%w: user %s cannot delete tasks", domain.ErrForbidden, caller.ID)
	}
	return nil
}

// CanListTasksByAuthor validates listing tasks by author: admin, or the
// caller asking for their own tasks.
func (a *Authorizer) CanListTasksByAuthor(caller *domain.User, authorID string) error {
	if caller.IsAdmin() || caller.ID == authorID {
		return nil
	}
	return fmt.Errorf("%w: user %s cannot list tasks of author %s", domain.ErrForbidden, caller.ID, authorID)
}

// CanListTasksByAssignee validates listing tasks by assignee: admin, or the
// caller asking for their own tasks.
func (a *Authorizer) CanListTasksByAssignee(caller *domain.User, assigneeID string) error {
	if caller.IsAdmin() || caller.ID == assigneeID {
		return nil
	}
	return fmt.Errorf("%w: user %s cannot list tasks of assignee %s", domain.ErrForbidden, caller.ID, assigneeID)
}

// CanUpdateStatus validates a status change: admin, or the current assignee.
func (a *Authorizer) CanUpdateStatus(caller *domain.User, task *domain.Task) error {
	if caller.IsAdmin() || task.IsAssignedTo(caller.ID) {
		return nil
	}
	return fmt.Errorf("%w: user %s is not assignee of task %s", domain.ErrForbidden, caller.ID, task.ID)
}

// CanUpdatePriority validates a priority change. Admin only.
func (a *Authorizer) CanUpdatePriority(caller *domain.User) error {
	if !caller.IsAdmin() {
		return fmt.Errorf("%w: user %s cannot change task priority", domain.ErrForbidden, caller.ID)
	}
	return nil
}

// CanReassignTask validates an explicit reassignment. Admin only.
func (a *Authorizer) CanReassignTask(caller *domain.User) error {
	if !caller.IsAdmin() {
		return fmt.Errorf("%w: user %s cannot reassign tasks", domain.ErrForbidden, caller.ID)
	}
	return nil
}

// CanListComments validates reading a task's comments: admin, the task's
// author, or its current assignee.
func (a *Authorizer) CanListComments(caller *domain.User, task *domain.Task) error {
	if caller.IsAdmin() || task.IsAuthoredBy(caller.ID) || task.IsAssignedTo(caller.ID) {
		return nil
	}
	return fmt.Errorf("%w: user %s is neither author nor assignee of task %s", domain.ErrForbidden, caller.ID, task.ID)
}

// CanAddComment validates posting a comment: admin, or the current assignee.
// The author of a task may read its comments but may not post one.
func (a *Authorizer) CanAddComment(caller *domain.User, task *domain.Task) error {
	if caller.IsAdmin() || task.IsAssignedTo(caller.ID) {
		return nil
	}
	return fmt.Errorf("%w: user %s is not assignee of task %s", domain.ErrForbidden, caller.ID, task.ID)
}

// CanUpdateUserRole validates a role change. Admin only.
func (a *Authorizer) CanUpdateUserRole(caller *domain.User) error {
	if !caller.IsAdmin() {
		return fmt.Errorf("%w: user %s cannot change user roles", domain.ErrForbidden, caller.ID)
	}
	return nil
}
