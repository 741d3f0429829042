package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamwell/taskman/internal/domain"
)

var (
	admin = &domain.User{ID: "admin-id", Username: "bob", Email: "bob@example.com", Role: domain.RoleAdmin}
	alice = &domain.User{ID: "alice-id", Username: "alice", Email: "alice@example.com", Role: domain.RoleUser}
	carol = &domain.User{ID: "carol-id", Username: "carol", Email: "carol@example.com", Role: domain.RoleUser}
)

// task authored by alice, assigned to carol
func authoredAssigned(authorID, assigneeID string) *domain.Task {
	return &domain.Task{
		ID:         "task-id",
		Title:      "Fix bug",
		Status:     domain.TaskStatusPending,
		Priority:   domain.TaskPriorityMedium,
		AuthorID:   authorID,
		AssigneeID: assigneeID,
	}
}

func TestAuthorizer_CreateTask(t *testing.T) {
	a := NewAuthorizer()

	assert.NoError(t, a.CanCreateTask(alice))
	assert.NoError(t, a.CanCreateTask(admin))
}

func TestAuthorizer_UpdateTask(t *testing.T) {
	a := NewAuthorizer()
	task := authoredAssigned(alice.ID, carol.ID)

	tests := []struct {
		name       string
		caller     *domain.User
		assigneeID *string
		allowed    bool
	}{
		{name: "admin", caller: admin, allowed: true},
		{name: "admin with reassignment", caller: admin, assigneeID: &alice.ID, allowed: true},
		{name: "assignee without reassignment", caller: carol, allowed: true},
		{name: "assignee restating own id", caller: carol, assigneeID: &carol.ID, allowed: true},
		{name: "assignee reassigning to other", caller: carol, assigneeID: &alice.ID, allowed: false},
		{name: "author who is not assignee", caller: alice, allowed: false},
		{name: "unrelated user", caller: alice, assigneeID: &alice.ID, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.CanUpdateTask(tt.caller, task, tt.assigneeID)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				require.ErrorIs(t, err, domain.ErrForbidden)
			}
		})
	}
}

func TestAuthorizer_DeleteTask_AdminOnly(t *testing.T) {
	a := NewAuthorizer()

	assert.NoError(t, a.CanDeleteTask(admin))
	require.ErrorIs(t, a.CanDeleteTask(alice), domain.ErrForbidden)
	require.ErrorIs(t, a.CanDeleteTask(carol), domain.ErrForbidden)
}

func TestAuthorizer_ListTasks(t *testing.T) {
	a := NewAuthorizer()

	assert.NoError(t, a.CanListTasksByAuthor(admin, alice.ID))
	assert.NoError(t, a.CanListTasksByAuthor(alice, alice.ID))
	require.ErrorIs(t, a.CanListTasksByAuthor(carol, alice.ID), domain.ErrForbidden)

	assert.NoError(t, a.CanListTasksByAssignee(admin, carol.ID))
	assert.NoError(t, a.CanListTasksByAssignee(carol, carol.ID))
	require.ErrorIs(t, a.CanListTasksByAssignee(alice, carol.ID), domain.ErrForbidden)
}

func TestAuthorizer_UpdateStatus(t *testing.T) {
	a := NewAuthorizer()
	task := authoredAssigned(alice.ID, carol.ID)

	assert.NoError(t, a.CanUpdateStatus(admin, task))
	assert.NoError(t, a.CanUpdateStatus(carol, task))
	// The author has no standing unless they are also the assignee.
	require.ErrorIs(t, a.CanUpdateStatus(alice, task), domain.ErrForbidden)
}

func TestAuthorizer_PriorityAndReassign_AdminOnly(t *testing.T) {
	a := NewAuthorizer()

	assert.NoError(t, a.CanUpdatePriority(admin))
	require.ErrorIs(t, a.CanUpdatePriority(alice), domain.ErrForbidden)
	require.ErrorIs(t, a.CanUpdatePriority(carol), domain.ErrForbidden)

	assert.NoError(t, a.CanReassignTask(admin))
	require.ErrorIs(t, a.CanReassignTask(alice), domain.ErrForbidden)
	require.ErrorIs(t, a.CanReassignTask(carol), domain.ErrForbidden)
}

func TestAuthorizer_Comments(t *testing.T) {
	a := NewAuthorizer()
	task := authoredAssigned(alice.ID, carol.ID)
	unrelated := &domain.User{ID: "dave-id", Role: domain.RoleUser}

	// Reading: admin, author or assignee.
	assert.NoError(t, a.CanListComments(admin, task))
	assert.NoError(t, a.CanListComments(alice, task))
	assert.NoError(t, a.CanListComments(carol, task))
	require.ErrorIs(t, a.CanListComments(unrelated, task), domain.ErrForbidden)

	// Posting: admin or assignee only; the author may not post.
	assert.NoError(t, a.CanAddComment(admin, task))
	assert.NoError(t, a.CanAddComment(carol, task))
	require.ErrorIs(t, a.CanAddComment(alice, task), domain.ErrForbidden)
	require.ErrorIs(t, a.CanAddComment(unrelated, task), domain.ErrForbidden)
}

func TestAuthorizer_UpdateUserRole_AdminOnly(t *testing.T) {
	a := NewAuthorizer()

	assert.NoError(t, a.CanUpdateUserRole(admin))
	require.ErrorIs(t, a.CanUpdateUserRole(alice), domain.ErrForbidden)
}
