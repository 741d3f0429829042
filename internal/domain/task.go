package domain

import "time"

// TaskStatus represents the completion state of a task.
// Any status may follow any other; there is no transition graph.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// DefaultTaskStatus is applied when a task is created without a status.
const DefaultTaskStatus = TaskStatusPending

// IsValid checks if the status is one of the allowed values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// TaskPriority represents the priority level of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// DefaultTaskPriority is applied when a task is created without a priority.
const DefaultTaskPriority = TaskPriorityMedium

// IsValid checks if the priority is one of the allowed values.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}

// Task represents a unit of work assigned between users. The author is set
// once at creation and never changes; the assignee always resolves to a
// valid user and defaults to the author.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	AuthorID    string
	AssigneeID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAuthoredBy checks if the task was created by the given user.
func (t *Task) IsAuthoredBy(userID string) bool {
	return t.AuthorID == userID
}

// IsAssignedTo checks if the task is currently assigned to the given user.
func (t *Task) IsAssignedTo(userID string) bool {
	return t.AssigneeID == userID
}
