package domain

import "time"

// TaskComment is a comment left on a task. The task and user references are
// immutable; comments are never updated or deleted through the public contract.
type TaskComment struct {
	ID        string
	TaskID    string
	UserID    string
	Comment   string
	CreatedAt time.Time
}
