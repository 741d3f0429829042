package dto

import (
	"time"

	"github.com/teamwell/taskman/internal/domain"
	"github.com/teamwell/taskman/internal/repository"
)

// TokenResponse carries a freshly issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	AuthorID    string    `json:"author_id"`
	AssigneeID  string    `json:"assignee_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToTaskResponse converts a domain task to its response form.
func ToTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		AuthorID:    task.AuthorID,
		AssigneeID:  task.AssigneeID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// TaskPageResponse is a paged list of tasks.
type TaskPageResponse struct {
	Items  []TaskResponse `json:"items"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// ToTaskPageResponse converts a page of domain tasks to its response form.
func ToTaskPageResponse(tasks []*domain.Task, total int, page repository.Page) TaskPageResponse {
	items := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskResponse(task))
	}
	return TaskPageResponse{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
}

// CommentResponse represents a task comment in API responses.
type CommentResponse struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	UserID    string    `json:"user_id"`
	UserEmail string    `json:"user_email,omitempty"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCommentResponse converts a domain comment to its response form.
func ToCommentResponse(comment *domain.TaskComment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		UserID:    comment.UserID,
		Comment:   comment.Comment,
		CreatedAt: comment.CreatedAt,
	}
}

// CommentPageResponse is a paged list of comments.
type CommentPageResponse struct {
	Items  []CommentResponse `json:"items"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// ToCommentPageResponse converts a page of comment list items to its response form.
func ToCommentPageResponse(list []repository.CommentListItem, total int, page repository.Page) CommentPageResponse {
	items := make([]CommentResponse, 0, len(list))
	for _, item := range list {
		resp := ToCommentResponse(item.Comment)
		resp.UserEmail = item.UserEmail
		items = append(items, resp)
	}
	return CommentPageResponse{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
}

// UserResponse represents a user in API responses. The password hash is
// never serialized.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ToUserResponse converts a domain user to its response form.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	}
}
