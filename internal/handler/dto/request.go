package dto

// RegisterRequest represents the request body for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateTaskRequest represents the request body for POST /tasks.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
}

// UpdateTaskRequest represents the request body for PUT /tasks/{id}.
// Absent fields leave the stored values untouched.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
}

// CommentRequest represents the request body for POST /tasks/{id}/comments.
type CommentRequest struct {
	Comment string `json:"comment"`
}

// UpdateUserRoleRequest represents the request body for POST /admin/users/role.
type UpdateUserRoleRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
