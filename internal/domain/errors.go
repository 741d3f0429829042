package domain

import "errors"

// Domain-specific errors for business logic validation.
var (
	// Not-found errors
	ErrTaskNotFound = errors.New("task not found")
	ErrUserNotFound = errors.New("user not found")

	// Permission errors
	ErrForbidden = errors.New("insufficient access")

	// Registration conflicts
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already taken")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrInvalidRole     = errors.New("invalid user role")
	ErrEmptyComment    = errors.New("comment is required")
)
