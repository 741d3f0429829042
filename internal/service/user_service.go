package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/teamwell/taskman/internal/domain"
	"github.com/teamwell/taskman/internal/repository"
)

// UserService resolves identities and manages the user lifecycle. Lookups are
// side-effect-free; resolution by email is the single source of truth for
// "who is calling".
type UserService struct {
	users      *repository.UserRepository
	authorizer *Authorizer
}

// NewUserService creates a new UserService.
func NewUserService(users *repository.UserRepository, authorizer *Authorizer) *UserService {
	return &UserService{
		users:      users,
		authorizer: authorizer,
	}
}

// GetByEmail resolves a principal email to the canonical user record.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmail(ctx, email)
}

// GetByUsername resolves a username to a user record. Secondary accessor used
// by the role-update flow, not by authentication.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, err)
	}
	return user, nil
}

// UpdateRole promotes or demotes a user, addressed by username. Admin only.
func (s *UserService) UpdateRole(ctx context.Context, caller *domain.User, username string, role domain.Role) (*domain.User, error) {
	if err := s.authorizer.CanUpdateUserRole(caller); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateRole(ctx, user.ID, role); err != nil {
		return nil, err
	}
	user.Role = role

	slog.Info("user role updated",
		"user_id", user.ID,
		"username", user.Username,
		"role", role,
		"caller_id", caller.ID,
	)

	return user, nil
}
