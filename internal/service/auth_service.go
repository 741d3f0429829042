package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/teamwell/taskman/internal/auth"
	"github.com/teamwell/taskman/internal/domain"
	"github.com/teamwell/taskman/internal/repository"
)

// AuthService handles registration and login, issuing session tokens.
type AuthService struct {
	users  *repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	users *repository.UserRepository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenService,
) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new user with the USER role and returns a session token.
// Duplicate checks run before any hashing or persistence, username first.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, error) {
	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("check username: %w", err)
	}
	if taken {
		return "", fmt.Errorf("%w: %s", domain.ErrUsernameTaken, username)
	}

	taken, err = s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("check email: %w", err)
	}
	if taken {
		return "", fmt.Errorf("%w: %s", domain.ErrEmailTaken, email)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	})
	if err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(auth.NewPrincipal(user))
	if err != nil {
		return "", err
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)

	return token, nil
}

// Login authenticates by email and password and returns a session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(auth.NewPrincipal(user))
	if err != nil {
		return "", err
	}

	slog.Info("user logged in", "user_id", user.ID)

	return token, nil
}
