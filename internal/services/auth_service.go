package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"movie-review-backend/internal/config"
	"movie-review-backend/internal/models"
	"movie-review-backend/internal/policy"
	"movie-review-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	// Register creates a self-service account. The role is always forced
	// to member regardless of anything the client sends.
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	// CreateAdmin creates an admin-role user; only admins may call it.
	CreateAdmin(ctx context.Context, actor *models.User, username, email, password string) (*models.User, error)
	// Login verifies credentials and returns the user's opaque token,
	// issuing one on first login and reusing it afterwards.
	Login(ctx context.Context, username, password string) (string, *models.User, error)
	// Logout revokes the actor's token.
	Logout(ctx context.Context, actor *models.User) error
	// Authenticate resolves a raw bearer token to its user.
	Authenticate(ctx context.Context, key string) (*models.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
	config *config.Config
	logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, tokens repository.TokenRepository, cfg *config.Config, logger *logrus.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		config: cfg,
		logger: logger,
	}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	return s.createUser(ctx, username, email, password, models.RoleMember)
}

func (s *authService) CreateAdmin(ctx context.Context, actor *models.User, username, email, password string) (*models.User, error) {
	if !policy.CanCreateUser(actor) {
		return nil, ErrForbidden
	}
	return s.createUser(ctx, username, email, password, models.RoleAdmin)
}

func (s *authService) createUser(ctx context.Context, username, email, password, role string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.config.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		JoinedDate:   time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"username": user.Username,
		"role":     user.Role,
	}).Info("User created")

	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GetOrCreate(ctx, user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.WithField("username", user.Username).Info("User logged in")
	return token.Key, user, nil
}

func (s *authService) Logout(ctx context.Context, actor *models.User) error {
	if actor == nil {
		return ErrInvalidToken
	}
	if err := s.tokens.DeleteByUserID(ctx, actor.ID); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	s.logger.WithField("username", actor.Username).Info("User logged out")
	return nil
}

func (s *authService) Authenticate(ctx context.Context, key string) (*models.User, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrInvalidToken
	}

	token, err := s.tokens.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if token.User == nil {
		return nil, ErrInvalidToken
	}
	return token.User, nil
}
