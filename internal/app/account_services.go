package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/PHedro/recipes/internal/domain/accounts"
	"github.com/PHedro/recipes/internal/pkg/logger"
	"github.com/google/uuid"
)

// tokenKeyBytes is the entropy of an API token key; keys render as twice as
// many hex characters.
const tokenKeyBytes = 20

// userService implements the UserService interface for provisioning user accounts
type userService struct {
	userRepo  accounts.UserRepository
	tokenRepo accounts.TokenRepository
	logger    logger.Logger
}

// NewUserService creates a new userService instance
func NewUserService(userRepo accounts.UserRepository, tokenRepo accounts.TokenRepository, logger logger.Logger) (accounts.UserService, error) {
	return &userService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		logger:    logger,
	}, nil
}

// Create provisions a new user together with the API token granting it access.
// It returns the created User, its Token and any error encountered.
func (s *userService) Create(ctx context.Context, username, email string) (*accounts.User, *accounts.Token, error) {
	now := time.Now()
	user := &accounts.User{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
		Username:  username,
		Email:     email,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}

	key, err := generateTokenKey()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate token key: %w", err)
	}

	token := &accounts.Token{
		ID:        uuid.New().String(),
		CreatedAt: now,
		Key:       key,
		UserID:    user.ID,
	}

	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}

	return user, token, nil
}

// GetByID retrieves a user by its ID.
func (s *userService) GetByID(ctx context.Context, userID string) (*accounts.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return user, nil
}

// generateTokenKey produces a random hex token key.
func generateTokenKey() (string, error) {
	buf := make([]byte, tokenKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w", err)
	}
	return hex.EncodeToString(buf), nil
}

// authService implements the AuthService interface to resolve API tokens to users
type authService struct {
	tokenRepo accounts.TokenRepository
	userRepo  accounts.UserRepository
	logger    logger.Logger
}

// NewAuthService creates a new authService instance
func NewAuthService(tokenRepo accounts.TokenRepository, userRepo accounts.UserRepository, logger logger.Logger) (accounts.AuthService, error) {
	return &authService{
		tokenRepo: tokenRepo,
		userRepo:  userRepo,
		logger:    logger,
	}, nil
}

// Authenticate returns the user owning the given token key.
func (s *authService) Authenticate(ctx context.Context, tokenKey string) (*accounts.User, error) {
	token, err := s.tokenRepo.GetByKey(ctx, tokenKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	user, err := s.userRepo.GetByID(ctx, token.UserID)
	if err != nil {
		return nil, fmt.Errorf("token owner: %w", err)
	}

	return user, nil
}
