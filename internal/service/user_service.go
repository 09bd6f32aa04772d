package service

import (
	"context"
	"fmt"

	"shopease/internal/model"
	"shopease/internal/repository"
	"shopease/internal/schema"

	"github.com/rs/zerolog"
)

// userService implements UserService.
type userService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// Create validates the payload and inserts a new user, rejecting duplicate
// usernames.
func (s *userService) Create(ctx context.Context, req *model.InsertUser) (*model.User, error) {
	if err := schema.ValidateInsertUser(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid user payload")
		return nil, err
	}

	existing, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", req.Username).Msg("failed to check username")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if existing != nil {
		s.logger.Warn().Str("username", req.Username).Msg("username already taken")
		return nil, model.ErrDuplicateUsername
	}

	user, err := s.userRepo.CreateUser(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Str("username", req.Username).Msg("failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().Int("user_id", user.ID).Str("username", user.Username).Msg("user created")

	return user, nil
}

// GetByID retrieves a user by ID.
func (s *userService) GetByID(ctx context.Context, id int) (*model.User, error) {
	user, err := s.userRepo.GetUser(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", id).Msg("failed to get user")
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, model.ErrUserNotFound
	}

	return user, nil
}

// GetByUsername retrieves the first user with the given username.
func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to get user by username")
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, model.ErrUserNotFound
	}

	return user, nil
}
