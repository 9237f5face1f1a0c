package services

import (
	"fmt"

	"github.com/mahadqr/timetable-api/internal/app/models"
	"github.com/mahadqr/timetable-api/internal/app/repositories"
	"github.com/mahadqr/timetable-api/internal/pkg/apperrors"
	"github.com/mahadqr/timetable-api/internal/pkg/auth"
)

// UserService defines the interface for user registration and lookup.
type UserService interface {
	Register(username, password string) (models.User, error)
	GetUser(id string) (models.User, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

// Register creates a user with a bcrypt-hashed password. Usernames are
// unique with case-sensitive matching.
func (s *userServiceImpl) Register(username, password string) (models.User, error) {
	if _, exists := s.userRepo.GetByUsername(username); exists {
		return models.User{}, apperrors.ErrUsernameTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := s.userRepo.Create(models.User{
		Username: username,
		Password: hash,
	})
	return user, nil
}

// GetUser retrieves a user by ID.
func (s *userServiceImpl) GetUser(id string) (models.User, error) {
	user, ok := s.userRepo.Get(id)
	if !ok {
		return models.User{}, apperrors.ErrUserNotFound
	}
	return user, nil
}
