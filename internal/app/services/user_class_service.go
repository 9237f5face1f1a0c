package services

import (
	"github.com/mahadqr/timetable-api/internal/app/models"
	"github.com/mahadqr/timetable-api/internal/app/repositories"
	"github.com/mahadqr/timetable-api/internal/pkg/apperrors"
)

// UserClassService defines the interface for "my classes" link operations.
type UserClassService interface {
	ListUserClasses(userID string) []models.UserClass
	AddUserClass(userID, classID string) models.UserClass
	RemoveUserClass(userID, classID string) error
}

// userClassServiceImpl implements the UserClassService interface
type userClassServiceImpl struct {
	userClassRepo *repositories.UserClassRepository
}

// NewUserClassService creates a new user-class service instance
func NewUserClassService(userClassRepo *repositories.UserClassRepository) UserClassService {
	return &userClassServiceImpl{
		userClassRepo: userClassRepo,
	}
}

// ListUserClasses returns every class link for the given user.
func (s *userClassServiceImpl) ListUserClasses(userID string) []models.UserClass {
	return s.userClassRepo.GetByUser(userID)
}

// AddUserClass links a class to a user's tracked set. Linking an already
// tracked class returns the existing link.
func (s *userClassServiceImpl) AddUserClass(userID, classID string) models.UserClass {
	return s.userClassRepo.Add(userID, classID)
}

// RemoveUserClass unlinks a class from a user's tracked set.
func (s *userClassServiceImpl) RemoveUserClass(userID, classID string) error {
	if !s.userClassRepo.Remove(userID, classID) {
		return apperrors.ErrUserClassNotFound
	}
	return nil
}
