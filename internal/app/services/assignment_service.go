package services

import (
	"github.com/mahadqr/timetable-api/internal/app/models"
	"github.com/mahadqr/timetable-api/internal/app/models/dto"
	"github.com/mahadqr/timetable-api/internal/app/repositories"
	"github.com/mahadqr/timetable-api/internal/pkg/apperrors"
)

// AssignmentService defines the interface for assignment operations.
type AssignmentService interface {
	ListAssignments() []models.Assignment
	CreateAssignment(req dto.CreateAssignmentRequest) models.Assignment
	UpdateAssignment(id string, req dto.UpdateAssignmentRequest) (models.Assignment, error)
	DeleteAssignment(id string) error
}

// assignmentServiceImpl implements the AssignmentService interface
type assignmentServiceImpl struct {
	assignmentRepo *repositories.AssignmentRepository
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(assignmentRepo *repositories.AssignmentRepository) AssignmentService {
	return &assignmentServiceImpl{
		assignmentRepo: assignmentRepo,
	}
}

// ListAssignments returns every stored assignment.
func (s *assignmentServiceImpl) ListAssignments() []models.Assignment {
	return s.assignmentRepo.GetAll()
}

// CreateAssignment stores a new assignment. Completed defaults to false when
// omitted; the creation timestamp is assigned by the store.
func (s *assignmentServiceImpl) CreateAssignment(req dto.CreateAssignmentRequest) models.Assignment {
	assignment := models.Assignment{
		Title:   req.Title,
		Subject: req.Subject,
		DueDate: req.DueDate,
	}
	if req.Completed != nil {
		assignment.Completed = *req.Completed
	}

	return s.assignmentRepo.Create(assignment)
}

// UpdateAssignment merges the supplied fields onto an existing assignment.
func (s *assignmentServiceImpl) UpdateAssignment(id string, req dto.UpdateAssignmentRequest) (models.Assignment, error) {
	patch := models.AssignmentPatch{
		Title:     req.Title,
		Subject:   req.Subject,
		DueDate:   req.DueDate,
		Completed: req.Completed,
	}

	updated, ok := s.assignmentRepo.Update(id, patch)
	if !ok {
		return models.Assignment{}, apperrors.ErrAssignmentNotFound
	}
	return updated, nil
}

// DeleteAssignment removes an assignment by ID.
func (s *assignmentServiceImpl) DeleteAssignment(id string) error {
	if !s.assignmentRepo.Delete(id) {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}
