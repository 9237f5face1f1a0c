package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahadqr/timetable-api/internal/app/models/dto"
	"github.com/mahadqr/timetable-api/internal/app/repositories"
	"github.com/mahadqr/timetable-api/internal/pkg/apperrors"
)

func TestAssignmentService_CompletedDefaultsToFalse(t *testing.T) {
	svc := NewAssignmentService(repositories.NewAssignmentRepository())

	created := svc.CreateAssignment(dto.CreateAssignmentRequest{
		Title:   "Essay",
		Subject: "ENG",
		DueDate: "2025-01-10",
	})

	assert.False(t, created.Completed)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestAssignmentService_CompletedHonoredWhenProvided(t *testing.T) {
	svc := NewAssignmentService(repositories.NewAssignmentRepository())

	completed := true
	created := svc.CreateAssignment(dto.CreateAssignmentRequest{
		Title:     "Essay",
		Subject:   "ENG",
		DueDate:   "2025-01-10",
		Completed: &completed,
	})

	assert.True(t, created.Completed)
}

func TestAssignmentService_UpdateMissingReturnsNotFound(t *testing.T) {
	svc := NewAssignmentService(repositories.NewAssignmentRepository())

	completed := true
	_, err := svc.UpdateAssignment("nonexistent-id", dto.UpdateAssignmentRequest{Completed: &completed})

	assert.ErrorIs(t, err, apperrors.ErrAssignmentNotFound)
	assert.Empty(t, svc.ListAssignments())
}

func TestAssignmentService_DeleteMissingReturnsNotFound(t *testing.T) {
	svc := NewAssignmentService(repositories.NewAssignmentRepository())

	err := svc.DeleteAssignment("nonexistent-id")
	assert.ErrorIs(t, err, apperrors.ErrAssignmentNotFound)
}

func TestAssignmentService_DeleteRemovesAssignment(t *testing.T) {
	svc := NewAssignmentService(repositories.NewAssignmentRepository())
	created := svc.CreateAssignment(dto.CreateAssignmentRequest{Title: "Essay", Subject: "ENG", DueDate: "2025-01-10"})

	require.NoError(t, svc.DeleteAssignment(created.ID))
	assert.Empty(t, svc.ListAssignments())
}
