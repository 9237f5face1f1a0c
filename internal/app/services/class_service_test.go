package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahadqr/timetable-api/internal/app/models"
	"github.com/mahadqr/timetable-api/internal/app/repositories"
	"github.com/mahadqr/timetable-api/internal/pkg/apperrors"
)

func seededClassService(t *testing.T) ClassService {
	t.Helper()

	svc := NewClassService(repositories.NewClassRepository())
	_, err := svc.BulkCreateClasses([]models.ClassSession{
		{ClassCode: "BCS-1K", Subject: "ICP", Teacher: "Jahan Ara (VF)", Room: "E-29", Day: "Monday", TimeSlot: "4", StartTime: "10:45", EndTime: "11:35"},
		{ClassCode: "BCS-1K", Subject: "ICP", Teacher: "Jahan Ara (VF)", Room: "E-29", Day: "Tuesday", TimeSlot: "4", StartTime: "10:45", EndTime: "11:35"},
		{ClassCode: "BCS-3A", Subject: "TOA", Teacher: "Ubaidullah", Room: "C-17", Day: "Monday", TimeSlot: "5", StartTime: "11:40", EndTime: "12:30"},
	})
	require.NoError(t, err)
	return svc
}

func TestClassService_ListWithoutFiltersReturnsAll(t *testing.T) {
	svc := seededClassService(t)

	assert.Len(t, svc.ListClasses(ListClassesParams{}), 3)
	assert.Len(t, svc.ListClasses(ListClassesParams{Day: "all"}), 3)
}

func TestClassService_DayFilter(t *testing.T) {
	svc := seededClassService(t)

	monday := svc.ListClasses(ListClassesParams{Day: "monday"})
	assert.Len(t, monday, 2)
}

func TestClassService_SearchNarrowedByDay(t *testing.T) {
	svc := seededClassService(t)

	all := svc.ListClasses(ListClassesParams{Search: "ICP"})
	assert.Len(t, all, 2)

	tuesdayOnly := svc.ListClasses(ListClassesParams{Search: "ICP", Day: "Tuesday"})
	require.Len(t, tuesdayOnly, 1)
	assert.Equal(t, "Tuesday", tuesdayOnly[0].Day)
}

func TestClassService_SearchMasksClassCode(t *testing.T) {
	svc := seededClassService(t)

	// Both filters supplied: only the search runs, so the BCS-3A classCode
	// is ignored and the ICP sessions come back.
	result := svc.ListClasses(ListClassesParams{Search: "ICP", ClassCode: "BCS-3A"})
	require.Len(t, result, 2)
	for _, c := range result {
		assert.Equal(t, "ICP", c.Subject)
	}
}

func TestClassService_ClassCodeFilterNarrowedByDay(t *testing.T) {
	svc := seededClassService(t)

	assert.Len(t, svc.ListClasses(ListClassesParams{ClassCode: "BCS-1K"}), 2)
	assert.Len(t, svc.ListClasses(ListClassesParams{ClassCode: "BCS-1K", Day: "Monday"}), 1)
}

func TestClassService_BulkCreateCanonicalizesDay(t *testing.T) {
	svc := NewClassService(repositories.NewClassRepository())

	created, err := svc.BulkCreateClasses([]models.ClassSession{
		{ClassCode: "BCS-1K", Subject: "ICP", Teacher: "Jahan Ara (VF)", Room: "E-29", Day: "mOnDaY", TimeSlot: "4", StartTime: "10:45", EndTime: "11:35"},
	})

	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "Monday", created[0].Day)
}

func TestClassService_BulkCreateRejectsInvalidDay(t *testing.T) {
	svc := NewClassService(repositories.NewClassRepository())

	_, err := svc.BulkCreateClasses([]models.ClassSession{
		{ClassCode: "BCS-1K", Subject: "ICP", Teacher: "Jahan Ara (VF)", Room: "E-29", Day: "Sunday", TimeSlot: "4", StartTime: "10:45", EndTime: "11:35"},
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestClassService_BulkCreateRejectsInvalidTimeSlot(t *testing.T) {
	svc := NewClassService(repositories.NewClassRepository())

	_, err := svc.BulkCreateClasses([]models.ClassSession{
		{ClassCode: "BCS-1K", Subject: "ICP", Teacher: "Jahan Ara (VF)", Room: "E-29", Day: "Monday", TimeSlot: "10", StartTime: "16:10", EndTime: "17:00"},
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
