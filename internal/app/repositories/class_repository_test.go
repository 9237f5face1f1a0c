package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mahadqr/timetable-api/internal/app/models"
)

func sampleSession() models.ClassSession {
	return models.ClassSession{
		ClassCode: "BCS-1K",
		Subject:   "ICP",
		Teacher:   "Jahan Ara (VF)",
		Room:      "E-29 Academic Block II (52)",
		Day:       "Monday",
		TimeSlot:  "4",
		StartTime: "10:45",
		EndTime:   "11:35",
	}
}

func TestClassRepository_CreateAssignsFreshID(t *testing.T) {
	repo := NewClassRepository()

	created := repo.Create(sampleSession())
	assert.NotEmpty(t, created.ID)

	stored, ok := repo.Get(created.ID)
	assert.True(t, ok)
	assert.Equal(t, created, stored)
}

func TestClassRepository_BulkCreateIsIdempotent(t *testing.T) {
	repo := NewClassRepository()

	first := repo.BulkCreate([]models.ClassSession{sampleSession()})
	second := repo.BulkCreate([]models.ClassSession{sampleSession()})

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Len(t, repo.GetAll(), 1)
}

func TestClassRepository_BulkCreateDeduplicatesWithinBatch(t *testing.T) {
	repo := NewClassRepository()

	other := sampleSession()
	other.TimeSlot = "5"

	result := repo.BulkCreate([]models.ClassSession{sampleSession(), other, sampleSession()})

	assert.Len(t, result, 3)
	assert.Equal(t, result[0].ID, result[2].ID)
	assert.NotEqual(t, result[0].ID, result[1].ID)
	assert.Len(t, repo.GetAll(), 2)
}

func TestClassRepository_BulkCreateMatchesDayCaseInsensitively(t *testing.T) {
	repo := NewClassRepository()
	first := repo.BulkCreate([]models.ClassSession{sampleSession()})

	lower := sampleSession()
	lower.Day = "monday"
	second := repo.BulkCreate([]models.ClassSession{lower})

	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestClassRepository_SearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	repo := NewClassRepository()
	repo.Create(sampleSession())

	byTeacher := repo.Search("jahan")
	assert.Len(t, byTeacher, 1)

	byCode := repo.Search("bcs-1k")
	assert.Len(t, byCode, 1)

	bySubject := repo.Search("icp")
	assert.Len(t, bySubject, 1)

	byRoom := repo.Search("academic block ii")
	assert.Len(t, byRoom, 1)

	assert.Empty(t, repo.Search("nonexistent"))
}

func TestClassRepository_GetByDayIsCaseInsensitive(t *testing.T) {
	repo := NewClassRepository()
	repo.Create(sampleSession())

	tuesday := sampleSession()
	tuesday.Day = "Tuesday"
	repo.Create(tuesday)

	assert.Len(t, repo.GetByDay("MONDAY"), 1)
	assert.Len(t, repo.GetByDay("tuesday"), 1)
	assert.Empty(t, repo.GetByDay("Friday"))
}

func TestClassRepository_GetByCodeMatchesSubstring(t *testing.T) {
	repo := NewClassRepository()
	repo.Create(sampleSession())

	threeA := sampleSession()
	threeA.ClassCode = "BCS-3A"
	repo.Create(threeA)

	assert.Len(t, repo.GetByCode("bcs"), 2)
	assert.Len(t, repo.GetByCode("1k"), 1)
	assert.Empty(t, repo.GetByCode("SE-"))
}
