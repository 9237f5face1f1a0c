package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mahadqr/timetable-api/internal/app/models"
	"github.com/mahadqr/timetable-api/internal/app/repositories"
	"github.com/mahadqr/timetable-api/internal/pkg/apperrors"
)

// DayFilterAll is the sentinel day value meaning "no day restriction".
const DayFilterAll = "all"

// ListClassesParams captures the class-listing filters.
type ListClassesParams struct {
	Day       string
	Search    string
	ClassCode string
}

// ClassService defines the interface for class-session operations.
type ClassService interface {
	ListClasses(params ListClassesParams) []models.ClassSession
	BulkCreateClasses(classes []models.ClassSession) ([]models.ClassSession, error)
}

// classServiceImpl implements the ClassService interface
type classServiceImpl struct {
	classRepo *repositories.ClassRepository
}

// NewClassService creates a new class service instance
func NewClassService(classRepo *repositories.ClassRepository) ClassService {
	return &classServiceImpl{
		classRepo: classRepo,
	}
}

// ListClasses resolves the listing filters in fixed precedence order:
// free-text search first, then class-code match, then a bare day filter,
// then the full collection. A search masks a classCode supplied alongside
// it; only one primary filter runs per call. A day other than the "all"
// sentinel narrows search or class-code results in a second pass rather
// than re-querying.
func (s *classServiceImpl) ListClasses(params ListClassesParams) []models.ClassSession {
	dayRestricted := params.Day != "" && !strings.EqualFold(params.Day, DayFilterAll)

	var sessions []models.ClassSession
	switch {
	case params.Search != "":
		sessions = s.classRepo.Search(params.Search)
	case params.ClassCode != "":
		sessions = s.classRepo.GetByCode(params.ClassCode)
	case dayRestricted:
		return s.classRepo.GetByDay(params.Day)
	default:
		return s.classRepo.GetAll()
	}

	if dayRestricted {
		sessions = restrictToDay(sessions, params.Day)
	}
	return sessions
}

// restrictToDay filters already-fetched sessions down to a single day,
// case-insensitively.
func restrictToDay(sessions []models.ClassSession, day string) []models.ClassSession {
	filtered := []models.ClassSession{}
	for _, c := range sessions {
		if strings.EqualFold(c.Day, day) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// BulkCreateClasses validates and ingests a batch of sessions. Day names are
// canonicalized to their capitalized weekday form before storage. The result
// follows the input order; inputs matching an already-stored section resolve
// to the stored session, so re-ingesting the same feed is idempotent.
func (s *classServiceImpl) BulkCreateClasses(classes []models.ClassSession) ([]models.ClassSession, error) {
	normalized := make([]models.ClassSession, 0, len(classes))
	for i, class := range classes {
		if err := validateClassSession(class); err != nil {
			return nil, fmt.Errorf("class %d: %w", i, err)
		}
		day, _ := models.CanonicalDay(class.Day)
		class.Day = day
		normalized = append(normalized, class)
	}

	return s.classRepo.BulkCreate(normalized), nil
}

// validateClassSession validates an insertable session beyond the shape
// checks the binding layer already performed.
func validateClassSession(class models.ClassSession) error {
	if _, ok := models.CanonicalDay(class.Day); !ok {
		return fmt.Errorf("%w: day must be Monday through Friday, got %q", apperrors.ErrValidationFailed, class.Day)
	}
	if !isValidTimeSlot(class.TimeSlot) {
		return fmt.Errorf("%w: time slot must be an ordinal 1-9, got %q", apperrors.ErrValidationFailed, class.TimeSlot)
	}
	return nil
}

// isValidTimeSlot checks whether a time slot is one of the nine daily
// periods.
func isValidTimeSlot(slot string) bool {
	n, err := strconv.Atoi(slot)
	if err != nil {
		return false
	}
	return n >= 1 && n <= 9
}
