package repositories

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mahadqr/timetable-api/internal/app/models"
)

// ClassRepository owns the class-session collection. All lookups are linear
// scans; at timetable scale that stays well under a millisecond.
type ClassRepository struct {
	mu      sync.RWMutex
	classes map[string]models.ClassSession
}

// NewClassRepository creates an empty ClassRepository.
func NewClassRepository() *ClassRepository {
	return &ClassRepository{
		classes: make(map[string]models.ClassSession),
	}
}

// Get retrieves a class session by ID.
func (r *ClassRepository) Get(id string) (models.ClassSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.classes[id]
	return c, ok
}

// GetAll returns a snapshot of every stored session.
func (r *ClassRepository) GetAll() []models.ClassSession {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]models.ClassSession, 0, len(r.classes))
	for _, c := range r.classes {
		sessions = append(sessions, c)
	}
	return sessions
}

// GetByDay returns all sessions scheduled on the given day. The comparison
// is case-insensitive.
func (r *ClassRepository) GetByDay(day string) []models.ClassSession {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := []models.ClassSession{}
	for _, c := range r.classes {
		if strings.EqualFold(c.Day, day) {
			sessions = append(sessions, c)
		}
	}
	return sessions
}

// GetByCode returns all sessions whose class code contains the given
// fragment, case-insensitively.
func (r *ClassRepository) GetByCode(classCode string) []models.ClassSession {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fragment := strings.ToLower(classCode)
	sessions := []models.ClassSession{}
	for _, c := range r.classes {
		if strings.Contains(strings.ToLower(c.ClassCode), fragment) {
			sessions = append(sessions, c)
		}
	}
	return sessions
}

// Search returns all sessions where the query occurs as a case-insensitive
// substring of the class code, subject, teacher, or room.
func (r *ClassRepository) Search(query string) []models.ClassSession {
	r.mu.RLock()
	defer r.mu.RUnlock()

	term := strings.ToLower(query)
	sessions := []models.ClassSession{}
	for _, c := range r.classes {
		if strings.Contains(strings.ToLower(c.ClassCode), term) ||
			strings.Contains(strings.ToLower(c.Subject), term) ||
			strings.Contains(strings.ToLower(c.Teacher), term) ||
			strings.Contains(strings.ToLower(c.Room), term) {
			sessions = append(sessions, c)
		}
	}
	return sessions
}

// Create inserts a session under a fresh identifier and returns the stored
// value.
func (r *ClassRepository) Create(class models.ClassSession) models.ClassSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insert(class)
}

// BulkCreate inserts sessions in input order, deduplicating against the
// composite tuple (classCode, subject, teacher, room, day, timeSlot). When a
// stored session already matches an input, the stored one is appended to the
// result instead of a duplicate. The whole batch runs under one lock, so a
// duplicate inside the batch also resolves to the first insertion.
func (r *ClassRepository) BulkCreate(classes []models.ClassSession) []models.ClassSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]models.ClassSession, 0, len(classes))
	for _, class := range classes {
		if existing, ok := r.findSection(class); ok {
			result = append(result, existing)
			continue
		}
		result = append(result, r.insert(class))
	}
	return result
}

// findSection scans for a stored session matching the uniqueness tuple.
// Callers must hold at least a read lock.
func (r *ClassRepository) findSection(class models.ClassSession) (models.ClassSession, bool) {
	for _, c := range r.classes {
		if c.SameSection(class) {
			return c, true
		}
	}
	return models.ClassSession{}, false
}

// insert assigns a fresh ID and stores the session. Callers must hold the
// write lock.
func (r *ClassRepository) insert(class models.ClassSession) models.ClassSession {
	class.ID = uuid.NewString()
	r.classes[class.ID] = class
	return class
}
