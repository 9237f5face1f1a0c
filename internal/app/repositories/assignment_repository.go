package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mahadqr/timetable-api/internal/app/models"
)

// AssignmentRepository owns the assignment collection.
type AssignmentRepository struct {
	mu          sync.RWMutex
	assignments map[string]models.Assignment
}

// NewAssignmentRepository creates an empty AssignmentRepository.
func NewAssignmentRepository() *AssignmentRepository {
	return &AssignmentRepository{
		assignments: make(map[string]models.Assignment),
	}
}

// Get retrieves an assignment by ID.
func (r *AssignmentRepository) Get(id string) (models.Assignment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.assignments[id]
	return a, ok
}

// GetAll returns a snapshot of every stored assignment.
func (r *AssignmentRepository) GetAll() []models.Assignment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assignments := make([]models.Assignment, 0, len(r.assignments))
	for _, a := range r.assignments {
		assignments = append(assignments, a)
	}
	return assignments
}

// Create inserts an assignment under a fresh identifier, stamping the
// creation time. The creation timestamp is set exactly once, here.
func (r *AssignmentRepository) Create(assignment models.Assignment) models.Assignment {
	r.mu.Lock()
	defer r.mu.Unlock()

	assignment.ID = uuid.NewString()
	assignment.CreatedAt = time.Now()
	r.assignments[assignment.ID] = assignment
	return assignment
}

// Update merges the patch onto the stored assignment and returns the merged
// value. Fields absent from the patch are left untouched; the identifier and
// creation timestamp cannot be changed through this path. Returns false when
// no assignment exists for the ID, leaving the store unchanged.
func (r *AssignmentRepository) Update(id string, patch models.AssignmentPatch) (models.Assignment, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.assignments[id]
	if !ok {
		return models.Assignment{}, false
	}

	if patch.Title != nil {
		existing.Title = *patch.Title
	}
	if patch.Subject != nil {
		existing.Subject = *patch.Subject
	}
	if patch.DueDate != nil {
		existing.DueDate = *patch.DueDate
	}
	if patch.Completed != nil {
		existing.Completed = *patch.Completed
	}

	r.assignments[id] = existing
	return existing, true
}

// Delete removes the assignment if present and reports whether removal
// occurred.
func (r *AssignmentRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.assignments[id]; !ok {
		return false
	}
	delete(r.assignments, id)
	return true
}
