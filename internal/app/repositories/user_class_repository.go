package repositories

import (
	"sync"

	"github.com/google/uuid"
	"github.com/mahadqr/timetable-api/internal/app/models"
)

// UserClassRepository owns the user-class link collection.
type UserClassRepository struct {
	mu          sync.RWMutex
	userClasses map[string]models.UserClass
}

// NewUserClassRepository creates an empty UserClassRepository.
func NewUserClassRepository() *UserClassRepository {
	return &UserClassRepository{
		userClasses: make(map[string]models.UserClass),
	}
}

// GetByUser returns every link belonging to the given user.
func (r *UserClassRepository) GetByUser(userID string) []models.UserClass {
	r.mu.RLock()
	defer r.mu.RUnlock()

	links := []models.UserClass{}
	for _, uc := range r.userClasses {
		if uc.UserID == userID {
			links = append(links, uc)
		}
	}
	return links
}

// Add links a user to a class. Adding an already-linked (userId, classId)
// pair returns the existing link instead of inserting a duplicate, so no two
// links with an identical pair can coexist.
func (r *UserClassRepository) Add(userID, classID string) models.UserClass {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, uc := range r.userClasses {
		if uc.UserID == userID && uc.ClassID == classID {
			return uc
		}
	}

	link := models.UserClass{
		ID:      uuid.NewString(),
		UserID:  userID,
		ClassID: classID,
	}
	r.userClasses[link.ID] = link
	return link
}

// Remove deletes the link matching the (userId, classId) pair and reports
// whether a match was found. The link row is removed entirely, not
// soft-deleted.
func (r *UserClassRepository) Remove(userID, classID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, uc := range r.userClasses {
		if uc.UserID == userID && uc.ClassID == classID {
			delete(r.userClasses, id)
			return true
		}
	}
	return false
}
