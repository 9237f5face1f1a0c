package repositories

import (
	"sync"

	"github.com/google/uuid"
	"github.com/mahadqr/timetable-api/internal/app/models"
)

// UserRepository owns the user collection.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewUserRepository creates an empty UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]models.User),
	}
}

// Get retrieves a user by ID.
func (r *UserRepository) Get(id string) (models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	return u, ok
}

// GetByUsername returns the first user whose username matches exactly.
// Username equality is case-sensitive.
func (r *UserRepository) GetByUsername(username string) (models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

// Create inserts a user under a fresh identifier and returns the stored
// value. The caller is responsible for hashing the password beforehand.
func (r *UserRepository) Create(user models.User) models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = uuid.NewString()
	r.users[user.ID] = user
	return user
}
