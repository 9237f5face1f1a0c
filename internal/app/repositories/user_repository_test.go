package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mahadqr/timetable-api/internal/app/models"
)

func TestUserRepository_GetByUsernameIsCaseSensitive(t *testing.T) {
	repo := NewUserRepository()
	created := repo.Create(models.User{Username: "mahad", Password: "hashed"})

	found, ok := repo.GetByUsername("mahad")
	assert.True(t, ok)
	assert.Equal(t, created.ID, found.ID)

	_, ok = repo.GetByUsername("Mahad")
	assert.False(t, ok)
}

func TestUserRepository_Get(t *testing.T) {
	repo := NewUserRepository()
	created := repo.Create(models.User{Username: "mahad", Password: "hashed"})

	found, ok := repo.Get(created.ID)
	assert.True(t, ok)
	assert.Equal(t, "mahad", found.Username)

	_, ok = repo.Get("nonexistent-id")
	assert.False(t, ok)
}
