package repositories

// Repositories holds all the repository instances. Each repository owns one
// in-memory collection; the container is constructed once at startup and
// handed to services through dependency injection, never reached through
// package-level state.
type Repositories struct {
	UserRepository       *UserRepository
	ClassRepository      *ClassRepository
	AssignmentRepository *AssignmentRepository
	UserClassRepository  *UserClassRepository
}

// NewRepositories initializes all repositories
func NewRepositories() *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(),
		ClassRepository:      NewClassRepository(),
		AssignmentRepository: NewAssignmentRepository(),
		UserClassRepository:  NewUserClassRepository(),
	}
}
