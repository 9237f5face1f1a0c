package models

import "time"

// Assignment is a personal to-do entry with a due date and completion state.
type Assignment struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject"`
	DueDate   string    `json:"dueDate"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// AssignmentPatch enumerates the fields a partial update may change.
// The identifier and creation timestamp are deliberately absent so a
// caller cannot overwrite them through the update path.
type AssignmentPatch struct {
	Title     *string
	Subject   *string
	DueDate   *string
	Completed *bool
}
