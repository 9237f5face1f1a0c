package dto

// CreateAssignmentRequest is the insertable shape of an assignment.
// Completed is optional and defaults to false; createdAt is server-assigned.
type CreateAssignmentRequest struct {
	Title     string `json:"title" binding:"required"`
	Subject   string `json:"subject" binding:"required"`
	DueDate   string `json:"dueDate" binding:"required"`
	Completed *bool  `json:"completed"`
}

// UpdateAssignmentRequest carries a partial update. Only fields present in
// the body are merged onto the stored assignment.
type UpdateAssignmentRequest struct {
	Title     *string `json:"title"`
	Subject   *string `json:"subject"`
	DueDate   *string `json:"dueDate"`
	Completed *bool   `json:"completed"`
}
