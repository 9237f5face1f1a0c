package dto

// CreateUserClassRequest links a user to a class session.
type CreateUserClassRequest struct {
	UserID  string `json:"userId" binding:"required"`
	ClassID string `json:"classId" binding:"required"`
}
