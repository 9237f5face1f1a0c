package dto

// RegisterUserRequest creates a new account. The password is hashed before
// it reaches the store and never appears in responses.
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
}
