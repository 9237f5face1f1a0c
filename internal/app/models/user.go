package models

// User defines a registered account. The password field holds the bcrypt
// hash and is excluded from JSON serialization.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
