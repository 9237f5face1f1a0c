package models

// UserClass links a user to a class session they track ("my classes").
// Links are removed by the (userId, classId) pair, not by their own ID.
type UserClass struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	ClassID string `json:"classId"`
}
