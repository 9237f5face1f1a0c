package apperrors

import "errors"

// Common errors. The store itself signals misses through absent returns;
// these sentinels are how services report them upward so the boundary can
// map them to HTTP statuses in one place.
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Entity-specific not-found errors
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrClassNotFound      = errors.New("class not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserClassNotFound  = errors.New("user class not found")

	// User errors
	ErrUsernameTaken = errors.New("username already exists")
)
