package dto

// SuccessResponse represents a standard confirmation body for operations
// that do not return an entity (deletions, unlinks).
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	ErrorCodeValidationFailed      ErrorCode = "VAL_001"
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"
	ErrorCodeInternalServer        ErrorCode = "SRV_001"
)

// ErrorResponse is the standard error body: a machine code plus a
// human-readable message.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(code ErrorCode, message string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message}
}
