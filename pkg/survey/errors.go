package survey

// Error taxonomy for the request boundary: validation and conflict map to
// 400, not-found to 404, anything else to 500. The message strings are part
// of the dashboard contract and must not be reworded casually.

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}
