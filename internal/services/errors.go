package services

import "errors"

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrDuplicateProfileURL = errors.New("profile with this URL already exists")
)

// ValidationError marks a request rejected for a missing or malformed
// field. The message is safe to surface to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
