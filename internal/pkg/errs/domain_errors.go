package errs

import "errors"

// Sentinel categories shared across layers; concrete errors are Marked with one of these.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
