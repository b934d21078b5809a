package errors

import "errors"

var (
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrInvalidRequest    = errors.New("invalid request parameters")
	ErrInternalServer    = errors.New("internal server error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("access denied")
)
