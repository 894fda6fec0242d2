package app

import "errors"

var (
	// ErrValidation indicates a request failed input validation.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound indicates the addressed record does not exist.
	ErrNotFound = errors.New("not found")
)
