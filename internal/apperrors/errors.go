package apperrors

import "errors"

var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("database not configured, set DATABASE_URL")
	ErrMissingReference = errors.New("referenced dataset does not exist")
)
