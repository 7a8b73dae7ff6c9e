package service

import "errors"

// Validation errors surfaced to callers as bad requests.
var (
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidType      = errors.New("invalid type")
	ErrInvalidAmount    = errors.New("amount must be zero or greater")
	ErrCategoryNotFound = errors.New("category not found")
	ErrTypeMismatch     = errors.New("transaction type does not match category type")
)

// IsValidation reports whether err is one of the validation errors above.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrInvalidType) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrTypeMismatch)
}
