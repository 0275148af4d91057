package services

import "errors"

// ErrFoodItemNotFound is returned when the requested ID has no row in storage.
// Handlers translate it to a 404; it is an expected outcome, distinct from a
// storage failure.
var ErrFoodItemNotFound = errors.New("food item not found")

// FieldErrors maps a field name to the ordered list of violation messages
// collected for it. Validation never stops at the first broken rule, so a
// caller can render feedback for every field at once.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

func (f FieldErrors) Any() bool {
	return len(f) > 0
}

// ValidationError carries the complete field-error mapping for a rejected
// create or update request. No write happens when one is returned.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
