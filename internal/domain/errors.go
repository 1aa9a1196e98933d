package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input fails validation.
	// Handlers translate it into the 422 envelope.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or not positive.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// FieldViolations maps a field name to the list of human-readable
// messages describing why the field was rejected. The map is serialized
// verbatim as the "errors" payload of a 422 response.
type FieldViolations map[string][]string

// Add appends a violation message for the given field.
func (v FieldViolations) Add(field, message string) {
	v[field] = append(v[field], message)
}

// Merge folds the other violation set into this one.
func (v FieldViolations) Merge(other FieldViolations) {
	for field, messages := range other {
		v[field] = append(v[field], messages...)
	}
}

// ValidationError carries per-field violations across the service
// boundary so handlers can respond with the uniform validation envelope.
type ValidationError struct {
	Violations FieldViolations
}

// NewValidationError creates a ValidationError from the given violations.
func NewValidationError(violations FieldViolations) *ValidationError {
	return &ValidationError{Violations: violations}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return ErrValidation.Error()
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
