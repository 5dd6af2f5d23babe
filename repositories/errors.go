package repositories

import "errors"

// Error taxonomy shared by the repositories and surfaced by the handlers.
var (
	// ErrNotFound is returned when an appointment, record, doctor or patient
	// id does not resolve, or when an appointment is addressed through the
	// wrong hospital.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when required identity or document fields are
	// missing or malformed. The operation is not attempted.
	ErrValidation = errors.New("validation failed")

	// ErrCancelled is returned when a status flip targets a cancelled
	// appointment. Cancelled never becomes completed.
	ErrCancelled = errors.New("appointment is cancelled")
)
