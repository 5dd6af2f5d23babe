package handlers

import (
	"MerakiHMS/repositories"
	"errors"
)

// statusFromError maps the repository error taxonomy to an HTTP status.
// Anything outside the taxonomy is an upstream failure.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, repositories.ErrValidation):
		return 400
	case errors.Is(err, repositories.ErrNotFound):
		return 404
	case errors.Is(err, repositories.ErrCancelled):
		return 409
	default:
		return 500
	}
}
