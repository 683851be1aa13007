package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error taxonomy for the workspace backend. ValidationError is raised before
// any write is attempted; ErrConflict signals a failed version check on a
// compare-and-swap update; ErrNotFound maps to 404.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("version conflict")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// HTTPStatus maps taxonomy errors onto response codes; anything unknown is a
// plain write failure.
func HTTPStatus(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
