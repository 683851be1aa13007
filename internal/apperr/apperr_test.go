package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("title", "is required"), http.StatusBadRequest},
		{ErrNotFound, http.StatusNotFound},
		{ErrConflict, http.StatusConflict},
		{errors.New("db went away"), http.StatusInternalServerError},
		{fmt.Errorf("task 3: %w", ErrConflict), http.StatusConflict},
		{fmt.Errorf("lookup: %w", ErrNotFound), http.StatusNotFound},
	}
	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestIsValidationSeesWrappedErrors(t *testing.T) {
	err := fmt.Errorf("create: %w", Validation("date", "is required"))
	if !IsValidation(err) {
		t.Fatal("wrapped validation error not recognized")
	}
	if IsValidation(ErrConflict) {
		t.Fatal("conflict misread as validation")
	}
}
