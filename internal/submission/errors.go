package submission

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ValidationError reports that a record failed pre-submit validation. The
// pipeline never sends a record carrying one.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// APIError is a non-success reply from the submission endpoint. Statuses 400
// and 422 are structured rejections and are never retried; every other
// positive status is treated as transient.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// Retryable reports whether another attempt may succeed.
func (e *APIError) Retryable() bool {
	switch e.Status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return false
	}
	return e.Status > 0
}

// retryable classifies an attempt failure. Transport errors always retry;
// endpoint replies defer to their status.
func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	return true
}
