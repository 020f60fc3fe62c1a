package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable wraps transport failures: the backend could not be reached
	// or its answer could not be read.
	ErrUnavailable = errors.New("backend unavailable")
	ErrNotFound    = errors.New("not found")
)

// StatusError is a non-2xx answer from a backend. Detail carries the
// backend's own explanation when it sent one.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend status %d", e.Status)
}

// DetailOr returns the backend detail carried by err, or fallback.
func DetailOr(err error, fallback string) string {
	var se *StatusError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail
	}
	return fallback
}
