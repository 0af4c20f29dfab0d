package api

import (
	"errors"
	"fmt"
)

// Error represents a non-2xx response from the search backend.
type Error struct {
	StatusCode int
	Message    string
	Op         string // operation that failed (e.g. "Search")
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %d %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

// IsStatusError reports whether err is an API status error, i.e. the
// request completed but the backend answered with a non-2xx status.
func IsStatusError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr)
}
