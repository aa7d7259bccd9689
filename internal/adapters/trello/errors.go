package trello

import (
	"fmt"
	"net/http"

	"tro/internal/application"
)

// APIError is returned for any non-2xx response
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	msg := http.StatusText(e.StatusCode)
	if e.Body != "" {
		msg = e.Body
	}
	return fmt.Sprintf("trello: %s %s: %d %s", e.Method, e.Path, e.StatusCode, msg)
}

// Is maps a 404 response to application.ErrNotFound
func (e *APIError) Is(target error) bool {
	return target == application.ErrNotFound && e.StatusCode == http.StatusNotFound
}
