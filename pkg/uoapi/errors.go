package uoapi

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownMethod is returned when a REST method name has no entry in
	// the client's resource registry.
	ErrUnknownMethod = errors.New("unknown rest method")

	// ErrInvalidTimeValue is returned when a timeseries date argument is
	// neither a pre-formatted timestamp string nor a time.Time.
	ErrInvalidTimeValue = errors.New("unrecognised type for date argument")
)

// APIRequestError is returned when the server answers with a status code
// other than the expected one. Body holds the raw response for diagnostics.
type APIRequestError struct {
	StatusCode int
	Body       []byte
}

func (e *APIRequestError) Error() string {
	return fmt.Sprintf("api request returned status %d: %s", e.StatusCode, responseSnippet(e.Body))
}

func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
