package sleeper

import (
	"errors"
	"fmt"
	"net/http"
)

// Parameter validation errors.
var (
	// ErrMissingLeagueID indicates an empty league identifier.
	ErrMissingLeagueID = errors.New("sleeper: league id is required")

	// ErrMissingDraftID indicates an empty draft identifier.
	ErrMissingDraftID = errors.New("sleeper: draft id is required")

	// ErrMissingPlayerID indicates an empty player identifier.
	ErrMissingPlayerID = errors.New("sleeper: player id is required")

	// ErrMissingUsername indicates an empty username.
	ErrMissingUsername = errors.New("sleeper: username is required")

	// ErrInvalidWeek indicates a week number below 1.
	ErrInvalidWeek = errors.New("sleeper: week must be 1 or greater")

	// ErrInvalidTrendType indicates a trending type other than "add" or "drop".
	ErrInvalidTrendType = errors.New(`sleeper: trend type must be "add" or "drop"`)
)

// RequestError reports a non-2xx response from the remote service.
// It carries the HTTP status so callers can distinguish, e.g., a missing
// league from a service outage.
type RequestError struct {
	StatusCode int
	Status     string
	Endpoint   string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("sleeper: GET %s: %s", e.Endpoint, e.Status)
}

// NotFound reports whether the remote service answered 404.
func (e *RequestError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Ensure RequestError implements error
var _ error = (*RequestError)(nil)
