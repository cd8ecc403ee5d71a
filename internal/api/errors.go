package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Error is a failed API call carrying the HTTP status and the service's
// human-readable explanation. StatusCode is 0 when the request never reached
// the service.
type Error struct {
	StatusCode  int    `json:"statusCode"`
	Explanation string `json:"explanation"`
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return e.Explanation
	}
	return fmt.Sprintf("api status %d: %s", e.StatusCode, e.Explanation)
}

// NotFound reports a 404.
func (e *Error) NotFound() bool {
	return e != nil && e.StatusCode == http.StatusNotFound
}

// ServerFault reports a 5xx response.
func (e *Error) ServerFault() bool {
	return e != nil && e.StatusCode >= 500 && e.StatusCode < 600
}

// AsError converts err into an *Error. Transport failures become an Error
// with StatusCode 0.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Explanation: "The request timed out. Check your connection and try again."}
	}
	return &Error{Explanation: err.Error()}
}
