package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable marks transport-level failures: the server never produced
	// a response (connection refused, DNS, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrNotFound is reported for 404 responses. A delete that hits it is
	// treated as non-fatal by the console ("already gone").
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is reported for 401/403 responses.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRejected marks a 2xx response whose envelope carries success=false.
	// The backend should not do this; the client normalizes it into an error.
	ErrRejected = errors.New("request rejected")
)

// RequestError is a non-2xx HTTP response. Message is the server-provided
// message when one was present in the body, empty otherwise.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("request failed (%d)", e.Status)
}

// Unwrap exposes the sentinel matching the status class, so callers can use
// errors.Is(err, ErrNotFound) without inspecting status codes themselves.
func (e *RequestError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	}
	return nil
}

// Validation reports whether the failure was a payload rejection (4xx other
// than not-found/auth) that the user can correct and resubmit.
func (e *RequestError) Validation() bool {
	return e.Status >= 400 && e.Status < 500 &&
		e.Status != http.StatusNotFound &&
		e.Status != http.StatusUnauthorized &&
		e.Status != http.StatusForbidden
}

// Server reports whether the backend failed on its side (5xx).
func (e *RequestError) Server() bool { return e.Status >= 500 }

// UserMessage extracts the text worth showing to the user for a failed
// operation: the server-provided message when present, a generic fallback
// otherwise. Errors from validation keep their message verbatim.
func UserMessage(err error) string {
	var re *RequestError
	if errors.As(err, &re) {
		if re.Message != "" {
			return re.Message
		}
		if re.Server() {
			return "something went wrong on the server"
		}
		return "request failed"
	}
	if errors.Is(err, ErrUnavailable) {
		return "could not reach the server"
	}
	return err.Error()
}
