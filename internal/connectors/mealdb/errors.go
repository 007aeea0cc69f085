package mealdb

import (
	"errors"
	"fmt"
)

// TransportError indicates the catalog exchange never completed:
// DNS failure, refused connection, timeout or cancelled context.
// The underlying cause is preserved for unwrapping.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("mealdb: transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError indicates the server answered with a non-2xx status.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("mealdb: unexpected status %d (URL: %s)", e.StatusCode, e.URL)
}

// MalformedResponseError indicates a 2xx response whose body did not
// match the expected envelope shape.
type MalformedResponseError struct {
	URL string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("mealdb: malformed response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// IsTransport checks if the error indicates a connectivity failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsHTTP checks if the error indicates a completed call with a
// non-2xx status.
func IsHTTP(err error) bool {
	var he *HTTPError
	return errors.As(err, &he)
}

// IsMalformed checks if the error indicates an unparseable response.
func IsMalformed(err error) bool {
	var me *MalformedResponseError
	return errors.As(err, &me)
}

// IsNotFound checks if the error indicates a missing resource.
func IsNotFound(err error) bool {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode == 404
	}
	return false
}

// IsRateLimited checks if the error indicates catalog throttling.
func IsRateLimited(err error) bool {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode == 429
	}
	return false
}
