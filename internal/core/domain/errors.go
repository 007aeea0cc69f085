package domain

import "errors"

// Sentinel errors for business-level failures. Adapters translate
// their infrastructure errors into these where callers branch on the
// outcome.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a uniqueness conflict on create.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates a malformed argument.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSessionClosed indicates the search session has been closed
	// and no longer accepts queries.
	ErrSessionClosed = errors.New("session closed")
)
