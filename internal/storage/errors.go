package storage

import "errors"

// Sentinel errors returned by Store implementations. Callers match with
// errors.Is and translate to the appropriate API error.
var (
	// ErrAuthorNotFound is returned when no author exists with the given ID.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrBookNotFound is returned when no book exists with the given ID.
	ErrBookNotFound = errors.New("book not found")
)
