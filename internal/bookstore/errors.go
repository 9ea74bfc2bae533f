package bookstore

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no book matches the requested ID.
var ErrNotFound = errors.New("book not found")

// ConflictError reports an ISBN uniqueness violation.
type ConflictError struct {
	ISBN string
	// OtherBook is true when the conflict was detected while updating an
	// existing record, i.e. a different book already holds the ISBN.
	OtherBook bool
}

func (e *ConflictError) Error() string {
	if e.OtherBook {
		return fmt.Sprintf("another book with ISBN %s already exists", e.ISBN)
	}
	return fmt.Sprintf("book with ISBN %s already exists", e.ISBN)
}
