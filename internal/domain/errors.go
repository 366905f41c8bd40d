package domain

import "errors"

var (
	// ErrNotFound indicates the id does not resolve to a record.
	ErrNotFound = errors.New("domain not found")
	// ErrDuplicateURL indicates a record with the same normalized URL
	// already exists.
	ErrDuplicateURL = errors.New("domain url already exists")
	// ErrInvalidID indicates the id is not syntactically valid for the
	// store's id format.
	ErrInvalidID = errors.New("invalid domain id")
)

// IsNotFound reports whether err is a not-found condition.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsDuplicate reports whether err indicates a URL uniqueness conflict.
func IsDuplicate(err error) bool { return errors.Is(err, ErrDuplicateURL) }

// IsInvalidID reports whether err indicates a malformed record id.
func IsInvalidID(err error) bool { return errors.Is(err, ErrInvalidID) }
