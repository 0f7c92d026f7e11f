package repository

import "errors"

var (
	// ErrNotFound is returned (wrapped) when a row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguousID is returned when an id prefix matches more than one row.
	ErrAmbiguousID = errors.New("ambiguous id")
)
