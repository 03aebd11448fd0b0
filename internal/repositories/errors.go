package repositories

import "errors"

var (
	// ErrDuplicate is returned when a unique column already holds the value.
	ErrDuplicate = errors.New("duplicate record")
	// ErrConflict is returned when an optimistic update kept losing to concurrent writers.
	ErrConflict = errors.New("write conflict")
)
