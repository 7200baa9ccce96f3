package repository

import "errors"

var (
	// ErrDuplicateKey is returned when a unique column already holds the value.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrStaleVersion is returned by conditional updates when the stored
	// version no longer matches the one the caller read.
	ErrStaleVersion = errors.New("stale version")
)
