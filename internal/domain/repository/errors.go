package repository

import "errors"

// Sentinel errors shared by all repository implementations. The
// application layer maps these onto its user-facing taxonomy.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)
