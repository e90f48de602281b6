package entity

import "errors"

// Storage-level sentinel errors. Repositories translate driver errors
// (unique_violation, sql.ErrNoRows) into these; usecases translate them
// into domain errors for the HTTP layer.
var (
	ErrDuplicateEmail = errors.New("email already exists")
	ErrNotFound       = errors.New("record not found")
)
