package model

import "errors"

// Stage errors, wrapped with context by each stage and matched with
// errors.Is at the command boundary to pick an exit status.
var (
	// ErrNotFound marks a required input file that does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrBadFormat marks a lookup table that is present but headerless/empty.
	ErrBadFormat = errors.New("invalid lookup table format")

	// ErrWrite marks a failure while opening or writing the report.
	ErrWrite = errors.New("report write failed")
)
