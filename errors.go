package kmp

import "errors"

var (
	// ErrInvalidTable is returned when a failure table does not fit the
	// pattern it is used with, or violates the border invariants.
	ErrInvalidTable = errors.New("kmp: invalid failure table")

	// ErrEmptyPattern is returned by stream scanning, which has no end of
	// text at which an empty pattern's last match could be reported.
	ErrEmptyPattern = errors.New("kmp: empty pattern")
)
