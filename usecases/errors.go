package usecases

import "errors"

var (
	// ErrListFull is returned by AddItems when the union would exceed
	// the list's capacity.
	ErrListFull = errors.New("list is full")

	// ErrNoList is returned by RemoveItems when the user has no list
	// row yet. Adds tolerate absence; removals do not.
	ErrNoList = errors.New("no list for user")

	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidLogin = errors.New("invalid email or password")
	ErrInvalidOTP   = errors.New("invalid or expired code")
)
