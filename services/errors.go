package services

import "errors"

var (
	// ErrNotFound is returned by mutating calls whose target does not exist.
	// Reads report a missing target as nil, nil instead.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the caller does not own the target or is banned from it.
	ErrForbidden = errors.New("forbidden")
	// ErrAlreadyBound is returned when binding a blog that already has an owner.
	ErrAlreadyBound = errors.New("blog already bound to a user")
)
