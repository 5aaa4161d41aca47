package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrStorage  = errors.New("storage error")
	// ErrInvalidLayout: stored data is valid JSON but not a layout object.
	ErrInvalidLayout = errors.New("invalid layout")
)
