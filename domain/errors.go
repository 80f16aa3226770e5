package domain

import "errors"

var (
	// ErrValidation marks malformed or missing input, rejected before any store access.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks a single-resource lookup miss.
	ErrNotFound = errors.New("not found")
)
