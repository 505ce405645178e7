package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates a draft failed validation and no mutation occurred.
	ErrInvalidInput = errors.New("invalid input")
)
