// Package domainerr holds the error kinds shared by the football domain packages.
// Domain code wraps one of these with context, callers match with errors.Is.
package domainerr

import "errors"

var (
	// ErrValidation marks malformed input or an operation invalid for the current state.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks an identity or name lookup miss.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate marks an add of an identity that is already present.
	ErrDuplicate = errors.New("already exists")
)
