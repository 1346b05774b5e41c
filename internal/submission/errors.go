package submission

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")

	// ErrNotConfirmed means the confirm gate declined the delete.
	ErrNotConfirmed = errors.New("destructive action not confirmed")
)
