package content

import "errors"

var (
	// ErrNotFound maps to 404; update/delete against a dead id, or a
	// second delete of the same asset.
	ErrNotFound = errors.New("not found")

	// ErrValidation covers missing required fields, malformed dates and
	// disallowed file types. Nothing is persisted when it fires.
	ErrValidation = errors.New("validation failed")

	// ErrUnsupportedType is a validation failure for a file whose declared
	// content type is outside the category allow-list.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrAssetLimit fires when an upload would exceed the category's
	// single-asset cap (board member photo, CV template file, ...).
	ErrAssetLimit = errors.New("asset limit reached")

	// ErrNotConfirmed means the confirm gate declined a destructive
	// command. No side effect has happened.
	ErrNotConfirmed = errors.New("destructive action not confirmed")

	// ErrAssetIncomplete marks the accepted partial-commit gap: the entity
	// row was written but storing an attached file failed afterwards. The
	// caller retries via update; there is no automatic rollback.
	ErrAssetIncomplete = errors.New("entity created but asset storage failed")
)
