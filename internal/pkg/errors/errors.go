package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrAssetUnavailable reports a missing report asset (font or letterhead image).
	ErrAssetUnavailable = errors.New("report asset unavailable")
	// ErrInvalidLayout reports a malformed table layout or style lookup. It is a
	// programmer error, not a runtime-recoverable condition.
	ErrInvalidLayout = errors.New("invalid layout")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
)
