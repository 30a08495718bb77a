package domain

import "errors"

var (
	// ErrInvalidArgument marks caller mistakes rejected before any store access.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedLineItems marks a line-item snapshot that failed to decode.
	ErrMalformedLineItems = errors.New("malformed line items")

	// ErrStoreUnavailable marks a failed persistence call. Context cancellation
	// is never wrapped in it so callers can tell the two apart.
	ErrStoreUnavailable = errors.New("store unavailable")
)
