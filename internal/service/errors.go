package service

import "errors"

// Error taxonomy shared by both transports. Handlers map these to HTTP
// statuses; the realtime router maps them to error events.
var (
	// ErrValidation covers malformed or out-of-enum input.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound deliberately conflates "does not exist" with "not
	// yours" for request operations, so callers cannot enumerate
	// other parties' requests.
	ErrNotFound = errors.New("not found or not authorized")

	// ErrInvalidState is a transition attempted from the wrong status.
	ErrInvalidState = errors.New("invalid request state")

	// ErrForbidden is an authenticated actor who is not a conversation
	// participant.
	ErrForbidden = errors.New("not a conversation participant")

	// ErrStoreUnavailable is a transient store failure; callers may retry.
	ErrStoreUnavailable = errors.New("store unavailable")
)
