package store

import "errors"

// Sentinel errors returned by the store. Callers map these to HTTP statuses
// at the request boundary; anything else is an unclassified persistence
// failure and surfaces as a 500.
var (
	ErrEmptyText      = errors.New("message text is required")
	ErrEmptyTitle     = errors.New("thread title is required")
	ErrUserNotFound   = errors.New("referenced user does not exist")
	ErrThreadNotFound = errors.New("thread does not exist")
	ErrDuplicateTitle = errors.New("thread title already exists")
)
