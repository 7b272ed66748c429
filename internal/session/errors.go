package session

import "errors"

var (
	ErrNotFound       = errors.New("session not found")
	ErrMissingID      = errors.New("conversation id is required")
	ErrFailedToSave   = errors.New("failed to save session")
	ErrFailedToGet    = errors.New("failed to get session")
	ErrFailedToDelete = errors.New("failed to delete session")
)
