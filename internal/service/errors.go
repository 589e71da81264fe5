package service

import "errors"

var (
	// ErrNotFound covers every mutation or read whose owner-scoped
	// predicate matches zero rows. All operations surface it uniformly;
	// none silently no-op.
	ErrNotFound = errors.New("record not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotebookExists     = errors.New("notebook name already in use")
)
