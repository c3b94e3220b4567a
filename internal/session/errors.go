package session

import "errors"

var (
	// ErrNotAuthenticated is returned by user-scoped operations while no
	// identity is signed in.
	ErrNotAuthenticated = errors.New("not signed in")

	// ErrNotOwner is returned when a journal entry belongs to another user.
	// It is always wrapped together with adapter.ErrForbidden.
	ErrNotOwner = errors.New("journal entry belongs to another user")

	// ErrRemoteSignOut is reported when the local sign-out succeeded but the
	// identity service could not drop the remote sessions.
	ErrRemoteSignOut = errors.New("signed out locally, remote sessions may still be active")
)
