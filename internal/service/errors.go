package service

import "errors"

var (
	// ErrProfileNotFound wraps adapter.ErrNotFound when an identity has no
	// profile document yet.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrEntryNotFound wraps adapter.ErrNotFound for a missing journal entry.
	ErrEntryNotFound = errors.New("journal entry not found")

	// ErrValidation wraps the validators error of rejected input. It is
	// returned before any remote call.
	ErrValidation = errors.New("validation failed")

	// ErrNoUserID is returned when an operation needs a user id and got "".
	ErrNoUserID = errors.New("no user ID was given")
)
