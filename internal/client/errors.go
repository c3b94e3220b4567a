package client

import "errors"

var (
	// ErrUnknownCommand is returned for a subcommand the client does not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage is returned when a subcommand is called with missing or
	// malformed arguments.
	ErrUsage = errors.New("invalid usage")

	// ErrUnknownProfileField is returned by "profile set" for a key it
	// cannot map to a profile field.
	ErrUnknownProfileField = errors.New("unknown profile field")
)
