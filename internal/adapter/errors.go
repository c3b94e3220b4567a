package adapter

import "errors"

// Sentinel errors shared by every backend. HTTP backends map status codes
// onto them in mapHTTPError; the others map driver errors.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrRemote is any other remote failure (unexpected status, transport
	// error, driver error).
	ErrRemote = errors.New("remote failure")
)
