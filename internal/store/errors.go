package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountAlreadyExists is returned when an account with the same
	// email is already registered.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrLocalSessionNotFound is returned when the device has no cached
	// session secret.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrSessionNotFound is returned when a session key is unknown or has
	// expired.
	ErrSessionNotFound = errors.New("session not found")
)

// Low-level errors. These wrap the driver error of the failed operation.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement fails in the database.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrSessionStore is returned when Redis rejects a session command.
	ErrSessionStore = errors.New("session store error")

	// ErrNilDB is returned when a repository is built without a connection.
	ErrNilDB = errors.New("db is nil")
)
