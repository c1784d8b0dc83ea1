package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup, update or delete targets a
	// user that does not exist.
	ErrUserNotFound = errors.New("user was not found")

	// ErrEmailAlreadyExists is returned when an insert or update would give
	// two users the same email (unique constraint violation).
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrStoreUnavailable is wrapped around driver errors that indicate the
	// database cannot be reached right now (broken connection, server
	// starting up or shutting down, lock timeouts).
	ErrStoreUnavailable = errors.New("credential store is unavailable")

	// ErrUnsupportedDriver is returned by [NewStorages] for a driver other
	// than pgx or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails
	// (e.g. an unknown sort column).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan user rows")
)
