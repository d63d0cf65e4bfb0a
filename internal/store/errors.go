package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user record matches a lookup or
	// an update targets a missing id.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when the database rejects an insert
	// with a unique violation. The bundled schema does not declare one, an
	// operator-added unique index on users.email surfaces here.
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported driver.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrRedisUnavailable is returned when the Redis server does not answer PING.
	ErrRedisUnavailable = errors.New("redis unavailable")
)
