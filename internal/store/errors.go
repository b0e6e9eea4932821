package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountNotFound is returned when a query or update targets an
	// account id that does not exist.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrInvalidAccountData is returned when the database rejects the values
	// of an account (over-long strings, NULLs, constraint violations).
	ErrInvalidAccountData = errors.New("invalid account data")

	// ErrDatabaseUnavailable is returned for transient failures: lost or
	// refused connections, serialization failures, a locked SQLite file.
	ErrDatabaseUnavailable = errors.New("database is unavailable")

	// ErrUnsupportedDSN is returned by [NewConnect] when the DSN scheme does
	// not match any supported driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails for a reason not covered by the sentinels above.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan account row")

	// ErrScanningRows is returned when multi-row iteration fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan account rows")
)
