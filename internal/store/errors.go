package store

import "errors"

// Configuration errors returned by [NewStorages].
var (
	// ErrUnsupportedDriver is returned when the configured driver is neither
	// sqlite3 nor postgres.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrEmptyDSN is returned when no data source name was configured.
	ErrEmptyDSN = errors.New("empty database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// [Set] methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. a predicate cannot be rendered).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning or iterating a multi-row
	// result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
