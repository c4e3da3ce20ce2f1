package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUnknownEntityType is returned when an entity type has no local table.
	ErrUnknownEntityType = errors.New("unknown entity type")

	// ErrEntityNotFound is returned when a lookup by id matches no row.
	ErrEntityNotFound = errors.New("entity was not found")

	// ErrInvalidEntityPayload is returned when a payload cannot be decoded
	// into the entity kind it is addressed to, or lacks an id.
	ErrInvalidEntityPayload = errors.New("invalid entity payload")

	// ErrChangeLogNotSaved is returned when appending changelog entries fails.
	ErrChangeLogNotSaved = errors.New("changelog entries were not saved")

	// ErrEmptyOwner is returned by the remote repository when a call is made
	// without an owner id.
	ErrEmptyOwner = errors.New("owner id is empty")

	// ErrTransient is joined to errors the driver classifies as retryable
	// (lost connection, serialization failure, busy database).
	ErrTransient = errors.New("transient database failure")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared.
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
