package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrQueueItemNotFound is returned when an update or delete targets a
	// sync queue row that does not exist.
	ErrQueueItemNotFound = errors.New("sync queue item was not found")

	// ErrArticleNotFound is returned when a query expected to match at
	// least one article produces an empty result set.
	ErrArticleNotFound = errors.New("article was not found")

	// ErrUsageRecordNotFound is returned when no usage counter exists for
	// the requested (service, date) pair.
	ErrUsageRecordNotFound = errors.New("api usage record was not found")

	// ErrNothingToDelete is returned when a bulk delete is invoked with an
	// empty id list; callers are expected to chunk before calling.
	ErrNothingToDelete = errors.New("no ids provided for delete operation")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
