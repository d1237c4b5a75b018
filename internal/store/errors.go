package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a quarantine record lookup or
	// update targets an id that does not exist.
	ErrRecordNotFound = errors.New("quarantine record not found")

	// ErrKeyRecordNotFound is returned when an encryption key record
	// referenced by a quarantine record is missing from the key vault.
	ErrKeyRecordNotFound = errors.New("encryption key record not found")

	// ErrRecordAlreadyExists is returned when an INSERT hits a unique
	// constraint (duplicate id or storage key).
	ErrRecordAlreadyExists = errors.New("record already exists")

	// ErrRecordNotSaved is returned when an INSERT completes without error
	// but affects no rows.
	ErrRecordNotSaved = errors.New("record was not saved")
)

// Object store errors.
var (
	// ErrObjectStorage wraps every object store backend failure.
	ErrObjectStorage = errors.New("object storage error")

	// ErrObjectNotFound is returned by Get for a missing key. It matches
	// ErrObjectStorage as well.
	ErrObjectNotFound = fmt.Errorf("%w: object not found", ErrObjectStorage)

	// ErrInvalidObjectKey is returned for keys that would escape the
	// storage root or are empty.
	ErrInvalidObjectKey = fmt.Errorf("%w: invalid object key", ErrObjectStorage)

	// ErrInvalidSignedToken is returned when a signed content link fails
	// verification.
	ErrInvalidSignedToken = errors.New("invalid signed link token")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query with the
	// query builder fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDatabaseUnavailable marks failures the driver reports as transient
	// (lost connection, deadlock, busy database). Retrying later may succeed.
	ErrDatabaseUnavailable = errors.New("metadata database is temporarily unavailable")

	// ErrUnknownDriver is returned for a database driver the store cannot
	// connect to.
	ErrUnknownDriver = errors.New("unknown database driver")
)
