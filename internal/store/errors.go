package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because an account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because an account with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBookNotFound is returned when a query targets a book (identified by
	// book_id) that does not exist in the database.
	ErrBookNotFound = errors.New("book was not found")

	// ErrBookNotDeleted is returned when a DELETE completes without error but
	// the number of affected rows is zero, indicating that no record was
	// actually removed.
	ErrBookNotDeleted = errors.New("book was not deleted")
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

	// ErrScanningRow is returned when scanning a single result row into a
	// model fails.
	ErrScanningRow = errors.New("error scanning row")

	// ErrScanningRows is returned when iterating or scanning a multi-row
	// result set fails.
	ErrScanningRows = errors.New("error scanning rows")
)
