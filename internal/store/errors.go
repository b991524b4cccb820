package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrClientNotFound is returned when a client lookup or update targets a
	// record that does not exist or belongs to another user.
	ErrClientNotFound = errors.New("client was not found")

	// ErrProjectNotFound is returned when a project lookup or update targets a
	// record that does not exist or belongs to another user.
	ErrProjectNotFound = errors.New("project was not found")

	// ErrTimeEntryNotFound is returned when a time-entry lookup or update
	// targets a record that does not exist or belongs to another user.
	ErrTimeEntryNotFound = errors.New("time entry was not found")

	// ErrInvoiceNotFound is returned when an invoice lookup or update targets
	// a record that does not exist or belongs to another user.
	ErrInvoiceNotFound = errors.New("invoice was not found")

	// ErrInvoiceNumberExists is returned when creating an invoice whose number
	// collides with an existing invoice of the same user.
	ErrInvoiceNumberExists = errors.New("invoice number already exists")

	// ErrSalaryPaymentNotFound is returned when a salary-payment lookup or
	// update targets a record that does not exist or belongs to another user.
	ErrSalaryPaymentNotFound = errors.New("salary payment was not found")

	// ErrSalaryPeriodExists is returned when creating a salary payment for a
	// period that already has one scheduled for the same user.
	ErrSalaryPeriodExists = errors.New("salary payment for period already exists")

	// ErrCVProfileNotFound is returned when a CV-profile lookup or update
	// targets a record that does not exist or belongs to another user.
	ErrCVProfileNotFound = errors.New("cv profile was not found")

	// ErrDocumentNotFound is returned when a document lookup or update targets
	// a record that does not exist or belongs to another user.
	ErrDocumentNotFound = errors.New("document was not found")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
