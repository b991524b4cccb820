package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyClientName     = errors.New("client name is required")
	ErrEmptyProjectName    = errors.New("project name is required")
	ErrMissingClientID     = errors.New("client ID is required")
	ErrMissingProjectID    = errors.New("project ID is required")
	ErrInvalidHours        = errors.New("hours must be greater than zero and at most 24")
	ErrMissingEntryDate    = errors.New("entry date is required")
	ErrEmptyInvoiceNumber  = errors.New("invoice number is required")
	ErrMissingInvoiceDates = errors.New("issue and due dates are required")
	ErrInvalidVATRate      = errors.New("VAT rate must be between 0 and 100")
	ErrNoInvoiceItems      = errors.New("invoice must have at least one item")
	ErrInvalidItemAmounts  = errors.New("item quantity and unit price must not be negative")
	ErrInvalidPeriod       = errors.New("period must be in YYYY-MM form")
	ErrInvalidAmounts      = errors.New("gross must be positive and tax must not exceed it")
	ErrEmptyDocumentTitle  = errors.New("document title is required")
	ErrEmptyProfileTitle   = errors.New("profile title is required")
)
