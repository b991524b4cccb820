package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	// ErrProjectNotActive is returned when logging time against a paused or
	// completed project.
	ErrProjectNotActive = errors.New("project is not active")

	// ErrInvalidStatusTransition is returned when an invoice status change
	// does not follow draft → sent → paid (or → overdue/cancelled).
	ErrInvalidStatusTransition = errors.New("invalid invoice status transition")

	// ErrInvoiceHasNoItems is returned when creating an invoice without a
	// single line item.
	ErrInvoiceHasNoItems = errors.New("invoice has no items")

	// ErrInvalidPeriod is returned when a salary period is not in "YYYY-MM"
	// form.
	ErrInvalidPeriod = errors.New("invalid salary period")
)
