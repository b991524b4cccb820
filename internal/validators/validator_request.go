package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/nandervang/go-consult-base/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	FieldName      = "name"
	FieldClientID  = "client_id"
	FieldProjectID = "project_id"
	FieldHours     = "hours"
	FieldEntryDate = "entry_date"
	FieldNumber    = "number"
	FieldDates     = "dates"
	FieldVATRate   = "vat_rate"
	FieldItems     = "items"
	FieldPeriod    = "period"
	FieldAmounts   = "amounts"
	FieldTitle     = "title"
)

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// RequestValidator validates inbound API payloads before they reach the
// service layer. It covers the write models of the billing and
// documentation endpoints; anything else is rejected with
// [ErrUnsupportedType].
type RequestValidator struct {
}

// NewRequestValidator constructs a [RequestValidator].
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Passing field names
// restricts the checks to those fields; passing none runs all checks for the
// type.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Client:
		return v.validateClient(value, fields...)
	case *models.Client:
		return v.validateClient(*value, fields...)

	case models.Project:
		return v.validateProject(value, fields...)
	case *models.Project:
		return v.validateProject(*value, fields...)

	case models.TimeEntry:
		return v.validateTimeEntry(value, fields...)
	case *models.TimeEntry:
		return v.validateTimeEntry(*value, fields...)

	case models.Invoice:
		return v.validateInvoice(value, fields...)
	case *models.Invoice:
		return v.validateInvoice(*value, fields...)

	case models.SalaryPayment:
		return v.validateSalaryPayment(value, fields...)
	case *models.SalaryPayment:
		return v.validateSalaryPayment(*value, fields...)

	case models.Document:
		return v.validateDocument(value, fields...)
	case *models.Document:
		return v.validateDocument(*value, fields...)

	case models.CVProfile:
		return v.validateCVProfile(value, fields...)
	case *models.CVProfile:
		return v.validateCVProfile(*value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateClient(client models.Client, fields ...string) error {
	for _, field := range scope(fields, FieldName) {
		switch field {
		case FieldName:
			if strings.TrimSpace(client.Name) == "" {
				return ErrEmptyClientName
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RequestValidator) validateProject(project models.Project, fields ...string) error {
	for _, field := range scope(fields, FieldName, FieldClientID) {
		switch field {
		case FieldName:
			if strings.TrimSpace(project.Name) == "" {
				return ErrEmptyProjectName
			}
		case FieldClientID:
			if project.ClientID == 0 {
				return ErrMissingClientID
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RequestValidator) validateTimeEntry(entry models.TimeEntry, fields ...string) error {
	for _, field := range scope(fields, FieldProjectID, FieldHours, FieldEntryDate) {
		switch field {
		case FieldProjectID:
			if entry.ProjectID == 0 {
				return ErrMissingProjectID
			}
		case FieldHours:
			if entry.Hours <= 0 || entry.Hours > 24 {
				return ErrInvalidHours
			}
		case FieldEntryDate:
			if entry.EntryDate.IsZero() {
				return ErrMissingEntryDate
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RequestValidator) validateInvoice(invoice models.Invoice, fields ...string) error {
	for _, field := range scope(fields, FieldClientID, FieldNumber, FieldDates, FieldVATRate, FieldItems) {
		switch field {
		case FieldClientID:
			if invoice.ClientID == 0 {
				return ErrMissingClientID
			}
		case FieldNumber:
			if strings.TrimSpace(invoice.Number) == "" {
				return ErrEmptyInvoiceNumber
			}
		case FieldDates:
			if invoice.IssueDate.IsZero() || invoice.DueDate.IsZero() {
				return ErrMissingInvoiceDates
			}
		case FieldVATRate:
			if invoice.VATRate < 0 || invoice.VATRate > 100 {
				return ErrInvalidVATRate
			}
		case FieldItems:
			if len(invoice.Items) == 0 {
				return ErrNoInvoiceItems
			}
			for _, item := range invoice.Items {
				if item.Quantity < 0 || item.UnitPrice < 0 {
					return ErrInvalidItemAmounts
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RequestValidator) validateSalaryPayment(payment models.SalaryPayment, fields ...string) error {
	for _, field := range scope(fields, FieldPeriod, FieldAmounts) {
		switch field {
		case FieldPeriod:
			if !periodPattern.MatchString(payment.Period) {
				return ErrInvalidPeriod
			}
		case FieldAmounts:
			if payment.GrossAmount <= 0 || payment.TaxAmount < 0 || payment.TaxAmount > payment.GrossAmount {
				return ErrInvalidAmounts
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RequestValidator) validateDocument(document models.Document, fields ...string) error {
	for _, field := range scope(fields, FieldTitle) {
		switch field {
		case FieldTitle:
			if strings.TrimSpace(document.Title) == "" {
				return ErrEmptyDocumentTitle
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RequestValidator) validateCVProfile(profile models.CVProfile, fields ...string) error {
	for _, field := range scope(fields, FieldTitle) {
		switch field {
		case FieldTitle:
			if strings.TrimSpace(profile.Title) == "" {
				return ErrEmptyProfileTitle
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

// scope returns the requested fields, or all defaults when none were named.
func scope(requested []string, defaults ...string) []string {
	if len(requested) == 0 {
		return defaults
	}
	return requested
}
