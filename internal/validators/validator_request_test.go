package validators

import (
	"context"
	"testing"
	"time"

	"github.com/nandervang/go-consult-base/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), models.Client{Name: "ACME"}, "not_a_field")

	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidateClient(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.Client{Name: "ACME AB"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Client{Name: "   "}), ErrEmptyClientName)
}

func TestValidateProject(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.Project{Name: "Webshop rebuild", ClientID: 1}))
	assert.ErrorIs(t, v.Validate(ctx, models.Project{ClientID: 1}), ErrEmptyProjectName)
	assert.ErrorIs(t, v.Validate(ctx, models.Project{Name: "Webshop rebuild"}), ErrMissingClientID)

	// field scoping: only the named field is checked
	require.NoError(t, v.Validate(ctx, models.Project{Name: "Webshop rebuild"}, FieldName))
}

func TestValidateTimeEntry(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	require.NoError(t, v.Validate(ctx, models.TimeEntry{ProjectID: 1, Hours: 7.5, EntryDate: day}))
	assert.ErrorIs(t, v.Validate(ctx, models.TimeEntry{ProjectID: 1, Hours: 0, EntryDate: day}), ErrInvalidHours)
	assert.ErrorIs(t, v.Validate(ctx, models.TimeEntry{ProjectID: 1, Hours: 25, EntryDate: day}), ErrInvalidHours)
	assert.ErrorIs(t, v.Validate(ctx, models.TimeEntry{ProjectID: 1, Hours: 8}), ErrMissingEntryDate)
	assert.ErrorIs(t, v.Validate(ctx, models.TimeEntry{Hours: 8, EntryDate: day}), ErrMissingProjectID)
}

func TestValidateInvoice(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	valid := models.Invoice{
		ClientID:  1,
		Number:    "2026-001",
		IssueDate: time.Now(),
		DueDate:   time.Now().AddDate(0, 1, 0),
		VATRate:   25,
		Items:     []models.InvoiceItem{{Description: "Consulting", Quantity: 80, UnitPrice: 1100}},
	}
	require.NoError(t, v.Validate(ctx, valid))

	noItems := valid
	noItems.Items = nil
	assert.ErrorIs(t, v.Validate(ctx, noItems), ErrNoInvoiceItems)

	badVAT := valid
	badVAT.VATRate = 120
	assert.ErrorIs(t, v.Validate(ctx, badVAT), ErrInvalidVATRate)

	negativeItem := valid
	negativeItem.Items = []models.InvoiceItem{{Quantity: -1, UnitPrice: 100}}
	assert.ErrorIs(t, v.Validate(ctx, negativeItem), ErrInvalidItemAmounts)
}

func TestValidateSalaryPayment(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.SalaryPayment{Period: "2026-03", GrossAmount: 55000, TaxAmount: 16500}))
	assert.ErrorIs(t, v.Validate(ctx, models.SalaryPayment{Period: "2026-13", GrossAmount: 1}), ErrInvalidPeriod)
	assert.ErrorIs(t, v.Validate(ctx, models.SalaryPayment{Period: "march", GrossAmount: 1}), ErrInvalidPeriod)
	assert.ErrorIs(t, v.Validate(ctx, models.SalaryPayment{Period: "2026-03", GrossAmount: 100, TaxAmount: 200}), ErrInvalidAmounts)
}

func TestValidateDocumentAndProfile(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.Document{Title: "Runbook"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Document{}), ErrEmptyDocumentTitle)

	require.NoError(t, v.Validate(ctx, &models.CVProfile{Title: "Frontend focus"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.CVProfile{}), ErrEmptyProfileTitle)
}
