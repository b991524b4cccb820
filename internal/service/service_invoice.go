package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/nandervang/go-consult-base/internal/adapter"
	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/store"
	"github.com/nandervang/go-consult-base/models"
)

// invoiceService is the concrete implementation of InvoiceService. It owns
// all invoice arithmetic: line amounts, subtotal, VAT, total, and the base
// currency conversion for foreign invoices. Amounts submitted by clients are
// ignored and recomputed here.
type invoiceService struct {
	invoiceRepository   store.InvoiceRepository
	timeEntryRepository store.TimeEntryRepository
	rates               adapter.RateProvider

	// baseCurrency is the accounting currency foreign totals convert into.
	baseCurrency string

	logger *logger.Logger
}

// NewInvoiceService constructs an InvoiceService wired to the given
// repositories and exchange-rate provider.
func NewInvoiceService(invoiceRepository store.InvoiceRepository, timeEntryRepository store.TimeEntryRepository, rates adapter.RateProvider, baseCurrency string, logger *logger.Logger) InvoiceService {
	if baseCurrency == "" {
		baseCurrency = "SEK"
	}
	return &invoiceService{
		invoiceRepository:   invoiceRepository,
		timeEntryRepository: timeEntryRepository,
		rates:               rates,
		baseCurrency:        strings.ToUpper(baseCurrency),
		logger:              logger,
	}
}

// CreateInvoice computes all amounts, persists the invoice as a draft, and
// attaches the given time entries to it.
//
// For invoices issued in a foreign currency the total is converted into the
// base currency via the rate provider. A disabled provider is not an error;
// the invoice is stored without a base total.
//
// Returns the persisted invoice or:
//   - ErrInvalidDataProvided on missing client, number, or dates.
//   - ErrInvoiceHasNoItems when no line items are given.
//   - store.ErrInvoiceNumberExists (wrapped) on a duplicate number.
func (s *invoiceService) CreateInvoice(ctx context.Context, invoice models.Invoice, entryIDs []int64) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	if invoice.ClientID == 0 || strings.TrimSpace(invoice.Number) == "" || invoice.IssueDate.IsZero() || invoice.DueDate.IsZero() {
		log.Error().Int64("user_id", invoice.UserID).Msg("invalid invoice data provided")
		return models.Invoice{}, ErrInvalidDataProvided
	}
	if len(invoice.Items) == 0 {
		return models.Invoice{}, ErrInvoiceHasNoItems
	}
	if invoice.VATRate < 0 || invoice.VATRate > 100 {
		return models.Invoice{}, ErrInvalidDataProvided
	}

	invoice.Status = models.InvoiceDraft
	if invoice.Currency == "" {
		invoice.Currency = s.baseCurrency
	}
	invoice.Currency = strings.ToUpper(invoice.Currency)

	s.computeTotals(&invoice)

	if invoice.Currency != s.baseCurrency {
		rate, err := s.rates.GetRate(ctx, invoice.Currency, s.baseCurrency)
		switch {
		case errors.Is(err, adapter.ErrRatesDisabled):
			log.Warn().
				Str("currency", invoice.Currency).
				Msg("rates disabled, storing foreign invoice without base total")
		case err != nil:
			log.Err(err).
				Str("currency", invoice.Currency).
				Msg("exchange rate lookup failed")
			return models.Invoice{}, fmt.Errorf("exchange rate lookup failed: %w", err)
		default:
			invoice.ExchangeRate = rate
			invoice.BaseTotal = round2(invoice.Total * rate)
		}
	}

	created, err := s.invoiceRepository.CreateInvoice(ctx, invoice)
	if err != nil {
		log.Err(err).
			Int64("user_id", invoice.UserID).
			Str("number", invoice.Number).
			Msg("invoice creation ended with error")
		return models.Invoice{}, fmt.Errorf("invoice creation ended with error: %w", err)
	}

	if len(entryIDs) > 0 {
		if err := s.timeEntryRepository.MarkEntriesBilled(ctx, created.UserID, created.InvoiceID, entryIDs); err != nil {
			log.Err(err).
				Int64("invoice_id", created.InvoiceID).
				Msg("failed to attach time entries to invoice")
			return models.Invoice{}, fmt.Errorf("failed to attach time entries to invoice: %w", err)
		}
	}

	return created, nil
}

// GetInvoices lists the user's invoice headers matching the filter.
func (s *invoiceService) GetInvoices(ctx context.Context, userID int64, filter models.InvoiceFilter) ([]models.Invoice, error) {
	if filter.Status != nil && !models.ValidInvoiceStatus(*filter.Status) {
		return nil, ErrInvalidDataProvided
	}
	return s.invoiceRepository.GetInvoices(ctx, userID, filter)
}

// GetInvoice fetches one invoice with its line items.
func (s *invoiceService) GetInvoice(ctx context.Context, userID, invoiceID int64) (models.Invoice, error) {
	return s.invoiceRepository.GetInvoiceByID(ctx, userID, invoiceID)
}

// UpdateInvoiceStatus applies a status transition after checking it against
// the allowed lifecycle:
//
//	draft → sent | cancelled
//	sent → paid | overdue | cancelled
//	overdue → paid
func (s *invoiceService) UpdateInvoiceStatus(ctx context.Context, userID, invoiceID int64, status string) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	if !models.ValidInvoiceStatus(status) {
		return models.Invoice{}, ErrInvalidDataProvided
	}

	current, err := s.invoiceRepository.GetInvoiceByID(ctx, userID, invoiceID)
	if err != nil {
		return models.Invoice{}, err
	}

	if !validStatusTransition(current.Status, status) {
		log.Error().
			Int64("invoice_id", invoiceID).
			Str("from", current.Status).
			Str("to", status).
			Msg("invalid invoice status transition")
		return models.Invoice{}, ErrInvalidStatusTransition
	}

	updated, err := s.invoiceRepository.UpdateInvoiceStatus(ctx, userID, invoiceID, status)
	if err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Int64("invoice_id", invoiceID).
			Msg("invoice status update ended with error")
		return models.Invoice{}, fmt.Errorf("invoice status update ended with error: %w", err)
	}

	return updated, nil
}

// MarkOverdueInvoices flips sent invoices past their due date to overdue and
// reports how many changed. Called by the background overdue worker.
func (s *invoiceService) MarkOverdueInvoices(ctx context.Context) (int64, error) {
	return s.invoiceRepository.MarkOverdueInvoices(ctx, time.Now())
}

// computeTotals recalculates every line amount and the invoice header sums
// in place.
func (s *invoiceService) computeTotals(invoice *models.Invoice) {
	var subtotal float64
	for i := range invoice.Items {
		item := &invoice.Items[i]
		item.Amount = round2(item.Quantity * item.UnitPrice)
		subtotal += item.Amount
	}
	invoice.Subtotal = round2(subtotal)
	invoice.VATAmount = round2(subtotal * invoice.VATRate / 100)
	invoice.Total = round2(invoice.Subtotal + invoice.VATAmount)
}

func validStatusTransition(from, to string) bool {
	switch from {
	case models.InvoiceDraft:
		return to == models.InvoiceSent || to == models.InvoiceCancelled
	case models.InvoiceSent:
		return to == models.InvoicePaid || to == models.InvoiceOverdue || to == models.InvoiceCancelled
	case models.InvoiceOverdue:
		return to == models.InvoicePaid
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
