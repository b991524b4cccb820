package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/models"
)

// invoiceRepository is the PostgreSQL-backed implementation of
// [InvoiceRepository]. Invoice creation writes the header and its line items
// inside a single transaction so a partial invoice can never be observed.
type invoiceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewInvoiceRepository constructs an [InvoiceRepository] backed by the
// provided database connection and logger.
func NewInvoiceRepository(db *DB, logger *logger.Logger) InvoiceRepository {
	logger.Debug().Msg("creating invoice repository")
	return &invoiceRepository{
		db:     db,
		logger: logger,
	}
}

// CreateInvoice persists the invoice header and all line items atomically
// and returns the invoice with server-assigned identifiers.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on (user_id, number) →
//     [ErrInvoiceNumberExists].
//   - Transaction begin/commit failures → wrapped low-level errors.
func (r *invoiceRepository) CreateInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*invoiceRepository.CreateInvoice").Msg("failed to begin transaction")
		return models.Invoice{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createInvoice,
		invoice.UserID, invoice.ClientID, invoice.Number, invoice.Status, invoice.Currency,
		invoice.IssueDate, invoice.DueDate, invoice.VATRate,
		invoice.Subtotal, invoice.VATAmount, invoice.Total,
		invoice.ExchangeRate, invoice.BaseTotal)

	if err := row.Scan(&invoice.InvoiceID, &invoice.CreatedAt, &invoice.UpdatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Invoice{}, ErrInvoiceNumberExists
		}
		log.Err(err).
			Str("func", "*invoiceRepository.CreateInvoice").
			Int64("user_id", invoice.UserID).
			Str("number", invoice.Number).
			Msg("failed to insert invoice header")
		return models.Invoice{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	for i := range invoice.Items {
		item := &invoice.Items[i]
		item.InvoiceID = invoice.InvoiceID

		itemRow := tx.QueryRowContext(ctx, createInvoiceItem,
			invoice.InvoiceID, item.Description, item.Quantity, item.UnitPrice, item.Amount)
		if err := itemRow.Scan(&item.ItemID); err != nil {
			log.Err(err).
				Str("func", "*invoiceRepository.CreateInvoice").
				Int64("invoice_id", invoice.InvoiceID).
				Int("item index", i).
				Msg("failed to insert invoice item")
			return models.Invoice{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*invoiceRepository.CreateInvoice").Msg("failed to commit transaction")
		return models.Invoice{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return invoice, nil
}

// GetInvoices lists the user's invoice headers matching the filter, newest
// first. Line items are not loaded; use [GetInvoiceByID] for the full record.
func (r *invoiceRepository) GetInvoices(ctx context.Context, userID int64, filter models.InvoiceFilter) ([]models.Invoice, error) {
	log := logger.FromContext(ctx)

	builder := sq.
		Select("invoice_id", "user_id", "client_id", "number", "status", "currency",
			"issue_date", "due_date", "vat_rate", "subtotal", "vat_amount", "total",
			"exchange_rate", "base_total", "created_at", "updated_at").
		From("invoices").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("issue_date DESC", "invoice_id DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.ClientID != nil {
		builder = builder.Where(sq.Eq{"client_id": *filter.ClientID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": *filter.Status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "*invoiceRepository.GetInvoices").
			Int64("user_id", userID).
			Msg("failed to build invoice query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*invoiceRepository.GetInvoices").
			Int64("user_id", userID).
			Msg("failed to execute query for listing invoices")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	invoices := make([]models.Invoice, 0, 20)

	for rows.Next() {
		var invoice models.Invoice
		if scanErr := scanInvoice(rows, &invoice); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*invoiceRepository.GetInvoices").
				Int64("user_id", userID).
				Msg("failed to scan invoice row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		invoices = append(invoices, invoice)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*invoiceRepository.GetInvoices").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return invoices, nil
}

// GetInvoiceByID retrieves one invoice together with its line items.
// Returns [ErrInvoiceNotFound] when no matching record exists.
func (r *invoiceRepository) GetInvoiceByID(ctx context.Context, userID, invoiceID int64) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	var invoice models.Invoice
	row := r.db.QueryRowContext(ctx, getInvoiceByID, userID, invoiceID)

	if err := scanInvoice(row, &invoice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Invoice{}, ErrInvoiceNotFound
		}
		log.Err(err).
			Str("func", "*invoiceRepository.GetInvoiceByID").
			Int64("user_id", userID).
			Int64("invoice_id", invoiceID).
			Msg("error: scanning error")
		return models.Invoice{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	rows, err := r.db.QueryContext(ctx, getInvoiceItems, invoiceID)
	if err != nil {
		log.Err(err).
			Str("func", "*invoiceRepository.GetInvoiceByID").
			Int64("invoice_id", invoiceID).
			Msg("failed to execute query for invoice items")
		return models.Invoice{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.InvoiceItem
		if scanErr := rows.Scan(&item.ItemID, &item.InvoiceID, &item.Description, &item.Quantity, &item.UnitPrice, &item.Amount); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*invoiceRepository.GetInvoiceByID").
				Int64("invoice_id", invoiceID).
				Msg("failed to scan invoice item row")
			return models.Invoice{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		invoice.Items = append(invoice.Items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return models.Invoice{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return invoice, nil
}

// UpdateInvoiceStatus sets the invoice status and returns the stored header.
// Transition legality is the service layer's concern; the repository only
// persists. Returns [ErrInvoiceNotFound] when no matching record exists.
func (r *invoiceRepository) UpdateInvoiceStatus(ctx context.Context, userID, invoiceID int64, status string) (models.Invoice, error) {
	log := logger.FromContext(ctx)

	var invoice models.Invoice
	row := r.db.QueryRowContext(ctx, updateInvoiceStatus, userID, invoiceID, status)

	if err := scanInvoice(row, &invoice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Invoice{}, ErrInvoiceNotFound
		}
		log.Err(err).
			Str("func", "*invoiceRepository.UpdateInvoiceStatus").
			Int64("user_id", userID).
			Int64("invoice_id", invoiceID).
			Str("status", status).
			Msg("error: scanning error")
		return models.Invoice{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return invoice, nil
}

// MarkOverdueInvoices flips every sent invoice with a due date before asOf
// to overdue, across all users, and reports how many rows changed. Used by
// the background overdue worker.
func (r *invoiceRepository) MarkOverdueInvoices(ctx context.Context, asOf time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, markOverdueInvoices, asOf)
	if err != nil {
		log.Err(err).
			Str("func", "*invoiceRepository.MarkOverdueInvoices").
			Msg("failed to execute overdue update")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

func scanInvoice(s scanner, i *models.Invoice) error {
	return s.Scan(
		&i.InvoiceID,
		&i.UserID,
		&i.ClientID,
		&i.Number,
		&i.Status,
		&i.Currency,
		&i.IssueDate,
		&i.DueDate,
		&i.VATRate,
		&i.Subtotal,
		&i.VATAmount,
		&i.Total,
		&i.ExchangeRate,
		&i.BaseTotal,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}
