package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/models"
)

// timeEntryRepository is the PostgreSQL-backed implementation of
// [TimeEntryRepository]. Listing uses a squirrel-built query because the
// filter combines an arbitrary subset of project, date range, billable flag,
// and unbilled conditions.
type timeEntryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTimeEntryRepository constructs a [TimeEntryRepository] backed by the
// provided database connection and logger.
func NewTimeEntryRepository(db *DB, logger *logger.Logger) TimeEntryRepository {
	logger.Debug().Msg("creating time entry repository")
	return &timeEntryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTimeEntry persists a new logged work period and returns it with
// server-assigned fields populated.
func (r *timeEntryRepository) CreateTimeEntry(ctx context.Context, entry models.TimeEntry) (models.TimeEntry, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTimeEntry,
		entry.UserID, entry.ProjectID, entry.EntryDate, entry.Hours, entry.Note, entry.Billable)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*timeEntryRepository.CreateTimeEntry").Msg("error: row is nil")
		return models.TimeEntry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanTimeEntry(row, &entry); err != nil {
		log.Err(err).Str("func", "*timeEntryRepository.CreateTimeEntry").Msg("error: scanning error")
		return models.TimeEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

// GetTimeEntries lists the user's entries matching the filter, newest first.
// Nil filter fields are not applied; Unbilled additionally restricts the
// result to billable entries not yet attached to an invoice.
func (r *timeEntryRepository) GetTimeEntries(ctx context.Context, userID int64, filter models.TimeEntryFilter) ([]models.TimeEntry, error) {
	log := logger.FromContext(ctx)

	builder := sq.
		Select("entry_id", "user_id", "project_id", "entry_date", "hours", "note", "billable", "invoice_id", "created_at").
		From("time_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("entry_date DESC", "entry_id DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.ProjectID != nil {
		builder = builder.Where(sq.Eq{"project_id": *filter.ProjectID})
	}
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"entry_date": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.LtOrEq{"entry_date": *filter.To})
	}
	if filter.Billable != nil {
		builder = builder.Where(sq.Eq{"billable": *filter.Billable})
	}
	if filter.Unbilled {
		builder = builder.Where(sq.Eq{"billable": true}).Where(sq.Eq{"invoice_id": nil})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "*timeEntryRepository.GetTimeEntries").
			Int64("user_id", userID).
			Msg("failed to build time entry query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*timeEntryRepository.GetTimeEntries").
			Int64("user_id", userID).
			Msg("failed to execute query for listing time entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.TimeEntry, 0, 50)

	for rows.Next() {
		var entry models.TimeEntry
		if scanErr := scanTimeEntry(rows, &entry); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*timeEntryRepository.GetTimeEntries").
				Int64("user_id", userID).
				Msg("failed to scan time entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*timeEntryRepository.GetTimeEntries").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// DeleteTimeEntry removes an entry that has not been billed yet.
// Returns [ErrTimeEntryNotFound] when the entry does not exist, belongs to
// another user, or is already attached to an invoice.
func (r *timeEntryRepository) DeleteTimeEntry(ctx context.Context, userID, entryID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTimeEntry, userID, entryID)
	if err != nil {
		log.Err(err).
			Str("func", "*timeEntryRepository.DeleteTimeEntry").
			Int64("user_id", userID).
			Int64("entry_id", entryID).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTimeEntryNotFound
	}

	return nil
}

// GetTimeSummary aggregates total, billable, and billed hours for one
// project. A project with no entries yields a zero summary, not an error.
func (r *timeEntryRepository) GetTimeSummary(ctx context.Context, userID, projectID int64) (models.TimeSummary, error) {
	log := logger.FromContext(ctx)

	summary := models.TimeSummary{ProjectID: projectID}
	row := r.db.QueryRowContext(ctx, getTimeSummary, userID, projectID)

	if err := row.Scan(&summary.TotalHours, &summary.BillableHours, &summary.BilledHours); err != nil {
		log.Err(err).
			Str("func", "*timeEntryRepository.GetTimeSummary").
			Int64("user_id", userID).
			Int64("project_id", projectID).
			Msg("error: scanning error")
		return models.TimeSummary{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return summary, nil
}

// MarkEntriesBilled attaches the given entries to an invoice. Entries that
// are already billed are left untouched.
func (r *timeEntryRepository) MarkEntriesBilled(ctx context.Context, userID, invoiceID int64, entryIDs []int64) error {
	log := logger.FromContext(ctx)

	if len(entryIDs) == 0 {
		return nil
	}

	query, args, err := sq.
		Update("time_entries").
		Set("invoice_id", invoiceID).
		Where(sq.Eq{"user_id": userID, "entry_id": entryIDs, "invoice_id": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "*timeEntryRepository.MarkEntriesBilled").
			Int64("user_id", userID).
			Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*timeEntryRepository.MarkEntriesBilled").
			Int64("user_id", userID).
			Int64("invoice_id", invoiceID).
			Int("entry count", len(entryIDs)).
			Msg("failed to execute update statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func scanTimeEntry(s scanner, e *models.TimeEntry) error {
	return s.Scan(
		&e.EntryID,
		&e.UserID,
		&e.ProjectID,
		&e.EntryDate,
		&e.Hours,
		&e.Note,
		&e.Billable,
		&e.InvoiceID,
		&e.CreatedAt,
	)
}
