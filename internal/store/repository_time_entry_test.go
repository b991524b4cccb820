package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/models"
)

func newTestTimeEntryRepo(t *testing.T) (*timeEntryRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &timeEntryRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateTimeEntry_Success(t *testing.T) {
	repo, mock, db := newTestTimeEntryRepo(t)
	defer db.Close()

	ctx := context.Background()
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	entry := models.TimeEntry{
		UserID:    1,
		ProjectID: 3,
		EntryDate: day,
		Hours:     7.5,
		Note:      "API integration",
		Billable:  true,
	}

	rows := sqlmock.
		NewRows([]string{"entry_id", "user_id", "project_id", "entry_date", "hours", "note", "billable", "invoice_id", "created_at"}).
		AddRow(42, entry.UserID, entry.ProjectID, day, entry.Hours, entry.Note, entry.Billable, nil, time.Now())

	mock.ExpectQuery("INSERT INTO time_entries").
		WithArgs(entry.UserID, entry.ProjectID, entry.EntryDate, entry.Hours, entry.Note, entry.Billable).
		WillReturnRows(rows)

	created, err := repo.CreateTimeEntry(ctx, entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.EntryID != 42 {
		t.Errorf("expected EntryID=42, got %d", created.EntryID)
	}
	if created.InvoiceID != nil {
		t.Errorf("expected nil InvoiceID on fresh entry, got %v", *created.InvoiceID)
	}
}

func TestGetTimeEntries_FilterByProjectAndUnbilled(t *testing.T) {
	repo, mock, db := newTestTimeEntryRepo(t)
	defer db.Close()

	ctx := context.Background()
	projectID := int64(3)

	rows := sqlmock.
		NewRows([]string{"entry_id", "user_id", "project_id", "entry_date", "hours", "note", "billable", "invoice_id", "created_at"}).
		AddRow(1, 1, projectID, time.Now(), 4.0, "", true, nil, time.Now()).
		AddRow(2, 1, projectID, time.Now(), 3.5, "review", true, nil, time.Now())

	// squirrel renders the user, project, billable, and invoice predicates
	// into one WHERE clause; matching on the table name is enough here.
	mock.ExpectQuery("SELECT (.+) FROM time_entries WHERE").
		WillReturnRows(rows)

	entries, err := repo.GetTimeEntries(ctx, 1, models.TimeEntryFilter{
		ProjectID: &projectID,
		Unbilled:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Hours != 4.0 {
		t.Errorf("expected first entry hours 4.0, got %v", entries[0].Hours)
	}
}

func TestGetTimeEntries_QueryError(t *testing.T) {
	repo, mock, db := newTestTimeEntryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM time_entries").
		WillReturnError(errors.New("db gone"))

	_, err := repo.GetTimeEntries(ctx, 1, models.TimeEntryFilter{})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestDeleteTimeEntry_NotFound(t *testing.T) {
	repo, mock, db := newTestTimeEntryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM time_entries").
		WithArgs(int64(1), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTimeEntry(ctx, 1, 99)
	if !errors.Is(err, ErrTimeEntryNotFound) {
		t.Fatalf("expected ErrTimeEntryNotFound, got %v", err)
	}
}

func TestGetTimeSummary_Success(t *testing.T) {
	repo, mock, db := newTestTimeEntryRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"total", "billable", "billed"}).
		AddRow(120.5, 110.0, 80.0)

	mock.ExpectQuery("SELECT (.+) FROM time_entries").
		WithArgs(int64(1), int64(3)).
		WillReturnRows(rows)

	summary, err := repo.GetTimeSummary(ctx, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.ProjectID != 3 {
		t.Errorf("expected ProjectID=3, got %d", summary.ProjectID)
	}
	if summary.TotalHours != 120.5 {
		t.Errorf("expected TotalHours=120.5, got %v", summary.TotalHours)
	}
	if summary.BilledHours != 80.0 {
		t.Errorf("expected BilledHours=80.0, got %v", summary.BilledHours)
	}
}

func TestMarkEntriesBilled_EmptyIDs(t *testing.T) {
	repo, mock, db := newTestTimeEntryRepo(t)
	defer db.Close()

	// no expectations: an empty id list must not touch the database
	if err := repo.MarkEntriesBilled(context.Background(), 1, 5, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database interaction: %v", err)
	}
}

func TestMarkEntriesBilled_Success(t *testing.T) {
	repo, mock, db := newTestTimeEntryRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE time_entries").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.MarkEntriesBilled(context.Background(), 1, 5, []int64{10, 11})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
