package models

import "time"

// TimeEntry is a single logged work period: one project, one day, a number
// of hours. Entries are the raw material for invoices and reports.
type TimeEntry struct {
	EntryID int64 `json:"entry_id"`

	// UserID is the owning consultant account.
	UserID int64 `json:"-"`

	// ProjectID links the entry to the project it was worked on.
	ProjectID int64 `json:"project_id"`

	// EntryDate is the calendar day the work happened (time part unused).
	EntryDate time.Time `json:"entry_date"`

	// Hours is the logged duration in decimal hours (e.g. 1.5).
	Hours float64 `json:"hours"`

	// Note is a free-text description of what was done.
	Note string `json:"note,omitempty"`

	// Billable marks whether the entry should appear on an invoice.
	Billable bool `json:"billable"`

	// InvoiceID is set once the entry has been billed; nil while open.
	InvoiceID *int64 `json:"invoice_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the TimeEntry model.
func (t TimeEntry) TableName() string {
	return "time_entries"
}

// TimeEntryFilter restricts a time-entry listing. Nil fields are not
// applied. The repository translates the filter into a dynamic query.
type TimeEntryFilter struct {
	ProjectID *int64     `json:"project_id,omitempty"`
	From      *time.Time `json:"from,omitempty"`
	To        *time.Time `json:"to,omitempty"`
	Billable  *bool      `json:"billable,omitempty"`
	Unbilled  bool       `json:"unbilled,omitempty"`
}

// TimeSummary aggregates logged hours for one project.
type TimeSummary struct {
	ProjectID     int64   `json:"project_id"`
	TotalHours    float64 `json:"total_hours"`
	BillableHours float64 `json:"billable_hours"`
	BilledHours   float64 `json:"billed_hours"`
}
