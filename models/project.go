package models

import "time"

// Project statuses. A project only accepts new time entries while active.
const (
	ProjectActive    = "active"
	ProjectPaused    = "paused"
	ProjectCompleted = "completed"
)

// Project is a billable engagement for a client. Time entries are logged
// against a project and invoiced at its hourly rate.
type Project struct {
	ProjectID int64 `json:"project_id"`

	// UserID is the owning consultant account.
	UserID int64 `json:"-"`

	// ClientID links the project to the client being billed.
	ClientID int64 `json:"client_id"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// HourlyRate is the billing rate in the client's currency.
	HourlyRate float64 `json:"hourly_rate"`

	// BudgetHours caps the planned effort; zero means no budget was agreed.
	BudgetHours float64 `json:"budget_hours,omitempty"`

	// Status is one of ProjectActive, ProjectPaused, ProjectCompleted.
	Status string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}
