package models

import "time"

// Client is a company or person the consultant invoices and documents work
// for. Projects, invoices, and wiki documents all hang off a client.
type Client struct {
	ClientID int64 `json:"client_id"`

	// UserID is the owning consultant account. Every query is scoped by it.
	UserID int64 `json:"-"`

	// Name is the client's display name (company or contact person).
	Name string `json:"name"`

	// OrgNumber is the company registration number, if any.
	OrgNumber string `json:"org_number,omitempty"`

	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`

	// Currency is the ISO 4217 code invoices for this client default to.
	Currency string `json:"currency"`

	// Archived hides the client from active listings without losing the
	// invoice history.
	Archived bool `json:"archived"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Client model.
func (c Client) TableName() string {
	return "clients"
}
