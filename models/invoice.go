package models

import "time"

// Invoice statuses and the allowed transitions between them:
//
//	draft -> sent -> paid
//	         sent -> overdue -> paid
//	draft -> cancelled, sent -> cancelled
const (
	InvoiceDraft     = "draft"
	InvoiceSent      = "sent"
	InvoicePaid      = "paid"
	InvoiceOverdue   = "overdue"
	InvoiceCancelled = "cancelled"
)

// Invoice is a bill issued to a client: a header plus line items. Amounts
// are computed server-side from the items, never accepted from the request.
type Invoice struct {
	InvoiceID int64 `json:"invoice_id"`

	// UserID is the owning consultant account.
	UserID int64 `json:"-"`

	// ClientID is the client being billed.
	ClientID int64 `json:"client_id"`

	// Number is the human-facing invoice number, unique per user.
	Number string `json:"number"`

	// Status is one of the Invoice* constants above.
	Status string `json:"status"`

	// Currency is the ISO 4217 code the invoice is issued in.
	Currency string `json:"currency"`

	IssueDate time.Time `json:"issue_date"`
	DueDate   time.Time `json:"due_date"`

	// Items are the invoice lines. Subtotal/VAT/Total derive from them.
	Items []InvoiceItem `json:"items,omitempty"`

	// VATRate is the applied VAT percentage (e.g. 25 for Swedish VAT).
	VATRate float64 `json:"vat_rate"`

	Subtotal  float64 `json:"subtotal"`
	VATAmount float64 `json:"vat_amount"`
	Total     float64 `json:"total"`

	// ExchangeRate and BaseTotal are populated for invoices issued in a
	// foreign currency: BaseTotal = Total * ExchangeRate in the accounting
	// currency. Zero when the invoice is already in the base currency.
	ExchangeRate float64 `json:"exchange_rate,omitempty"`
	BaseTotal    float64 `json:"base_total,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Invoice model.
func (i Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is a single line on an invoice.
type InvoiceItem struct {
	ItemID    int64 `json:"item_id"`
	InvoiceID int64 `json:"-"`

	Description string `json:"description"`

	// Quantity is typically hours; UnitPrice the hourly rate.
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`

	// Amount = Quantity * UnitPrice, computed server-side.
	Amount float64 `json:"amount"`
}

// TableName returns the name of the database table
// associated with the InvoiceItem model.
func (i InvoiceItem) TableName() string {
	return "invoice_items"
}

// InvoiceFilter restricts an invoice listing. Nil fields are not applied.
type InvoiceFilter struct {
	ClientID *int64  `json:"client_id,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// ValidInvoiceStatus reports whether s is a known invoice status.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue, InvoiceCancelled:
		return true
	}
	return false
}
