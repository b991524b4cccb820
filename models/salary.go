package models

import "time"

// SalaryPayment is one row of the consultant's monthly salary schedule.
// Swedish solo-company practice: the owner pays themselves a fixed gross
// salary each month and tracks the tax split for bookkeeping.
type SalaryPayment struct {
	PaymentID int64 `json:"payment_id"`

	// UserID is the owning consultant account.
	UserID int64 `json:"-"`

	// Period is the salary month in "YYYY-MM" form.
	Period string `json:"period"`

	GrossAmount float64 `json:"gross_amount"`
	TaxAmount   float64 `json:"tax_amount"`
	NetAmount   float64 `json:"net_amount"`

	// DueDate is when the payment should leave the company account.
	DueDate time.Time `json:"due_date"`

	// Paid flips once the payment has been executed; PaidAt records when.
	Paid   bool       `json:"paid"`
	PaidAt *time.Time `json:"paid_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the SalaryPayment model.
func (s SalaryPayment) TableName() string {
	return "salary_payments"
}
