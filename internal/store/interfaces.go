package store

import (
	"context"
	"time"

	"github.com/nandervang/go-consult-base/models"
)

// UserRepository persists consultant accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// ClientRepository persists the clients a consultant works for.
type ClientRepository interface {
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)
	GetClients(ctx context.Context, userID int64, includeArchived bool) ([]models.Client, error)
	GetClientByID(ctx context.Context, userID, clientID int64) (models.Client, error)
	UpdateClient(ctx context.Context, client models.Client) (models.Client, error)
	ArchiveClient(ctx context.Context, userID, clientID int64) error
}

// ProjectRepository persists billable engagements.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	GetProjects(ctx context.Context, userID int64) ([]models.Project, error)
	GetProjectByID(ctx context.Context, userID, projectID int64) (models.Project, error)
	UpdateProject(ctx context.Context, project models.Project) (models.Project, error)
}

// TimeEntryRepository persists logged work periods and their aggregates.
type TimeEntryRepository interface {
	CreateTimeEntry(ctx context.Context, entry models.TimeEntry) (models.TimeEntry, error)
	GetTimeEntries(ctx context.Context, userID int64, filter models.TimeEntryFilter) ([]models.TimeEntry, error)
	DeleteTimeEntry(ctx context.Context, userID, entryID int64) error
	GetTimeSummary(ctx context.Context, userID, projectID int64) (models.TimeSummary, error)
	MarkEntriesBilled(ctx context.Context, userID, invoiceID int64, entryIDs []int64) error
}

// InvoiceRepository persists invoices together with their line items.
type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error)
	GetInvoices(ctx context.Context, userID int64, filter models.InvoiceFilter) ([]models.Invoice, error)
	GetInvoiceByID(ctx context.Context, userID, invoiceID int64) (models.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, userID, invoiceID int64, status string) (models.Invoice, error)
	MarkOverdueInvoices(ctx context.Context, asOf time.Time) (int64, error)
}

// SalaryRepository persists the monthly salary schedule.
type SalaryRepository interface {
	CreateSalaryPayment(ctx context.Context, payment models.SalaryPayment) (models.SalaryPayment, error)
	GetSalaryPayments(ctx context.Context, userID int64) ([]models.SalaryPayment, error)
	MarkSalaryPaid(ctx context.Context, userID, paymentID int64, paidAt time.Time) (models.SalaryPayment, error)
}

// CVProfileRepository persists structured consultant CVs.
type CVProfileRepository interface {
	CreateCVProfile(ctx context.Context, profile models.CVProfile) (models.CVProfile, error)
	GetCVProfiles(ctx context.Context, userID int64) ([]models.CVProfile, error)
	GetCVProfileByID(ctx context.Context, userID, profileID int64) (models.CVProfile, error)
	UpdateCVProfile(ctx context.Context, profile models.CVProfile) (models.CVProfile, error)
	DeleteCVProfile(ctx context.Context, userID, profileID int64) error
}

// DocumentRepository persists wiki documents, sensitive ones encrypted.
type DocumentRepository interface {
	CreateDocument(ctx context.Context, document models.Document) (models.Document, error)
	GetDocuments(ctx context.Context, userID int64, clientID *int64) ([]models.Document, error)
	GetDocumentByID(ctx context.Context, userID, documentID int64) (models.Document, error)
	UpdateDocument(ctx context.Context, document models.Document) (models.Document, error)
	DeleteDocument(ctx context.Context, userID, documentID int64) error
}
