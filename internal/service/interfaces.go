package service

import (
	"context"

	"github.com/nandervang/go-consult-base/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ClientService interface {
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)
	GetClients(ctx context.Context, userID int64, includeArchived bool) ([]models.Client, error)
	GetClient(ctx context.Context, userID, clientID int64) (models.Client, error)
	UpdateClient(ctx context.Context, client models.Client) (models.Client, error)
	ArchiveClient(ctx context.Context, userID, clientID int64) error
}

type ProjectService interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	GetProjects(ctx context.Context, userID int64) ([]models.Project, error)
	GetProject(ctx context.Context, userID, projectID int64) (models.Project, error)
	UpdateProject(ctx context.Context, project models.Project) (models.Project, error)
}

type TimeEntryService interface {
	LogTime(ctx context.Context, entry models.TimeEntry) (models.TimeEntry, error)
	GetTimeEntries(ctx context.Context, userID int64, filter models.TimeEntryFilter) ([]models.TimeEntry, error)
	DeleteTimeEntry(ctx context.Context, userID, entryID int64) error
	GetTimeSummary(ctx context.Context, userID, projectID int64) (models.TimeSummary, error)
}

type InvoiceService interface {
	CreateInvoice(ctx context.Context, invoice models.Invoice, entryIDs []int64) (models.Invoice, error)
	GetInvoices(ctx context.Context, userID int64, filter models.InvoiceFilter) ([]models.Invoice, error)
	GetInvoice(ctx context.Context, userID, invoiceID int64) (models.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, userID, invoiceID int64, status string) (models.Invoice, error)
	MarkOverdueInvoices(ctx context.Context) (int64, error)
}

type SalaryService interface {
	SchedulePayment(ctx context.Context, payment models.SalaryPayment) (models.SalaryPayment, error)
	GetPayments(ctx context.Context, userID int64) ([]models.SalaryPayment, error)
	MarkPaid(ctx context.Context, userID, paymentID int64) (models.SalaryPayment, error)
}

type CVService interface {
	CreateProfile(ctx context.Context, profile models.CVProfile) (models.CVProfile, error)
	GetProfiles(ctx context.Context, userID int64) ([]models.CVProfile, error)
	GetProfile(ctx context.Context, userID, profileID int64) (models.CVProfile, error)
	UpdateProfile(ctx context.Context, profile models.CVProfile) (models.CVProfile, error)
	DeleteProfile(ctx context.Context, userID, profileID int64) error
}

// DocumentService manages wiki documents and the vault session protecting
// the sensitive ones.
type DocumentService interface {
	CreateDocument(ctx context.Context, document models.Document) (models.Document, error)
	GetDocuments(ctx context.Context, userID int64, clientID *int64) ([]models.Document, error)
	GetDocument(ctx context.Context, userID, documentID int64) (models.Document, error)
	UpdateDocument(ctx context.Context, document models.Document) (models.Document, error)
	DeleteDocument(ctx context.Context, userID, documentID int64) error

	UnlockVault(ctx context.Context, userID int64, password string) error
	LockVault(ctx context.Context, userID int64)
	VaultStatus(ctx context.Context, userID int64) models.VaultStatus
	GeneratePassword(ctx context.Context, length int) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
