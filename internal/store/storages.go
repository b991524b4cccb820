package store

import (
	"github.com/nandervang/go-consult-base/internal/logger"
)

// Storages aggregates every repository behind a single value that the
// service layer receives at construction time.
type Storages struct {
	UserRepository      UserRepository
	ClientRepository    ClientRepository
	ProjectRepository   ProjectRepository
	TimeEntryRepository TimeEntryRepository
	InvoiceRepository   InvoiceRepository
	SalaryRepository    SalaryRepository
	CVProfileRepository CVProfileRepository
	DocumentRepository  DocumentRepository
}

// NewStorages wires all PostgreSQL-backed repositories onto the shared
// database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		ClientRepository:    NewClientRepository(db, log),
		ProjectRepository:   NewProjectRepository(db, log),
		TimeEntryRepository: NewTimeEntryRepository(db, log),
		InvoiceRepository:   NewInvoiceRepository(db, log),
		SalaryRepository:    NewSalaryRepository(db, log),
		CVProfileRepository: NewCVProfileRepository(db, log),
		DocumentRepository:  NewDocumentRepository(db, log),
	}
}
