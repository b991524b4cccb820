package service

import (
	"github.com/nandervang/go-consult-base/internal/adapter"
	"github.com/nandervang/go-consult-base/internal/config"
	"github.com/nandervang/go-consult-base/internal/crypto"
	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/store"
)

type Services struct {
	AuthService      AuthService
	ClientService    ClientService
	ProjectService   ProjectService
	TimeEntryService TimeEntryService
	InvoiceService   InvoiceService
	SalaryService    SalaryService
	CVService        CVService
	DocumentService  DocumentService
	AppInfoService   AppInfoService

	// Keyrings tracks per-user vault sessions. Exposed so the background
	// sweeper can drop expired keyrings.
	Keyrings *crypto.KeyringRegistry
}

func NewServices(storages *store.Storages, rates adapter.RateProvider, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	keyrings := crypto.NewKeyringRegistry(cfg.App.VaultSessionTTL)
	vault := crypto.NewVaultService()

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		ClientService:    NewClientService(storages.ClientRepository, logger),
		ProjectService:   NewProjectService(storages.ProjectRepository, storages.ClientRepository, logger),
		TimeEntryService: NewTimeEntryService(storages.TimeEntryRepository, storages.ProjectRepository, logger),
		InvoiceService:   NewInvoiceService(storages.InvoiceRepository, storages.TimeEntryRepository, rates, cfg.App.BaseCurrency, logger),
		SalaryService:    NewSalaryService(storages.SalaryRepository, logger),
		CVService:        NewCVService(storages.CVProfileRepository, logger),
		DocumentService:  NewDocumentService(storages.DocumentRepository, vault, keyrings, logger),
		AppInfoService:   appInfoService,
		Keyrings:         keyrings,
	}, nil
}
