package workers

import (
	"github.com/nandervang/go-consult-base/internal/config"
	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the application's background workers: the vault
// keyring sweeper and the overdue-invoice marker.
func NewWorkers(services *service.Services, cfg config.Workers, log *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewKeyringSweeper(services.Keyrings, cfg.SweepInterval, log),
			NewOverdueInvoiceWorker(services.InvoiceService, cfg.OverdueInterval, log),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
