package workers

import (
	"context"
	"sync"
	"time"

	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/internal/service"
)

const defaultOverdueInterval = time.Hour

// overdueInvoiceWorker periodically flips sent invoices past their due date
// to overdue, so listings and reminders reflect reality without waiting for
// someone to open the invoice.
type overdueInvoiceWorker struct {
	invoices service.InvoiceService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOverdueInvoiceWorker creates an overdueInvoiceWorker. If interval is
// zero or negative it defaults to one hour. The worker is idle until Run is
// called.
func NewOverdueInvoiceWorker(invoices service.InvoiceService, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultOverdueInterval
	}
	return &overdueInvoiceWorker{
		invoices: invoices,
		interval: interval,
		logger:   log,
	}
}

// Run launches the background goroutine. Calling Run on an already running
// worker restarts it.
func (w *overdueInvoiceWorker) Run() {
	w.Stop()

	w.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Info().Dur("interval", w.interval).Msg("overdue invoice worker started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				marked, err := w.invoices.MarkOverdueInvoices(ctx)
				if err != nil {
					w.logger.Error().Err(err).Msg("error marking overdue invoices")
					continue
				}
				if marked > 0 {
					w.logger.Info().Int64("marked", marked).Msg("invoices marked overdue")
				}
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the worker is not running.
func (w *overdueInvoiceWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	w.wg.Wait()
}
