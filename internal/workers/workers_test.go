// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niklas Andervang

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nandervang/go-consult-base/internal/crypto"
	"github.com/nandervang/go-consult-base/internal/logger"
	"github.com/nandervang/go-consult-base/models"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Stop were called.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func (m *mockWorker) Stop() {
	m.stopCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Stop_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2}}
	ws.Run()
	ws.Stop()

	for i, w := range []*mockWorker{w1, w2} {
		if w.stopCount != 1 {
			t.Errorf("worker[%d]: expected stopCount=1, got %d", i, w.stopCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run()
	ws.Stop()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
	ws.Stop()
}

func TestKeyringSweeper_DropsExpiredKeyrings(t *testing.T) {
	registry := crypto.NewKeyringRegistry(10 * time.Millisecond)
	registry.For(1).Unlock("Sup3rSecret!")

	sweeper := NewKeyringSweeper(registry, 5*time.Millisecond, logger.Nop())
	sweeper.Run()
	defer sweeper.Stop()

	deadline := time.After(time.Second)
	for registry.For(1).Unlocked() {
		select {
		case <-deadline:
			t.Fatal("expected keyring to be swept within a second")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestKeyringSweeper_StopBeforeRun(t *testing.T) {
	sweeper := NewKeyringSweeper(crypto.NewKeyringRegistry(time.Minute), time.Minute, logger.Nop())

	// Should not panic when the worker was never started
	sweeper.Stop()
}

// mockInvoiceService implements service.InvoiceService for worker tests.
// Only MarkOverdueInvoices does anything useful.
type mockInvoiceService struct {
	calls atomic.Int64
}

func (m *mockInvoiceService) CreateInvoice(_ context.Context, invoice models.Invoice, _ []int64) (models.Invoice, error) {
	return invoice, nil
}

func (m *mockInvoiceService) GetInvoices(_ context.Context, _ int64, _ models.InvoiceFilter) ([]models.Invoice, error) {
	return nil, nil
}

func (m *mockInvoiceService) GetInvoice(_ context.Context, _, _ int64) (models.Invoice, error) {
	return models.Invoice{}, nil
}

func (m *mockInvoiceService) UpdateInvoiceStatus(_ context.Context, _, _ int64, status string) (models.Invoice, error) {
	return models.Invoice{Status: status}, nil
}

func (m *mockInvoiceService) MarkOverdueInvoices(_ context.Context) (int64, error) {
	m.calls.Add(1)
	return 0, nil
}

func TestOverdueInvoiceWorker_CallsService(t *testing.T) {
	invoices := &mockInvoiceService{}

	worker := NewOverdueInvoiceWorker(invoices, 5*time.Millisecond, logger.Nop())
	worker.Run()
	defer worker.Stop()

	deadline := time.After(time.Second)
	for invoices.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("expected the worker to call MarkOverdueInvoices within a second")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestOverdueInvoiceWorker_StopHalts(t *testing.T) {
	invoices := &mockInvoiceService{}

	worker := NewOverdueInvoiceWorker(invoices, 5*time.Millisecond, logger.Nop())
	worker.Run()
	worker.Stop()

	calls := invoices.calls.Load()
	time.Sleep(30 * time.Millisecond)

	if got := invoices.calls.Load(); got != calls {
		t.Errorf("expected no further calls after Stop, got %d more", got-calls)
	}
}
