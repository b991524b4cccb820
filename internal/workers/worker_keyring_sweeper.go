package workers

import (
	"context"
	"sync"
	"time"

	"github.com/nandervang/go-consult-base/internal/crypto"
	"github.com/nandervang/go-consult-base/internal/logger"
)

const defaultSweepInterval = time.Minute

// keyringSweeper periodically drops expired vault keyrings so that a user's
// cached vault password never outlives its session, even if no request ever
// touches the keyring again.
type keyringSweeper struct {
	keyrings *crypto.KeyringRegistry
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewKeyringSweeper creates a keyringSweeper. If interval is zero or
// negative it defaults to one minute. The worker is idle until Run is called.
func NewKeyringSweeper(keyrings *crypto.KeyringRegistry, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &keyringSweeper{
		keyrings: keyrings,
		interval: interval,
		logger:   log,
	}
}

// Run launches the background goroutine. Calling Run on an already running
// sweeper restarts it.
func (s *keyringSweeper) Run() {
	s.Stop()

	s.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	s.logger.Info().Dur("interval", s.interval).Msg("keyring sweeper started")

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if dropped := s.keyrings.Sweep(); dropped > 0 {
					s.logger.Debug().Int("dropped", dropped).Msg("expired vault keyrings swept")
				}
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the worker is not running.
func (s *keyringSweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	s.wg.Wait()
}
