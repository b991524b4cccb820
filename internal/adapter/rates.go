package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/nandervang/go-consult-base/internal/config"
	"github.com/nandervang/go-consult-base/internal/logger"
)

// rateCacheTTL bounds how long a fetched rate is reused before the endpoint
// is asked again. Daily-fixing providers make anything shorter pointless.
const rateCacheTTL = time.Hour

// exchangeRateAdapter is a resty-backed [RateProvider] speaking the common
// "latest rates" REST shape (frankfurter.app and compatible services):
//
//	GET {base}/latest?base=EUR&symbols=SEK
//	→ {"base":"EUR","rates":{"SEK":11.31}}
//
// Responses are cached per currency pair for [rateCacheTTL].
type exchangeRateAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	cache map[string]cachedRate
}

type cachedRate struct {
	rate      float64
	fetchedAt time.Time
}

type latestRatesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// NewExchangeRateAdapter constructs a [RateProvider] from the rates
// configuration. An empty BaseURL yields a disabled provider whose lookups
// fail with [ErrRatesDisabled]; the invoice service treats that as
// "no conversion available" rather than an error.
func NewExchangeRateAdapter(cfg config.Rates, log *logger.Logger) RateProvider {
	if cfg.BaseURL == "" {
		log.Info().Str("func", "NewExchangeRateAdapter").Msg("no rates endpoint configured, currency conversion disabled")
		return &disabledRateProvider{}
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	return &exchangeRateAdapter{
		client: cli,
		logger: log,
		cache:  make(map[string]cachedRate),
	}
}

// GetRate implements [RateProvider]. It serves same-currency lookups and
// fresh cache hits locally, otherwise fetches from the configured endpoint.
func (a *exchangeRateAdapter) GetRate(ctx context.Context, from, to string) (float64, error) {
	log := logger.FromContext(ctx)

	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == to {
		return 1, nil
	}

	pair := from + "/" + to
	if rate, ok := a.cachedRate(pair); ok {
		return rate, nil
	}

	var body latestRatesResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParam("base", from).
		SetQueryParam("symbols", to).
		SetResult(&body).
		Get("/latest")
	if err != nil {
		log.Err(err).
			Str("func", "*exchangeRateAdapter.GetRate").
			Str("pair", pair).
			Msg("rate request failed")
		return 0, fmt.Errorf("rate request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		log.Error().
			Str("func", "*exchangeRateAdapter.GetRate").
			Str("pair", pair).
			Int("status", resp.StatusCode()).
			Msg("rate endpoint returned non-OK status")
		return 0, fmt.Errorf("%w: http %d", ErrRateUnavailable, resp.StatusCode())
	}

	rate, ok := body.Rates[to]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrRateUnavailable, pair)
	}

	a.storeRate(pair, rate)
	return rate, nil
}

func (a *exchangeRateAdapter) cachedRate(pair string) (float64, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	cached, ok := a.cache[pair]
	if !ok || time.Since(cached.fetchedAt) > rateCacheTTL {
		return 0, false
	}
	return cached.rate, true
}

func (a *exchangeRateAdapter) storeRate(pair string, rate float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cache[pair] = cachedRate{rate: rate, fetchedAt: time.Now()}
}

// disabledRateProvider is the [RateProvider] used when no endpoint is
// configured.
type disabledRateProvider struct{}

func (d *disabledRateProvider) GetRate(_ context.Context, from, to string) (float64, error) {
	if strings.EqualFold(strings.TrimSpace(from), strings.TrimSpace(to)) {
		return 1, nil
	}
	return 0, ErrRatesDisabled
}
