package adapter

import "errors"

var (
	// ErrRatesDisabled is returned when no exchange-rate endpoint is
	// configured. Callers store foreign invoices without a base total.
	ErrRatesDisabled = errors.New("exchange rate lookups are disabled")

	// ErrRateUnavailable is returned when the rate endpoint responds but the
	// requested currency pair is missing from the payload.
	ErrRateUnavailable = errors.New("exchange rate unavailable for currency pair")
)
