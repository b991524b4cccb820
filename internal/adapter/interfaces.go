package adapter

import "context"

// RateProvider resolves the exchange rate between two ISO 4217 currencies.
// The invoice service uses it to convert foreign-currency totals into the
// accounting currency.
type RateProvider interface {
	// GetRate returns how many units of "to" one unit of "from" buys.
	// Same-currency lookups return 1 without a network call.
	GetRate(ctx context.Context, from, to string) (float64, error)
}
