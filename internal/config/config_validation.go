// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niklas Andervang

package config

import "time"

// Defaults applied by validate for fields that were not set by any source.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultTokenIssuer    = "go-consult-base"
	defaultTokenDuration  = 12 * time.Hour
	defaultBaseCurrency   = "SEK"
	defaultRequestTimeout = 30 * time.Second
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, filling in defaults
// for optional fields.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.PasswordHashKey == "" || cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.BaseCurrency == "" {
		cfg.App.BaseCurrency = defaultBaseCurrency
	}

	return nil
}
