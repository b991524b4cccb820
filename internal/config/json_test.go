package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"password_hash_key": "hash_secret",
			"token_sign_key": "jwt_secret",
			"token_issuer": "json_issuer",
			"token_duration": "2h",
			"vault_session_ttl": "45m",
			"base_currency": "EUR"
		},
		"storage": {"db": {"dsn": "postgres://json/db"}},
		"server": {"http_address": "0.0.0.0:9000", "request_timeout": "15s"},
		"rates": {"base_url": "https://rates.example", "request_timeout": "3s"},
		"workers": {"sweep_interval": "90s", "overdue_interval": "6h"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "hash_secret", cfg.App.PasswordHashKey)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "json_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 45*time.Minute, cfg.App.VaultSessionTTL)
	assert.Equal(t, "EUR", cfg.App.BaseCurrency)
	assert.Equal(t, "postgres://json/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://rates.example", cfg.Rates.BaseURL)
	assert.Equal(t, 90*time.Second, cfg.Workers.SweepInterval)
	assert.Equal(t, 6*time.Hour, cfg.Workers.OverdueInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	require.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, "{not json")
	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestStructuredConfigValidate(t *testing.T) {
	t.Run("missing DSN", func(t *testing.T) {
		cfg := &StructuredConfig{}
		cfg.App.PasswordHashKey = "x"
		cfg.App.TokenSignKey = "y"
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("missing keys", func(t *testing.T) {
		cfg := &StructuredConfig{}
		cfg.Storage.DB.DSN = "postgres://db"
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
	})

	t.Run("defaults applied", func(t *testing.T) {
		cfg := &StructuredConfig{}
		cfg.Storage.DB.DSN = "postgres://db"
		cfg.App.PasswordHashKey = "x"
		cfg.App.TokenSignKey = "y"

		require.NoError(t, cfg.validate())
		assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
		assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
		assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
		assert.Equal(t, defaultBaseCurrency, cfg.App.BaseCurrency)
	})
}
