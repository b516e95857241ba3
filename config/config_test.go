package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	converter "go-currency-converter"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "https://api.exchangerate-api.com/v4/latest/", cfg.Rates.URL)
	assert.Equal(t, 5*time.Second, cfg.Rates.Timeout)
	assert.Equal(t, []converter.Currency{"BRL", "USD", "EUR", "JPY", "GBP"}, cfg.Currencies())
	assert.Equal(t, "BRL", cfg.Form.Base)
	assert.Equal(t, "USD", cfg.Form.Target)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "logfmt", cfg.Log.Format)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("RATES_URL", "http://localhost:9999/latest/")
	t.Setenv("RATES_TIMEOUT", "2s")
	t.Setenv("CURRENCIES", "GBP,EUR")
	t.Setenv("BASE_CURRENCY", "GBP")
	t.Setenv("TARGET_CURRENCY", "EUR")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/latest/", cfg.Rates.URL)
	assert.Equal(t, 2*time.Second, cfg.Rates.Timeout)
	assert.Equal(t, []converter.Currency{"GBP", "EUR"}, cfg.Currencies())
	assert.Equal(t, "GBP", cfg.Form.Base)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := `
rates:
  url: http://rates.local/latest/
  timeout: 3s
form:
  currencies: [USD, JPY]
  base: USD
  target: JPY
http:
  addr: ":9090"
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "http://rates.local/latest/", cfg.Rates.URL)
	assert.Equal(t, 3*time.Second, cfg.Rates.Timeout)
	assert.Equal(t, []converter.Currency{"USD", "JPY"}, cfg.Currencies())
	assert.Equal(t, "JPY", cfg.Form.Target)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad base", "BASE_CURRENCY", "EURO"},
		{"bad currency list", "CURRENCIES", "USD,1"},
		{"bad log format", "LOG_FORMAT", "xml"},
		{"zero timeout", "RATES_TIMEOUT", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_BaseOutsideCurrencies(t *testing.T) {
	t.Setenv("CURRENCIES", "usd,eur")
	t.Setenv("BASE_CURRENCY", "gbp")
	t.Setenv("TARGET_CURRENCY", "eur")

	_, err := Load("")
	assert.Error(t, err)

	t.Setenv("BASE_CURRENCY", "usd")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, converter.Currency("USD"), cfg.Base())
	assert.Equal(t, converter.Currency("EUR"), cfg.Target())
}
