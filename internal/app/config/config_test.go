package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_API_KEY", "anon-key")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadConfig_EnvDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "100", cfg.Pricing.FreeShippingThreshold)
	assert.Equal(t, "10", cfg.Pricing.FlatShippingCost)
	assert.Equal(t, "S/", cfg.Pricing.CurrencySymbol)
	assert.Equal(t, time.Duration(0), cfg.Session.MaxAge)
	assert.Equal(t, "8080", cfg.HTTPServer.Port)
	assert.Equal(t, 4, cfg.Checkout.LookupConcurrency)
	assert.False(t, cfg.SMTP.Enabled())
	assert.False(t, cfg.S3.Enabled())
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	for _, key := range []string{"SUPABASE_URL", "SUPABASE_API_KEY", "JWT_SECRET"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFileFallsBackToEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STORE_DRIVER", "redis")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Store.Driver)
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := []byte(`
env: prod
store:
  driver: sqlite
  sqlite:
    path: /tmp/cart.db
pricing:
  free_shipping_threshold: "150"
  flat_shipping_cost: "12.50"
session:
  max_age: 2h
`)
	require.NoError(t, os.WriteFile(path, yaml, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "/tmp/cart.db", cfg.Store.SQLite.Path)
	assert.Equal(t, "150", cfg.Pricing.FreeShippingThreshold)
	assert.Equal(t, "12.50", cfg.Pricing.FlatShippingCost)
	assert.Equal(t, 2*time.Hour, cfg.Session.MaxAge)
}
