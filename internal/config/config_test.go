package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_ENV", "DB_DSN", "DB_HOST", "DB_PORT", "DB_USER", "POSTGRES_USER", "DB_PASSWORD", "POSTGRES_PASSWORD", "DB_NAME", "POSTGRES_DB", "DB_SSLMODE", "LOG_LEVEL", "LOG_FORMAT", "CATALOG_LIMIT", "DEFAULT_MAX_OUTFITS", "SEED_CATALOG"} {
		t.Setenv(k, "")
	}
	cfg, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 200, cfg.CatalogLimit)
	assert.Equal(t, 6, cfg.DefaultMaxOutfits)
	assert.False(t, cfg.SeedCatalog)
	assert.Equal(t, "host=localhost user=postgres password=postgres dbname=stylematch port=5432 sslmode=disable", cfg.DSN)
}

func TestFromViper_Env(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("DB_DSN", "postgres://u:p@db/app")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CATALOG_LIMIT", "50")
	t.Setenv("DEFAULT_MAX_OUTFITS", "4")
	t.Setenv("SEED_CATALOG", "true")

	cfg, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "postgres://u:p@db/app", cfg.DSN)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 50, cfg.CatalogLimit)
	assert.Equal(t, 4, cfg.DefaultMaxOutfits)
	assert.True(t, cfg.SeedCatalog)
}

func TestFromViper_PostgresFallbacks(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("POSTGRES_USER", "shop")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "closet")

	cfg, err := FromViper(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "host=localhost user=shop password=secret dbname=closet port=5432 sslmode=disable", cfg.DSN)
}
