// Package config resuelve la configuración desde .env y variables de entorno.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port              string
	AppEnv            string
	DSN               string
	LogLevel          string
	LogFormat         string
	CatalogLimit      int
	DefaultMaxOutfits int
	SeedCatalog       bool
}

func (c Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "", "dev", "development":
		return true
	}
	return false
}

// Load lee .env si existe y luego el entorno.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromViper(viper.New())
}

// FromViper completa defaults, lee el entorno y arma la configuración.
func FromViper(v *viper.Viper) (Config, error) {
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("CATALOG_LIMIT", 200)
	v.SetDefault("DEFAULT_MAX_OUTFITS", 6)
	v.SetDefault("SEED_CATALOG", false)

	cfg := Config{
		Port:              strings.TrimPrefix(v.GetString("PORT"), ":"),
		AppEnv:            strings.ToLower(v.GetString("APP_ENV")),
		DSN:               strings.TrimSpace(v.GetString("DB_DSN")),
		LogLevel:          strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:         strings.ToLower(v.GetString("LOG_FORMAT")),
		CatalogLimit:      v.GetInt("CATALOG_LIMIT"),
		DefaultMaxOutfits: v.GetInt("DEFAULT_MAX_OUTFITS"),
		SeedCatalog:       v.GetBool("SEED_CATALOG"),
	}
	if cfg.DSN == "" {
		cfg.DSN = buildDSN(v)
	}
	if cfg.CatalogLimit <= 0 {
		cfg.CatalogLimit = 200
	}
	if cfg.DefaultMaxOutfits <= 0 {
		cfg.DefaultMaxOutfits = 6
	}
	return cfg, nil
}

func buildDSN(v *viper.Viper) string {
	user := firstNonEmpty(v.GetString("DB_USER"), v.GetString("POSTGRES_USER"), "postgres")
	pass := firstNonEmpty(v.GetString("DB_PASSWORD"), v.GetString("POSTGRES_PASSWORD"), "postgres")
	name := firstNonEmpty(v.GetString("DB_NAME"), v.GetString("POSTGRES_DB"), "stylematch")
	return "host=" + v.GetString("DB_HOST") + " user=" + user + " password=" + pass + " dbname=" + name + " port=" + v.GetString("DB_PORT") + " sslmode=" + v.GetString("DB_SSLMODE")
}

func firstNonEmpty(vals ...string) string {
	for _, s := range vals {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}
