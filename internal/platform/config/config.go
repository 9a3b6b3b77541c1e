package config

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	AppName      string
	LogLevel     slog.Level

	StorageBackend    string
	SQLiteDBPath      string
	StorageQuotaBytes int64 // 0 disables the quota

	RateLimit          string // limiter format, e.g. "120-M"
	CORSAllowedOrigins []string

	// NgiritThreshold is the expense amount above which ngirit mode nudges.
	NgiritThreshold decimal.Decimal
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("APP_NAME", "cekelduit")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORAGE_BACKEND", StorageSQLite)
	viper.SetDefault("SQLITE_DB_PATH", "./data/cekelduit.db")
	viper.SetDefault("STORAGE_QUOTA_BYTES", 5*1024*1024)
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("NGIRIT_THRESHOLD", "50000")

	// Values from the environment (including .env) override the defaults.
	viper.AutomaticEnv()

	cfg := &Config{
		Port:              viper.GetString("PORT"),
		IsProduction:      viper.GetBool("IS_PRODUCTION"),
		AppName:           viper.GetString("APP_NAME"),
		StorageBackend:    strings.ToLower(viper.GetString("STORAGE_BACKEND")),
		SQLiteDBPath:      viper.GetString("SQLITE_DB_PATH"),
		StorageQuotaBytes: viper.GetInt64("STORAGE_QUOTA_BYTES"),
		RateLimit:         viper.GetString("RATE_LIMIT"),
	}

	var errs []error

	if err := cfg.LogLevel.UnmarshalText([]byte(viper.GetString("LOG_LEVEL"))); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	threshold, err := decimal.NewFromString(viper.GetString("NGIRIT_THRESHOLD"))
	if err != nil {
		errs = append(errs, fmt.Errorf("NGIRIT_THRESHOLD: %w", err))
	}
	cfg.NgiritThreshold = threshold

	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if !cfg.IsProduction && len(cfg.CORSAllowedOrigins) == 0 {
		log.Println("Warning: CORS_ALLOWED_ORIGINS is empty. Browser clients will be rejected.")
	}

	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}
	if c.AppName == "" {
		errs = append(errs, errors.New("APP_NAME must not be empty"))
	}
	switch c.StorageBackend {
	case StorageSQLite:
		if c.SQLiteDBPath == "" {
			errs = append(errs, errors.New("SQLITE_DB_PATH must be set for the sqlite backend"))
		}
	case StorageMemory:
	default:
		errs = append(errs, fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StorageSQLite, StorageMemory, c.StorageBackend))
	}
	if c.StorageQuotaBytes < 0 {
		errs = append(errs, errors.New("STORAGE_QUOTA_BYTES must not be negative"))
	}
	if _, err := limiter.NewRateFromFormatted(c.RateLimit); err != nil {
		errs = append(errs, fmt.Errorf("RATE_LIMIT: %w", err))
	}
	if c.NgiritThreshold.IsNegative() {
		errs = append(errs, errors.New("NGIRIT_THRESHOLD must not be negative"))
	}

	return errors.Join(errs...)
}
