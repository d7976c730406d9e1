package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort int

	Marketplace MarketplaceConfig
	Sessions    SessionsConfig
	Payouts     PayoutsConfig

	// DefaultSearchRadiusKM is used when a workshop lists available requests without a radius.
	DefaultSearchRadiusKM float64
}

type MarketplaceConfig struct {
	BaseURL string
	Timeout time.Duration

	// Mock swaps the REST client for the in-memory marketplace.
	Mock bool
	// CommissionRate only applies to the in-memory marketplace; the real backend computes its own.
	CommissionRate decimal.Decimal
}

type SessionsConfig struct {
	Table string
	TTL   time.Duration
}

type PayoutsConfig struct {
	// Schedule is a six-field cron spec (with seconds).
	Schedule string
	// ServiceToken is the admin bearer token used by the scheduled job. Empty disables the job.
	ServiceToken string
}

// Load reads the configuration from the environment. Malformed numbers fall back to defaults.
func Load() Config {
	return Config{
		HTTPPort: envInt("HTTP_PORT", 8080),
		Marketplace: MarketplaceConfig{
			BaseURL:        os.Getenv("MARKETPLACE_BASE_URL"),
			Timeout:        time.Duration(envInt("MARKETPLACE_TIMEOUT_SECONDS", 30)) * time.Second,
			Mock:           envBool("MARKETPLACE_MOCK"),
			CommissionRate: envDecimal("COMMISSION_RATE", decimal.NewFromFloat(0.10)),
		},
		Sessions: SessionsConfig{
			Table: env("SESSIONS_TABLE", "sessions"),
			TTL:   time.Duration(envInt("SESSION_TTL_HOURS", 12)) * time.Hour,
		},
		Payouts: PayoutsConfig{
			Schedule:     env("PAYOUT_SCHEDULE", "0 0 3 1 * *"),
			ServiceToken: os.Getenv("PAYOUT_SERVICE_TOKEN"),
		},
		DefaultSearchRadiusKM: envFloat("DEFAULT_SEARCH_RADIUS_KM", 25),
	}
}

func env(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v := env(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[config] invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := env(key, "")
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		log.Printf("[config] invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}

func envDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	v := env(key, "")
	if v == "" {
		return fallback
	}
	d, err := decimal.NewFromString(v)
	if err != nil || d.IsNegative() || d.GreaterThan(decimal.NewFromInt(1)) {
		log.Printf("[config] invalid %s=%q, using %s", key, v, fallback.String())
		return fallback
	}
	return d
}

func envBool(key string) bool {
	switch strings.ToLower(env(key, "")) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
