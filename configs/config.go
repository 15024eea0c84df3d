package configs

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration, read from the environment once at
// startup and treated as immutable afterwards.
type Config struct {
	MongoDBURI   string
	DatabaseName string

	Port string

	// Timezone the catalog dates are evaluated in.
	Timezone string

	// TokenAudience is the audience expected in verified ID tokens.
	TokenAudience string

	// FreeFavoriteLimit is the favorite quota for free-tier users. The
	// number is a product knob, not a rule; keep it configurable.
	FreeFavoriteLimit int

	// ToggleRatePerMin limits toggle requests per user per minute.
	ToggleRatePerMin int

	ShutdownTimeout time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{}

	var missing []string

	cfg.MongoDBURI = os.Getenv("MONGODB_URI")
	if cfg.MongoDBURI == "" {
		missing = append(missing, "MONGODB_URI")
	}

	cfg.DatabaseName = os.Getenv("MONGODB_DATABASE_NAME")
	if cfg.DatabaseName == "" {
		missing = append(missing, "MONGODB_DATABASE_NAME")
	}

	cfg.TokenAudience = os.Getenv("TOKEN_AUDIENCE")
	if cfg.TokenAudience == "" {
		missing = append(missing, "TOKEN_AUDIENCE")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	cfg.Port = getEnvString("PORT", "8080")
	cfg.Timezone = getEnvString("CATALOG_TIMEZONE", "Asia/Tokyo")
	cfg.FreeFavoriteLimit = getEnvInt("FREE_FAVORITE_LIMIT", 1)
	cfg.ToggleRatePerMin = getEnvInt("TOGGLE_RATE_PER_MIN", 30)
	cfg.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)

	return cfg, nil
}

// Location resolves the configured timezone, falling back to UTC on a bad
// value.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
