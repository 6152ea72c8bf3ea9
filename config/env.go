package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"

	minSecretLength = 16
)

// Config holds every setting the server needs. It is loaded once at startup
// and passed down explicitly.
type Config struct {
	Port     string
	Env      string
	LogLevel string

	StoreDriver    string
	SQLitePath     string
	MongoURI       string
	Database       string
	ItemCollection string
	UserCollection string
	DBTimeout      time.Duration

	SessionSecret string
	SessionTTL    time.Duration

	RateLimitMax    int
	RateLimitWindow time.Duration
}

// IsProduction reports whether GO_ENV is set to production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// LoadENV will load the .env file if the GO_ENV environment variable is not set
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Load reads the .env file (in development) and the process environment into a Config.
func Load() (*Config, error) {
	if err := LoadENV(); err != nil {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Port:           get("PORT", "8080"),
		Env:            get("GO_ENV", "development"),
		LogLevel:       get("LOG_LEVEL", "info"),
		StoreDriver:    get("STORE_DRIVER", DriverSQLite),
		SQLitePath:     get("SQLITE_PATH", "./data/todo.db"),
		MongoURI:       getenv("MONGODB_URI"),
		Database:       get("DATABASE", "todo"),
		ItemCollection: get("ITEM_COLLECTION", "items"),
		UserCollection: get("USER_COLLECTION", "users"),
		SessionSecret:  getenv("SESSION_SECRET"),
	}

	var err error
	if cfg.DBTimeout, err = parseDuration("DB_TIMEOUT", get("DB_TIMEOUT", "10s")); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = parseDuration("SESSION_TTL", get("SESSION_TTL", "24h")); err != nil {
		return nil, err
	}
	if cfg.RateLimitWindow, err = parseDuration("RATE_LIMIT_WINDOW", get("RATE_LIMIT_WINDOW", "30s")); err != nil {
		return nil, err
	}
	if cfg.RateLimitMax, err = strconv.Atoi(get("RATE_LIMIT_MAX", "60")); err != nil || cfg.RateLimitMax < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_MAX must be a non-negative integer, got %q", getenv("RATE_LIMIT_MAX"))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	switch c.StoreDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("you must set 'SQLITE_PATH' when STORE_DRIVER is sqlite")
		}
	case DriverMongo:
		if c.MongoURI == "" {
			return errors.New("you must set your 'MONGODB_URI' environmental variable. See\n\t https://www.mongodb.com/docs/drivers/go/current/usage-examples/#environment-variable")
		}
		if c.Database == "" {
			return errors.New("you must set your 'DATABASE' environmental variable")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want %q or %q)", c.StoreDriver, DriverSQLite, DriverMongo)
	}
	if len(c.SessionSecret) < minSecretLength {
		return fmt.Errorf("you must set 'SESSION_SECRET' to at least %d bytes", minSecretLength)
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func parseDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 30s, got %q: %w", key, value, err)
	}
	return d, nil
}
