package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"SESSION_SECRET": "0123456789abcdef",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "./data/todo.db", cfg.SQLitePath)
	assert.Equal(t, "items", cfg.ItemCollection)
	assert.Equal(t, "users", cfg.UserCollection)
	assert.Equal(t, 10*time.Second, cfg.DBTimeout)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 60, cfg.RateLimitMax)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"PORT":            "9000",
		"GO_ENV":          "production",
		"STORE_DRIVER":    "mongo",
		"MONGODB_URI":     "mongodb://localhost:27017",
		"DATABASE":        "todo_test",
		"SESSION_SECRET":  "0123456789abcdef0123",
		"SESSION_TTL":     "1h",
		"RATE_LIMIT_MAX":  "0",
		"DB_TIMEOUT":      "2s",
		"ITEM_COLLECTION": "todo_items",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, DriverMongo, cfg.StoreDriver)
	assert.Equal(t, "todo_test", cfg.Database)
	assert.Equal(t, "todo_items", cfg.ItemCollection)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, 2*time.Second, cfg.DBTimeout)
	assert.Equal(t, 0, cfg.RateLimitMax)
}

func TestFromEnvErrors(t *testing.T) {
	base := func() map[string]string {
		return map[string]string{"SESSION_SECRET": "0123456789abcdef"}
	}

	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"short secret", "SESSION_SECRET", "short"},
		{"bad port", "PORT", "http"},
		{"bad driver", "STORE_DRIVER", "postgres"},
		{"mongo without uri", "STORE_DRIVER", "mongo"},
		{"bad ttl", "SESSION_TTL", "forever"},
		{"negative ttl", "SESSION_TTL", "-1h"},
		{"bad limit", "RATE_LIMIT_MAX", "-3"},
		{"bad window", "RATE_LIMIT_WINDOW", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := base()
			env[tt.key] = tt.val
			_, err := FromEnv(envMap(env))
			assert.Error(t, err)
		})
	}
}
