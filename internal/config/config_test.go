package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "a-very-secret-key-for-testing-!")
		t.Setenv("API_BASE_URL", "")
		t.Setenv("CACHE_BACKEND", "")
		t.Setenv("APP_ENV", "")

		cfg, err := FromEnv()
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.GetAddr())
		assert.Equal(t, "development", cfg.GetAppEnv())
		assert.Equal(t, DefaultAPIBaseURL, cfg.GetAPIBaseURL())
		assert.Equal(t, 10*time.Second, cfg.GetAPITimeout())
		assert.Equal(t, "memory", cfg.GetCacheBackend())
		assert.False(t, cfg.IsProduction())
	})

	t.Run("trims trailing slash from api url", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "a-very-secret-key-for-testing-!")
		t.Setenv("API_BASE_URL", "http://api.local/bcard2/")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "http://api.local/bcard2", cfg.GetAPIBaseURL())
	})

	t.Run("rejects short session secret", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "short")

		_, err := FromEnv()
		assert.ErrorContains(t, err, "SESSION_SECRET")
	})

	t.Run("redis backend requires url", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "a-very-secret-key-for-testing-!")
		t.Setenv("CACHE_BACKEND", "redis")
		t.Setenv("REDIS_URL", "")

		_, err := FromEnv()
		assert.ErrorContains(t, err, "REDIS_URL")
	})

	t.Run("rejects malformed durations", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "a-very-secret-key-for-testing-!")
		t.Setenv("CACHE_TTL", "soon")

		_, err := FromEnv()
		assert.ErrorContains(t, err, "CACHE_TTL")
	})
}
