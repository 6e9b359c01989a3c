package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults target the public catalog", func(t *testing.T) {
		cfg, err := FromEnv()
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "https://pokeapi.co/api/v2", cfg.Catalog.BaseURL)
		assert.Equal(t, "bulbasaur", cfg.Catalog.DefaultEntry)
		assert.Equal(t, "https://i.imgflip.com/73qk92.jpg", cfg.Catalog.PlaceholderImageURL)
		assert.Equal(t, 5*time.Minute, cfg.Catalog.CacheTTL)
		assert.Equal(t, 1024, cfg.Catalog.CacheMaxEntries)
		assert.Empty(t, cfg.Redis.URL, "redis persistence is opt-in")
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("POKEDEX_ADDR", ":9090")
		t.Setenv("POKEDEX_CATALOG_BASE_URL", "http://catalog.test/api/v2")
		t.Setenv("POKEDEX_CATALOG_TIMEOUT", "2s")
		t.Setenv("POKEDEX_CATALOG_CACHE_MAX_ENTRIES", "64")
		t.Setenv("POKEDEX_REDIS_URL", "redis://localhost:6379/0")

		cfg, err := FromEnv()
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, "http://catalog.test/api/v2", cfg.Catalog.BaseURL)
		assert.Equal(t, 2*time.Second, cfg.Catalog.Timeout)
		assert.Equal(t, 64, cfg.Catalog.CacheMaxEntries)
		assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	})

	t.Run("malformed duration is rejected", func(t *testing.T) {
		t.Setenv("POKEDEX_CATALOG_CACHE_TTL", "soon")

		_, err := FromEnv()
		assert.Error(t, err)
	})
}
