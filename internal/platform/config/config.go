package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration. Every field has a default so a bare
// environment starts a working pokedex against the public catalog.
type Config struct {
	Addr      string `env:"POKEDEX_ADDR" envDefault:":8080"`
	LogLevel  string `env:"POKEDEX_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"POKEDEX_LOG_FORMAT" envDefault:"text"`

	Catalog CatalogConfig `envPrefix:"POKEDEX_CATALOG_"`
	Redis   RedisConfig   `envPrefix:"POKEDEX_REDIS_"`
}

// CatalogConfig points the client at the remote catalog and tunes the
// resilience wrappers around it.
type CatalogConfig struct {
	BaseURL             string        `env:"BASE_URL" envDefault:"https://pokeapi.co/api/v2"`
	DefaultEntry        string        `env:"DEFAULT_ENTRY" envDefault:"bulbasaur"`
	PlaceholderImageURL string        `env:"PLACEHOLDER_IMAGE_URL" envDefault:"https://i.imgflip.com/73qk92.jpg"`
	Timeout             time.Duration `env:"TIMEOUT" envDefault:"10s"`
	CacheTTL            time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	CacheMaxEntries     int           `env:"CACHE_MAX_ENTRIES" envDefault:"1024"`
	BreakerFailures     int           `env:"BREAKER_FAILURES" envDefault:"5"`
	BreakerSuccesses    int           `env:"BREAKER_SUCCESSES" envDefault:"1"`
	BreakerCooldown     time.Duration `env:"BREAKER_COOLDOWN" envDefault:"30s"`
}

// RedisConfig enables the shared response cache when URL is set. Leave it
// empty for the bounded in-process cache.
//
// Redis entries outlive a pokedex restart until CACHE_TTL runs out, so a
// restarted instance may serve catalog payloads fetched before it started.
// Flush the database or shorten CACHE_TTL when that staleness matters.
// The in-process cache starts empty on every boot.
type RedisConfig struct {
	URL          string        `env:"URL"`
	PoolSize     int           `env:"POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"MIN_IDLE_CONNS" envDefault:"1"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"3s"`
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
