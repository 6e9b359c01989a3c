// Package app assembles the catalog stack and the navigator from configuration.
// Both the HTTP server and the terminal front end start from here.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"pokedex/internal/catalog"
	catalogmetrics "pokedex/internal/catalog/metrics"
	"pokedex/internal/platform/config"
	redisclient "pokedex/internal/platform/redis"
	"pokedex/internal/pokedex"
	pokedexmetrics "pokedex/internal/pokedex/metrics"
	"pokedex/pkg/platform/circuit"
)

// Catalog is the assembled catalog stack: HTTP client, circuit breaker and
// response cache.
type Catalog struct {
	*catalog.CachedClient
	redis *redisclient.Client
}

// NewCatalog builds the catalog stack. When reg is nil no metrics are
// registered. A configured Redis URL that cannot be reached is an error; an
// empty one selects the in-process cache.
func NewCatalog(ctx context.Context, cfg config.Config, logger *slog.Logger, reg prometheus.Registerer) (*Catalog, error) {
	var m *catalogmetrics.Metrics
	if reg != nil {
		m = catalogmetrics.NewWithRegisterer(reg)
	}

	breaker := circuit.New("catalog",
		circuit.WithFailureThreshold(cfg.Catalog.BreakerFailures),
		circuit.WithSuccessThreshold(cfg.Catalog.BreakerSuccesses),
		circuit.WithCooldown(cfg.Catalog.BreakerCooldown),
	)
	client := catalog.New(cfg.Catalog.BaseURL,
		catalog.WithHTTPClient(&http.Client{Timeout: cfg.Catalog.Timeout}),
		catalog.WithBreaker(breaker),
		catalog.WithMetrics(m),
		catalog.WithLogger(logger),
	)

	rc, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	var cache catalog.Cache = catalog.NewMemoryCache(catalog.WithMaxEntries(cfg.Catalog.CacheMaxEntries))
	if rc != nil {
		cache = catalog.NewRedisCache(rc.Client)
		logger.InfoContext(ctx, "catalog cache backed by redis")
	}

	return &Catalog{
		CachedClient: catalog.NewCachedClient(client, cache, cfg.Catalog.CacheTTL,
			catalog.WithCacheMetrics(m),
			catalog.WithCacheLogger(logger),
		),
		redis: rc,
	}, nil
}

// Health reports whether the shared cache is reachable. Without Redis there
// is nothing to check.
func (c *Catalog) Health(ctx context.Context) error {
	if c.redis == nil {
		return nil
	}
	return c.redis.Health(ctx)
}

func (c *Catalog) Close() error {
	if c.redis == nil {
		return nil
	}
	return c.redis.Close()
}

// NewNavigator builds a Navigator over cat configured from cfg.
func NewNavigator(cat pokedex.Catalog, cfg config.Config, logger *slog.Logger, reg prometheus.Registerer) (*pokedex.Navigator, error) {
	opts := []pokedex.Option{
		pokedex.WithDefaultEntry(cfg.Catalog.DefaultEntry),
		pokedex.WithPlaceholderImage(cfg.Catalog.PlaceholderImageURL),
		pokedex.WithLogger(logger),
	}
	if reg != nil {
		opts = append(opts, pokedex.WithMetrics(pokedexmetrics.NewWithRegisterer(reg)))
	}
	return pokedex.NewNavigator(cat, opts...)
}
