package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"pokedex/internal/catalog/metrics"
	"pokedex/pkg/domain"
	"pokedex/pkg/platform/sentinel"
)

// Fetcher is the set of catalog reads the pokedex needs.
type Fetcher interface {
	FetchEntity(ctx context.Context, id domain.Identifier) (*Entity, error)
	FetchSpecies(ctx context.Context, speciesURL string) (*Species, error)
	FetchImage(ctx context.Context, imageURL string) ([]byte, error)
}

// CachedClient serves entity and species reads from a Cache and fills it from
// the upstream Fetcher. Only successful payloads are stored, so a missing
// entry is asked for again on every lookup. Images pass straight through.
type CachedClient struct {
	upstream Fetcher
	cache    Cache
	ttl      time.Duration
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// CachedOption configures a CachedClient.
type CachedOption func(*CachedClient)

func WithCacheMetrics(m *metrics.Metrics) CachedOption {
	return func(c *CachedClient) {
		c.metrics = m
	}
}

func WithCacheLogger(logger *slog.Logger) CachedOption {
	return func(c *CachedClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCachedClient decorates upstream with cache. A non-positive ttl disables
// storing.
func NewCachedClient(upstream Fetcher, cache Cache, ttl time.Duration, opts ...CachedOption) *CachedClient {
	c := &CachedClient{
		upstream: upstream,
		cache:    cache,
		ttl:      ttl,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *CachedClient) FetchEntity(ctx context.Context, id domain.Identifier) (*Entity, error) {
	key := entityKey(id.String())
	var entity Entity
	if c.lookup(ctx, resourceEntity, key, &entity) {
		return &entity, nil
	}

	fetched, err := c.upstream.FetchEntity(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, fetched, key, entityKey(strconv.Itoa(fetched.ID)), entityKey(fetched.Name))
	return fetched, nil
}

func (c *CachedClient) FetchSpecies(ctx context.Context, speciesURL string) (*Species, error) {
	key := "species:" + speciesURL
	var species Species
	if c.lookup(ctx, resourceSpecies, key, &species) {
		return &species, nil
	}

	fetched, err := c.upstream.FetchSpecies(ctx, speciesURL)
	if err != nil {
		return nil, err
	}
	c.store(ctx, fetched, key)
	return fetched, nil
}

func (c *CachedClient) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	return c.upstream.FetchImage(ctx, imageURL)
}

// Degraded forwards the upstream breaker state when the upstream has one.
func (c *CachedClient) Degraded() bool {
	if d, ok := c.upstream.(interface{ Degraded() bool }); ok {
		return d.Degraded()
	}
	return false
}

func (c *CachedClient) lookup(ctx context.Context, resource, key string, target any) bool {
	raw, err := c.cache.Get(ctx, key)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		c.metrics.IncrementCacheLookup(resource, "miss")
		return false
	case err != nil:
		c.metrics.IncrementCacheLookup(resource, "error")
		c.logger.WarnContext(ctx, "catalog cache read failed", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal(raw, target); err != nil {
		c.metrics.IncrementCacheLookup(resource, "error")
		c.logger.WarnContext(ctx, "catalog cache entry corrupt", "key", key, "error", err)
		return false
	}
	c.metrics.IncrementCacheLookup(resource, "hit")
	return true
}

func (c *CachedClient) store(ctx context.Context, value any, keys ...string) {
	if c.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "catalog cache encode failed", "error", err)
		return
	}
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if err := c.cache.Set(ctx, key, raw, c.ttl); err != nil {
			c.logger.WarnContext(ctx, "catalog cache write failed", "key", key, "error", err)
		}
	}
}

func entityKey(segment string) string {
	return "pokemon:" + segment
}
