package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/internal/platform/config"
	"pokedex/internal/pokedex"
)

const entityJSON = `{
	"id": 25,
	"name": "pikachu",
	"types": [{"slot": 1, "type": {"name": "electric"}}],
	"species": {"name": "pikachu", "url": "%[1]s/pokemon-species/25/"},
	"abilities": [{"slot": 1, "ability": {"name": "static"}}],
	"stats": [{"base_stat": 35, "stat": {"name": "hp"}}],
	"sprites": {"other": {"official-artwork": {"front_default": null}}},
	"weight": 60,
	"height": 4
}`

func testConfig(baseURL string) config.Config {
	return config.Config{
		Catalog: config.CatalogConfig{
			BaseURL:          baseURL,
			DefaultEntry:     "pikachu",
			Timeout:          time.Second,
			CacheTTL:         time.Minute,
			BreakerFailures:  2,
			BreakerSuccesses: 1,
			BreakerCooldown:  time.Minute,
		},
	}
}

func TestNewCatalog_CachesEntities(t *testing.T) {
	var hits atomic.Int32
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pokemon/pikachu", "/pokemon/25":
			hits.Add(1)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(fmt.Sprintf(entityJSON, srv.URL)))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)
	cfg := testConfig(srv.URL)

	cat, err := NewCatalog(ctx, cfg, logger, prometheus.NewRegistry())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cat.Close() })
	assert.NoError(t, cat.Health(ctx))

	nav, err := NewNavigator(cat, cfg, logger, prometheus.NewRegistry())
	require.NoError(t, err)

	first := nav.Start(ctx)
	assert.Equal(t, "Pikachu (ID: 25)", first.Label)
	assert.Equal(t, pokedex.DescriptionFallback, first.Description)

	second := nav.Search(ctx, "25")
	assert.Equal(t, first.Label, second.Label)
	assert.Equal(t, int32(1), hits.Load(), "second lookup served from cache")
	assert.False(t, cat.Degraded())
}

func TestNewCatalog_BreakerOpensOnOutage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	cfg := testConfig(srv.URL)
	cat, err := NewCatalog(ctx, cfg, slog.New(slog.DiscardHandler), nil)
	require.NoError(t, err)

	nav, err := NewNavigator(cat, cfg, nil, nil)
	require.NoError(t, err)

	nav.Forward(ctx)
	nav.Forward(ctx)

	assert.True(t, cat.Degraded())
	assert.Equal(t, pokedex.StatusNotFound, nav.Forward(ctx).Status)
}

func TestNewCatalog_UnreachableRedis(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Redis.URL = "redis://127.0.0.1:1/0"
	cfg.Redis.DialTimeout = 100 * time.Millisecond

	_, err := NewCatalog(context.Background(), cfg, slog.New(slog.DiscardHandler), nil)
	assert.Error(t, err)
}
