// Package catalog talks to the remote creature catalog: the /pokemon entity
// resource, the species resource it links to, and artwork images.
//
// Every fetch is a single synchronous attempt. Failures come back as
// *FetchError so callers can log and count them; the pokedex core treats any
// error as "absent".
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pokedex/internal/catalog/metrics"
	"pokedex/pkg/domain"
	"pokedex/pkg/platform/circuit"
)

const (
	resourceEntity  = "entity"
	resourceSpecies = "species"
	resourceImage   = "image"

	maxJSONBytes  = 4 << 20
	maxImageBytes = 16 << 20
)

// Client is the HTTP implementation of the catalog fetches.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *circuit.Breaker
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithBreaker guards entity and species fetches with a circuit breaker.
// Image fetches go to a different host and are not guarded.
func WithBreaker(b *circuit.Breaker) Option {
	return func(c *Client) {
		c.breaker = b
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Client rooted at baseURL, e.g. "https://pokeapi.co/api/v2".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  slog.New(slog.DiscardHandler),
		tracer:  otel.Tracer("pokedex/internal/catalog"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// FetchEntity performs GET {base}/pokemon/{id-or-name}. The empty name never
// reaches the network: the catalog would answer it with its listing page.
func (c *Client) FetchEntity(ctx context.Context, id domain.Identifier) (*Entity, error) {
	segment := id.String()
	if segment == "" {
		return nil, newFetchError(ErrorNotFound, resourceEntity, 0, errors.New("empty identifier"))
	}
	endpoint := c.baseURL + "/pokemon/" + url.PathEscape(segment)

	var entity Entity
	if err := c.getJSON(ctx, resourceEntity, endpoint, &entity); err != nil {
		return nil, err
	}
	if entity.ID <= 0 || entity.Name == "" {
		return nil, newFetchError(ErrorBadData, resourceEntity, http.StatusOK, errors.New("entity without id or name"))
	}
	return &entity, nil
}

// FetchSpecies follows the species URL embedded in an entity.
func (c *Client) FetchSpecies(ctx context.Context, speciesURL string) (*Species, error) {
	if speciesURL == "" {
		return nil, newFetchError(ErrorNotFound, resourceSpecies, 0, errors.New("empty species url"))
	}
	var species Species
	if err := c.getJSON(ctx, resourceSpecies, speciesURL, &species); err != nil {
		return nil, err
	}
	return &species, nil
}

// FetchImage downloads artwork bytes.
func (c *Client) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	if imageURL == "" {
		return nil, newFetchError(ErrorNotFound, resourceImage, 0, errors.New("empty image url"))
	}
	var body []byte
	err := c.do(ctx, resourceImage, imageURL, false, func(r io.Reader) error {
		b, err := io.ReadAll(io.LimitReader(r, maxImageBytes))
		if err != nil {
			return err
		}
		body = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

// Degraded reports whether the breaker is currently rejecting catalog calls.
func (c *Client) Degraded() bool {
	return c.breaker != nil && c.breaker.IsOpen()
}

func (c *Client) getJSON(ctx context.Context, resource, endpoint string, target any) error {
	return c.do(ctx, resource, endpoint, true, func(r io.Reader) error {
		return json.NewDecoder(io.LimitReader(r, maxJSONBytes)).Decode(target)
	})
}

// do issues one GET and hands a 200 body to decode. guarded requests go
// through the breaker.
func (c *Client) do(ctx context.Context, resource, endpoint string, guarded bool, decode func(io.Reader) error) (err error) {
	ctx, span := c.tracer.Start(ctx, "catalog.fetch "+resource,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("catalog.resource", resource),
			attribute.String("url.full", endpoint),
		),
	)
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = string(CategoryOf(err))
			span.SetStatus(codes.Error, outcome)
			span.RecordError(err)
			c.logger.DebugContext(ctx, "catalog fetch failed",
				"resource", resource,
				"url", endpoint,
				"category", outcome,
				"error", err,
			)
		}
		c.metrics.ObserveFetch(resource, outcome, time.Since(start))
		span.End()
	}()

	if guarded && c.breaker != nil && !c.breaker.Allow() {
		return newFetchError(ErrorCircuitOpen, resource, 0, nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return newFetchError(ErrorBadData, resource, 0, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json, image/*;q=0.9")

	resp, err := c.http.Do(req)
	if err != nil {
		// A caller that hung up or ran out of time says nothing about the catalog.
		if guarded && ctx.Err() == nil {
			c.recordFailure(ctx)
		}
		category := ErrorProviderOutage
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			category = ErrorTimeout
		}
		return newFetchError(category, resource, 0, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode >= http.StatusInternalServerError {
		if guarded {
			c.recordFailure(ctx)
		}
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxJSONBytes))
		return newFetchError(ErrorProviderOutage, resource, resp.StatusCode, nil)
	}
	if guarded {
		c.recordSuccess(ctx)
	}
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxJSONBytes))
		return newFetchError(ErrorNotFound, resource, resp.StatusCode, nil)
	}
	if err := decode(resp.Body); err != nil {
		return newFetchError(ErrorBadData, resource, resp.StatusCode, err)
	}
	return nil
}

func (c *Client) recordFailure(ctx context.Context) {
	if c.breaker == nil {
		return
	}
	if _, change := c.breaker.RecordFailure(); change.Opened {
		c.metrics.SetBreakerOpen(true)
		c.logger.WarnContext(ctx, "catalog circuit opened", "breaker", c.breaker.Name())
	}
}

func (c *Client) recordSuccess(ctx context.Context) {
	if c.breaker == nil {
		return
	}
	if _, change := c.breaker.RecordSuccess(); change.Closed {
		c.metrics.SetBreakerOpen(false)
		c.logger.InfoContext(ctx, "catalog circuit closed", "breaker", c.breaker.Name())
	}
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
