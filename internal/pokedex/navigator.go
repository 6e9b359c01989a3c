// Package pokedex turns user actions into display records: it resolves the
// query, fetches the entity and its species from the catalog, composes the
// record and keeps the sequential browsing position.
package pokedex

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pokedex/internal/catalog"
	"pokedex/internal/pokedex/metrics"
	"pokedex/pkg/domain"
)

const (
	// DefaultEntry is looked up by Start to fill the first screen.
	DefaultEntry = "bulbasaur"

	// DefaultPlaceholderImageURL is the artwork tried for not-found records.
	DefaultPlaceholderImageURL = "https://i.imgflip.com/73qk92.jpg"

	transitionStart    = "start"
	transitionForward  = "forward"
	transitionBackward = "backward"
	transitionSearch   = "search"
)

// Navigator owns the browsing position and drives resolution, fetching and
// composition for each action.
//
// The position is an optional numeric id. It starts at 1, is cleared by a
// failed search and is never rolled back when Forward lands past the end of
// the catalog. A Navigator serves one caller at a time; it is not safe for
// concurrent use.
type Navigator struct {
	catalog      Catalog
	composer     *Composer
	defaultEntry string
	placeholder  string
	logger       *slog.Logger
	metrics      *metrics.Metrics

	current    int
	hasCurrent bool
	last       Record
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithDefaultEntry overrides the entry Start looks up.
func WithDefaultEntry(entry string) Option {
	return func(n *Navigator) {
		n.defaultEntry = entry
	}
}

// WithPlaceholderImage overrides the not-found artwork URL. An empty URL skips
// the fetch and always yields the no-image marker.
func WithPlaceholderImage(url string) Option {
	return func(n *Navigator) {
		n.placeholder = url
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(n *Navigator) {
		if logger != nil {
			n.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(n *Navigator) {
		n.metrics = m
	}
}

// NewNavigator creates a Navigator positioned at id 1.
func NewNavigator(cat Catalog, opts ...Option) (*Navigator, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}
	n := &Navigator{
		catalog:      cat,
		defaultEntry: DefaultEntry,
		placeholder:  DefaultPlaceholderImageURL,
		logger:       slog.New(slog.DiscardHandler),
		current:      1,
		hasCurrent:   true,
		last:         PlaceholderRecord(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	n.composer = NewComposer(cat, n.placeholder, n.logger)
	return n, nil
}

// Current returns the browsing position and whether there is one.
func (n *Navigator) Current() (int, bool) {
	return n.current, n.hasCurrent
}

// Last returns the most recently emitted record, or the placeholder record
// before the first action.
func (n *Navigator) Last() Record {
	return n.last
}

// Start looks up the default entry to fill the first screen. It leaves the
// browsing position untouched.
func (n *Navigator) Start(ctx context.Context) Record {
	start := time.Now()
	entity := n.fetch(ctx, domain.ResolveIdentifier(n.defaultEntry))
	return n.emit(ctx, transitionStart, n.composer.Compose(ctx, entity), start)
}

// Forward advances to the next id. Without a position it is a no-op that
// emits the not-found record. The position advances even when the next id
// does not exist.
func (n *Navigator) Forward(ctx context.Context) Record {
	start := time.Now()
	if n.hasCurrent {
		n.current++
	}
	return n.emit(ctx, transitionForward, n.composeCurrent(ctx), start)
}

// Backward steps to the previous id; at id 1 or without a position it is a
// no-op that re-emits the current position's record.
func (n *Navigator) Backward(ctx context.Context) Record {
	start := time.Now()
	if n.hasCurrent && n.current > 1 {
		n.current--
	}
	return n.emit(ctx, transitionBackward, n.composeCurrent(ctx), start)
}

// Search resolves text and looks it up once. A hit moves the position to the
// catalog's numeric id, which may differ from the query; a miss clears the
// position and emits the not-found record without any further entity fetch.
func (n *Navigator) Search(ctx context.Context, text string) Record {
	start := time.Now()
	id := domain.ResolveIdentifier(text)

	entity := n.fetch(ctx, id)
	if entity == nil {
		n.current, n.hasCurrent = 0, false
		return n.emit(ctx, transitionSearch, n.composer.Compose(ctx, nil), start)
	}

	n.current, n.hasCurrent = entity.ID, true
	return n.emit(ctx, transitionSearch, n.composer.Compose(ctx, entity), start)
}

// composeCurrent fetches the entry at the current position, or composes the
// not-found record without a fetch when there is no position.
func (n *Navigator) composeCurrent(ctx context.Context) Record {
	if !n.hasCurrent {
		return n.composer.Compose(ctx, nil)
	}
	return n.composer.Compose(ctx, n.fetch(ctx, domain.NumericIdentifier(n.current)))
}

// fetch collapses every failure to nil.
func (n *Navigator) fetch(ctx context.Context, id domain.Identifier) *catalog.Entity {
	entity, err := n.catalog.FetchEntity(ctx, id)
	if err != nil {
		n.logger.DebugContext(ctx, "entity lookup missed",
			"identifier", id.String(),
			"category", string(catalog.CategoryOf(err)),
			"error", err,
		)
		return nil
	}
	return entity
}

func (n *Navigator) emit(ctx context.Context, transition string, record Record, start time.Time) Record {
	n.last = record
	n.metrics.ObserveTransition(transition, string(record.Status), time.Since(start))
	current, ok := n.Current()
	n.logger.InfoContext(ctx, "record emitted",
		"transition", transition,
		"status", string(record.Status),
		"current_id", current,
		"has_current", ok,
	)
	return record
}
