package handler

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"pokedex/internal/pokedex"
	"pokedex/pkg/platform/httputil"
	"pokedex/pkg/requestcontext"
)

// DegradedHeader is set to "degraded" while the catalog circuit is open.
const DegradedHeader = "X-Catalog-Status"

// Navigator is the browsing session exposed over HTTP.
type Navigator interface {
	Start(ctx context.Context) pokedex.Record
	Forward(ctx context.Context) pokedex.Record
	Backward(ctx context.Context) pokedex.Record
	Search(ctx context.Context, text string) pokedex.Record
	Current() (int, bool)
	Last() pokedex.Record
}

// Handler serves the pokedex browsing endpoints. One Navigator backs every
// request, so calls are serialized. The default entry is looked up once before
// the first response, either by Seed at startup or by the first request.
type Handler struct {
	mu       sync.Mutex
	nav      Navigator
	seeded   bool
	logger   *slog.Logger
	degraded func() bool
}

// New creates a Handler. degraded may be nil.
func New(nav Navigator, logger *slog.Logger, degraded func() bool) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		nav:      nav,
		logger:   logger,
		degraded: degraded,
	}
}

// Seed looks up the default entry unless that already happened.
func (h *Handler) Seed(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seedLocked(ctx)
}

// seedLocked returns the seed record and true when it performed the lookup.
func (h *Handler) seedLocked(ctx context.Context) (pokedex.Record, bool) {
	if h.seeded {
		return pokedex.Record{}, false
	}
	h.seeded = true
	record := h.nav.Start(ctx)
	h.logger.InfoContext(ctx, "pokedex seeded",
		"status", string(record.Status),
		"label", record.Label,
	)
	return record, true
}

// Register registers the pokedex routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/pokedex/current", h.handleCurrent)
	r.Post("/pokedex/start", h.handleStart)
	r.Post("/pokedex/forward", h.handleForward)
	r.Post("/pokedex/backward", h.handleBackward)
	r.Post("/pokedex/search", h.handleSearch)
}

func (h *Handler) handleCurrent(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, func(context.Context) pokedex.Record {
		return h.nav.Last()
	})
}

func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.mu.Lock()
	record, seeded := h.seedLocked(ctx)
	if !seeded {
		record = h.nav.Start(ctx)
	}
	current, ok := h.nav.Current()
	h.mu.Unlock()

	h.write(w, r, record, current, ok)
}

func (h *Handler) handleForward(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.nav.Forward)
}

func (h *Handler) handleBackward(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.nav.Backward)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SearchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	h.respond(w, r, func(ctx context.Context) pokedex.Record {
		return h.nav.Search(ctx, req.Query)
	})
}

// respond runs one navigator step under the lock, after the seed lookup, and
// writes the resulting state.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, step func(context.Context) pokedex.Record) {
	ctx := r.Context()

	h.mu.Lock()
	h.seedLocked(ctx)
	record := step(ctx)
	current, ok := h.nav.Current()
	h.mu.Unlock()

	h.write(w, r, record, current, ok)
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, record pokedex.Record, current int, ok bool) {
	ctx := r.Context()

	if h.degraded != nil && h.degraded() {
		w.Header().Set(DegradedHeader, "degraded")
		h.logger.WarnContext(ctx, "catalog degraded",
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	httputil.WriteJSON(w, http.StatusOK, newStateResponse(record, current, ok))
}
