// Package httpapi assembles the public HTTP surface: middleware, the pokedex
// routes and the operational endpoints.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"pokedex/internal/platform/metrics"
	"pokedex/internal/platform/middleware"
	"pokedex/internal/pokedex/handler"
	dErrors "pokedex/pkg/domain-errors"
	"pokedex/pkg/platform/httputil"
)

// requestTimeout bounds one navigation step, which may chain an entity, a
// species and an image fetch.
const requestTimeout = 45 * time.Second

// HealthFunc reports whether backing services are reachable.
type HealthFunc func(ctx context.Context) error

// NewRouter wires every endpoint. health may be nil.
func NewRouter(h *handler.Handler, health HealthFunc, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))

	r.Get("/healthz", handleHealth(health))
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(requestTimeout))
		h.Register(r)
	})
	return r
}

func handleHealth(health HealthFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			if err := health(r.Context()); err != nil {
				httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeUnavailable, "cache unreachable"))
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
