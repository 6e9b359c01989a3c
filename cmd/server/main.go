package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"pokedex/internal/app"
	httpapi "pokedex/internal/http"
	"pokedex/internal/platform/config"
	"pokedex/internal/platform/httpserver"
	"pokedex/internal/platform/logger"
	"pokedex/internal/pokedex/handler"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Navigation logic lives in internal/pokedex.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := app.NewCatalog(ctx, cfg, log, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	defer func() {
		if err := cat.Close(); err != nil {
			log.Warn("close catalog", "error", err)
		}
	}()

	nav, err := app.NewNavigator(cat, cfg, log, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	h := handler.New(nav, log, cat.Degraded)
	h.Seed(ctx)
	srv := httpserver.New(cfg.Addr, httpapi.NewRouter(h, cat.Health, log))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting pokedex", "addr", cfg.Addr, "catalog", cfg.Catalog.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
