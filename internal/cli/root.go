// Package cli implements the pokedex terminal front end.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pokedex/internal/app"
	"pokedex/internal/platform/config"
	"pokedex/internal/platform/logger"
	"pokedex/internal/pokedex"
)

type options struct {
	baseURL  string
	logLevel string
	format   string
}

// NewRootCmd builds the pokedex command tree. Flags override the POKEDEX_*
// environment.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "pokedex",
		Short:         "Browse the Pokémon catalog from the terminal",
		Long:          "A terminal pokedex. Step through entries by number or jump to one by name or id.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "Catalog base URL (default: $POKEDEX_CATALOG_BASE_URL)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level written to stderr")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "text", "Output format: text or json")

	root.AddCommand(newShowCmd(opts), newBrowseCmd(opts))
	return root
}

// session is one navigator plus the resources behind it.
type session struct {
	nav     *pokedex.Navigator
	catalog *app.Catalog
	render  renderer
}

func (s *session) Close() error {
	return s.catalog.Close()
}

func openSession(ctx context.Context, opts *options, stdout, stderr io.Writer) (*session, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	if opts.baseURL != "" {
		cfg.Catalog.BaseURL = opts.baseURL
	}

	render, err := rendererFor(opts.format, stdout)
	if err != nil {
		return nil, err
	}

	log := logger.NewWithWriter(stderr, opts.logLevel, "text")
	cat, err := app.NewCatalog(ctx, cfg, log, nil)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	nav, err := app.NewNavigator(cat, cfg, log, nil)
	if err != nil {
		_ = cat.Close()
		return nil, err
	}
	return &session{nav: nav, catalog: cat, render: render}, nil
}
