package pokedex

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/language"

	"pokedex/internal/catalog"
	"pokedex/pkg/domain"
	pstrings "pokedex/pkg/platform/strings"
)

// Catalog is the set of remote reads the pokedex depends on. Any error is
// treated as "absent"; callers never see the distinction between a missing
// entry and an unreachable catalog.
type Catalog interface {
	FetchEntity(ctx context.Context, id domain.Identifier) (*catalog.Entity, error)
	FetchSpecies(ctx context.Context, speciesURL string) (*catalog.Species, error)
	FetchImage(ctx context.Context, imageURL string) ([]byte, error)
}

// descriptionLanguage selects the flavor text shown as the description.
var descriptionLanguage = language.English

// Composer merges an entity and its species resource into a Record.
type Composer struct {
	catalog             Catalog
	placeholderImageURL string
	logger              *slog.Logger
}

// NewComposer creates a Composer. placeholderImageURL is the artwork tried
// for not-found records.
func NewComposer(cat Catalog, placeholderImageURL string, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Composer{
		catalog:             cat,
		placeholderImageURL: placeholderImageURL,
		logger:              logger,
	}
}

// Compose builds the display record for entity, or the canonical not-found
// record when entity is nil. It always returns a well-formed record.
func (c *Composer) Compose(ctx context.Context, entity *catalog.Entity) Record {
	if entity == nil {
		return c.notFound(ctx)
	}

	weightKg := float64(entity.Weight) / 10.0
	heightM := float64(entity.Height) / 10.0

	return Record{
		Label:        fmt.Sprintf("%s (ID: %d)", pstrings.Capitalize(entity.Name), entity.ID),
		Types:        pstrings.JoinCapitalized(entity.TypeNames(), ", "),
		Species:      pstrings.Capitalize(entity.Species.Name),
		Abilities:    pstrings.JoinCapitalized(entity.AbilityNames(), ", "),
		Stats:        statsText(entity.Stats),
		Description:  c.description(ctx, entity),
		WeightKg:     weightKg,
		HeightM:      heightM,
		Measurements: measurements(weightKg, heightM),
		Image:        c.artwork(ctx, entity),
		Status:       StatusFound,
	}
}

func statsText(stats []catalog.Stat) string {
	lines := make([]string, len(stats))
	for i, s := range stats {
		lines[i] = fmt.Sprintf("%s: %d", pstrings.Capitalize(s.Stat.Name), s.BaseStat)
	}
	return strings.Join(lines, "\n")
}

// description is the first English flavor text of the species resource. A
// failed species fetch only affects this field.
func (c *Composer) description(ctx context.Context, entity *catalog.Entity) string {
	species, err := c.catalog.FetchSpecies(ctx, entity.Species.URL)
	if err != nil {
		c.logger.DebugContext(ctx, "species unavailable, using fallback description",
			"entity_id", entity.ID,
			"error", err,
		)
		return DescriptionFallback
	}
	text, ok := species.FlavorTextFor(descriptionLanguage)
	if !ok {
		return DescriptionFallback
	}
	return text
}

// artwork resolves the primary image chain: no URL means no fetch; a failed
// fetch degrades to the no-image marker. Both keep the black background.
func (c *Composer) artwork(ctx context.Context, entity *catalog.Entity) Image {
	artworkURL, ok := entity.ArtworkURL()
	if !ok {
		return noImage(BackgroundBlack)
	}
	if _, err := c.catalog.FetchImage(ctx, artworkURL); err != nil {
		c.logger.DebugContext(ctx, "artwork unavailable",
			"entity_id", entity.ID,
			"url", artworkURL,
			"error", err,
		)
		return noImage(BackgroundBlack)
	}
	return Image{URL: artworkURL, Available: true, Background: BackgroundBlack}
}

// notFound builds the canonical not-found record with the fallback image chain.
func (c *Composer) notFound(ctx context.Context) Record {
	return Record{
		Label:        notFoundLabel,
		Types:        notFoundTypes,
		Species:      notFoundSpecies,
		Abilities:    notFoundAbilities,
		Stats:        notFoundStats,
		Description:  notFoundDescription,
		Measurements: notFoundMeasurements,
		Image:        c.placeholder(ctx),
		Status:       StatusNotFound,
	}
}

func (c *Composer) placeholder(ctx context.Context) Image {
	if c.placeholderImageURL == "" {
		return noImage(BackgroundRed)
	}
	if _, err := c.catalog.FetchImage(ctx, c.placeholderImageURL); err != nil {
		c.logger.DebugContext(ctx, "placeholder image unavailable", "error", err)
		return noImage(BackgroundRed)
	}
	return Image{URL: c.placeholderImageURL, Available: true, Background: BackgroundRed}
}
