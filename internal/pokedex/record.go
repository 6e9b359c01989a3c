package pokedex

import (
	"strconv"
	"strings"
)

// Status tells the rendering surface whether a record describes a real entry.
type Status string

const (
	StatusFound    Status = "found"
	StatusNotFound Status = "not_found"
	// StatusPending marks the placeholder shown before the first lookup.
	StatusPending Status = "pending"
)

// Background is the hint painted behind the artwork. Black means "valid entry",
// red means "no entry found".
type Background string

const (
	BackgroundBlack Background = "black"
	BackgroundRed   Background = "red"
)

// Image is the resolved artwork reference. When Available is false the record
// carries the explicit "no image" marker and URL is empty.
type Image struct {
	URL        string     `json:"url,omitempty"`
	Available  bool       `json:"available"`
	Background Background `json:"background"`
}

func noImage(bg Background) Image {
	return Image{Background: bg}
}

// Record is the display-ready value emitted for every navigation step. It is
// replaced wholesale on each step and carries no identity of its own.
type Record struct {
	Label        string  `json:"label"`
	Types        string  `json:"types"`
	Species      string  `json:"species"`
	Abilities    string  `json:"abilities"`
	Stats        string  `json:"stats"`
	Description  string  `json:"description"`
	WeightKg     float64 `json:"weight_kg"`
	HeightM      float64 `json:"height_m"`
	Measurements string  `json:"measurements"`
	Image        Image   `json:"image"`
	Status       Status  `json:"status"`
}

// Found reports whether the record describes a catalog entry.
func (r Record) Found() bool {
	return r.Status == StatusFound
}

const (
	// DescriptionFallback replaces a missing or non-English description.
	DescriptionFallback = "Description not available."

	notFoundLabel        = "THE POKEDEX"
	notFoundTypes        = "HAVE NEVER"
	notFoundSpecies      = "DISCOVERED THAT"
	notFoundAbilities    = "POKEMON DATA"
	notFoundStats        = "No Stats Available"
	notFoundDescription  = "No Available Description"
	notFoundMeasurements = "Unknown Weight and Height"
)

// PlaceholderRecord is what the surface shows before the first lookup.
func PlaceholderRecord() Record {
	return Record{
		Label:        "Name and ID",
		Types:        "Type/Element",
		Species:      "Species",
		Abilities:    "Abilities",
		Stats:        "Pokémon Stats",
		Description:  "Pokémon Description",
		Measurements: "Weight: N/A\nHeight: N/A",
		Image:        noImage(BackgroundBlack),
		Status:       StatusPending,
	}
}

// measurements renders "Weight: 6.9 kg\nHeight: 0.7 m". Whole numbers keep a
// trailing ".0" so 10 decimeters reads "1.0 m".
func measurements(weightKg, heightM float64) string {
	return "Weight: " + formatDecimal(weightKg) + " kg\nHeight: " + formatDecimal(heightM) + " m"
}

func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
