package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"pokedex/internal/pokedex"
)

type positioner interface {
	Current() (int, bool)
}

type renderer func(pokedex.Record, positioner) error

func rendererFor(format string, w io.Writer) (renderer, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return func(r pokedex.Record, _ positioner) error {
			_, err := io.WriteString(w, renderText(r))
			return err
		}, nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return func(r pokedex.Record, p positioner) error {
			out := struct {
				Record    pokedex.Record `json:"record"`
				CurrentID *int           `json:"current_id"`
			}{Record: r}
			if id, ok := p.Current(); ok {
				out.CurrentID = &id
			}
			return enc.Encode(out)
		}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: want text or json", format)
	}
}

// renderText lays a record out as a text card.
func renderText(r pokedex.Record) string {
	var b strings.Builder
	rule := strings.Repeat("=", 40)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, r.Label)
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Type:      %s\n", r.Types)
	fmt.Fprintf(&b, "Species:   %s\n", r.Species)
	fmt.Fprintf(&b, "Abilities: %s\n", r.Abilities)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, r.Stats)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, r.Measurements)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, flatten(r.Description))
	if r.Image.Available {
		fmt.Fprintf(&b, "Artwork:   %s\n", r.Image.URL)
	} else {
		fmt.Fprintln(&b, "Artwork:   no image")
	}
	return b.String()
}

// flatten joins the catalog's hard-wrapped flavor text onto one line.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
