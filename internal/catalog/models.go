package catalog

import "golang.org/x/text/language"

// NamedResource is the catalog's {name, url} reference to another resource.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Entity is the primary /pokemon/{id-or-name} payload, reduced to the fields
// the pokedex displays. Slices keep the catalog's order.
type Entity struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Types     []TypeSlot    `json:"types"`
	Species   NamedResource `json:"species"`
	Abilities []AbilitySlot `json:"abilities"`
	Stats     []Stat        `json:"stats"`
	Sprites   Sprites       `json:"sprites"`
	Weight    int           `json:"weight"` // decagrams
	Height    int           `json:"height"` // decimeters
}

type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

type Stat struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

type Sprites struct {
	Other OtherSprites `json:"other"`
}

type OtherSprites struct {
	OfficialArtwork ArtworkSprites `json:"official-artwork"`
}

// ArtworkSprites holds the official artwork. FrontDefault is nil when the
// catalog has no artwork for the entry.
type ArtworkSprites struct {
	FrontDefault *string `json:"front_default"`
}

// TypeNames returns the type slugs in catalog order.
func (e *Entity) TypeNames() []string {
	names := make([]string, len(e.Types))
	for i, t := range e.Types {
		names[i] = t.Type.Name
	}
	return names
}

// AbilityNames returns the ability slugs in catalog order.
func (e *Entity) AbilityNames() []string {
	names := make([]string, len(e.Abilities))
	for i, a := range e.Abilities {
		names[i] = a.Ability.Name
	}
	return names
}

// ArtworkURL returns the official front artwork URL, if the catalog has one.
func (e *Entity) ArtworkURL() (string, bool) {
	u := e.Sprites.Other.OfficialArtwork.FrontDefault
	if u == nil || *u == "" {
		return "", false
	}
	return *u, true
}

// Species is the /pokemon-species payload, reduced to its flavor text.
type Species struct {
	ID                int          `json:"id"`
	Name              string       `json:"name"`
	FlavorTextEntries []FlavorText `json:"flavor_text_entries"`
}

type FlavorText struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

// FlavorTextFor returns the first entry whose explicit subtags equal tag's.
// Names are parsed case-insensitively and names that are not BCP 47 tags never
// match. A regional entry such as "en-GB" does not satisfy plain "en".
func (s *Species) FlavorTextFor(tag language.Tag) (string, bool) {
	want := languageKey(tag)
	for _, entry := range s.FlavorTextEntries {
		got, err := language.Parse(entry.Language.Name)
		if err != nil || got == language.Und {
			continue
		}
		if languageKey(got) == want {
			return entry.FlavorText, true
		}
	}
	return "", false
}

type langKey struct {
	base   language.Base
	script language.Script
	region language.Region
}

func languageKey(tag language.Tag) langKey {
	base, script, region := tag.Raw()
	return langKey{base: base, script: script, region: region}
}
