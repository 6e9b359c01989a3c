package pokedex

import (
	"fmt"

	"pokedex/internal/catalog"
	"pokedex/pkg/platform/sentinel"
)

const placeholderURL = "https://placeholder.test/missing.jpg"

var errAbsent = fmt.Errorf("catalog pokemon: %w", sentinel.ErrNotFound)

func artworkURL(id int) string {
	return fmt.Sprintf("https://artwork.test/%d.png", id)
}

func speciesURL(id int) string {
	return fmt.Sprintf("https://pokeapi.test/api/v2/pokemon-species/%d/", id)
}

func named(name string) catalog.NamedResource {
	return catalog.NamedResource{Name: name}
}

// newEntity builds a minimal entity with artwork and a species link.
func newEntity(id int, name string) *catalog.Entity {
	art := artworkURL(id)
	e := &catalog.Entity{
		ID:      id,
		Name:    name,
		Species: catalog.NamedResource{Name: name, URL: speciesURL(id)},
		Types:   []catalog.TypeSlot{{Slot: 1, Type: named("normal")}},
		Abilities: []catalog.AbilitySlot{
			{Slot: 1, Ability: named("run-away")},
		},
		Stats: []catalog.Stat{
			{BaseStat: 35, Stat: named("hp")},
		},
		Weight: 60,
		Height: 4,
	}
	e.Sprites.Other.OfficialArtwork.FrontDefault = &art
	return e
}

func bulbasaur() *catalog.Entity {
	e := newEntity(1, "bulbasaur")
	e.Types = []catalog.TypeSlot{
		{Slot: 1, Type: named("grass")},
		{Slot: 2, Type: named("poison")},
	}
	e.Abilities = []catalog.AbilitySlot{
		{Slot: 1, Ability: named("overgrow")},
		{Slot: 3, Ability: named("chlorophyll"), IsHidden: true},
	}
	e.Stats = []catalog.Stat{
		{BaseStat: 45, Stat: named("hp")},
		{BaseStat: 49, Stat: named("attack")},
		{BaseStat: 65, Stat: named("special-attack")},
	}
	e.Weight = 69
	e.Height = 7
	return e
}

func englishSpecies(text string) *catalog.Species {
	return &catalog.Species{
		FlavorTextEntries: []catalog.FlavorText{
			{FlavorText: "Une étrange graine.", Language: named("fr")},
			{FlavorText: text, Language: named("en")},
			{FlavorText: "Another english entry.", Language: named("en")},
		},
	}
}
