// Package location holds the state/city selection model behind the home
// screen: dropdown items built from IBGE records, the current selection,
// and the request generations used to discard stale lookups.
package location

import (
	"strings"
	"unicode"

	"ecoleta/internal/ibge"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Item is one entry in a dropdown.
type Item struct {
	Label string
	Value string
}

// StateItems maps states to dropdown items (label and value are the UF code).
func StateItems(states []ibge.State) []Item {
	items := make([]Item, len(states))
	for i, s := range states {
		items[i] = Item{Label: s.Sigla, Value: s.Sigla}
	}
	return items
}

// CityItems maps cities to dropdown items (label and value are the city name).
func CityItems(cities []ibge.City) []Item {
	items := make([]Item, len(cities))
	for i, c := range cities {
		items[i] = Item{Label: c.Nome, Value: c.Nome}
	}
	return items
}

// Stage is the progress of a selection.
type Stage int

const (
	NoRegionSelected Stage = iota
	RegionSelected
	RegionAndCitySelected
)

func (s Stage) String() string {
	switch s {
	case NoRegionSelected:
		return "NoRegionSelected"
	case RegionSelected:
		return "RegionSelected"
	case RegionAndCitySelected:
		return "RegionAndCitySelected"
	default:
		return "Unknown"
	}
}

// Selection is the user's current pick. Empty strings mean unselected.
type Selection struct {
	UF   string
	City string
}

// HasRegion reports whether UF names a state that can scope a city lookup.
// "0" is accepted as an alternate unselected marker.
func (s Selection) HasRegion() bool {
	return s.UF != "" && s.UF != "0"
}

// Stage reports where the selection stands.
func (s Selection) Stage() Stage {
	switch {
	case !s.HasRegion():
		return NoRegionSelected
	case s.City == "":
		return RegionSelected
	default:
		return RegionAndCitySelected
	}
}

// Params returns the navigation parameters for the points screen.
func (s Selection) Params() map[string]string {
	return map[string]string{"city": s.City, "uf": s.UF}
}

// Generation issues request tokens; only the latest token is current.
// The zero value is ready to use and has no current token.
type Generation struct {
	n uint64
}

// Next issues a new token, invalidating all earlier ones.
func (g *Generation) Next() uint64 {
	g.n++
	return g.n
}

// Invalidate makes every issued token stale without issuing a new one.
func (g *Generation) Invalidate() {
	g.n++
}

// IsCurrent reports whether token is the most recently issued one.
func (g *Generation) IsCurrent(token uint64) bool {
	return token != 0 && token == g.n
}

// FoldKey lowercases s and strips diacritics, so "São Paulo" and
// "sao paulo" compare equal.
func FoldKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
