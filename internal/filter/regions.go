package filter

import "strings"

// AllRegions is the region choice meaning "no region filter".
const AllRegions = "Brasil"

// regionStates maps each Brazilian macro-region to the UF codes it contains.
var regionStates = map[string][]string{
	"Centro-Oeste": {"DF", "GO", "MT", "MS"},
	"Nordeste":     {"AL", "BA", "CE", "MA", "PB", "PE", "PI", "RN", "SE"},
	"Norte":        {"AC", "AP", "AM", "PA", "RO", "RR", "TO"},
	"Sudeste":      {"ES", "MG", "RJ", "SP"},
	"Sul":          {"PR", "RS", "SC"},
}

// regionOrder is the display order of the region selector.
var regionOrder = []string{AllRegions, "Centro-Oeste", "Nordeste", "Norte", "Sudeste", "Sul"}

var stateRegion = func() map[string]string {
	m := make(map[string]string, 27)
	for region, states := range regionStates {
		for _, uf := range states {
			m[uf] = region
		}
	}
	return m
}()

// Regions returns the selectable regions, "Brasil" first.
func Regions() []string {
	return append([]string(nil), regionOrder...)
}

// CanonicalRegion resolves a user-supplied region name case-insensitively.
// It returns "" for the all-regions choice and ok=false for unknown names.
func CanonicalRegion(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, AllRegions) {
		return "", true
	}
	for region := range regionStates {
		if strings.EqualFold(region, name) {
			return region, true
		}
	}
	return "", false
}

// RegionOf returns the macro-region of a UF code, or "" when unknown.
func RegionOf(location string) string {
	return stateRegion[strings.ToUpper(strings.TrimSpace(location))]
}
