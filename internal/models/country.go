// Package models defines the core data structures shared by the explorer.
// It includes the country record, the upstream wire format and the shaped views.
package models

import "sort"

type CountryRecord struct {
	Name       string              `json:"name"`
	Population int64               `json:"population"`
	Area       *float64            `json:"area,omitempty"`
	Region     string              `json:"region"`
	Capitals   []string            `json:"capitals,omitempty"`
	Languages  map[string]string   `json:"languages,omitempty"`
	Currencies map[string]Currency `json:"currencies,omitempty"`
	FlagURL    string              `json:"flag_url"`
}

type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

// AreaKm2 reports the area and whether the source supplied one.
func (c CountryRecord) AreaKm2() (float64, bool) {
	if c.Area == nil {
		return 0, false
	}
	return *c.Area, true
}

// Capital returns the first listed capital.
func (c CountryRecord) Capital() (string, bool) {
	for _, capital := range c.Capitals {
		if capital != "" {
			return capital, true
		}
	}
	return "", false
}

// LanguageNames returns language names ordered by language code.
func (c CountryRecord) LanguageNames() []string {
	codes := sortedKeys(c.Languages)
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		if name := c.Languages[code]; name != "" {
			names = append(names, name)
		}
	}
	return names
}

// CurrencyNames returns currency names ordered by currency code.
func (c CountryRecord) CurrencyNames() []string {
	codes := sortedKeys(c.Currencies)
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		if name := c.Currencies[code].Name; name != "" {
			names = append(names, name)
		}
	}
	return names
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Float64 is a helper for building optional areas.
func Float64(v float64) *float64 {
	return &v
}
