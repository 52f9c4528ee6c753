// Package models defines the core data structures shared by the explorer.
// It includes the country record, the upstream wire format and the shaped views.
package models

// RestCountry mirrors one element of the restcountries v3.1 response.
type RestCountry struct {
	Name       RestCountryName         `json:"name"`
	Population int64                   `json:"population"`
	Area       *float64                `json:"area"`
	Region     string                  `json:"region"`
	Capital    []string                `json:"capital,omitempty"`
	Languages  map[string]string       `json:"languages,omitempty"`
	Currencies map[string]RestCurrency `json:"currencies,omitempty"`
	Flags      RestFlags               `json:"flags"`
}

type RestCountryName struct {
	Common   string `json:"common"`
	Official string `json:"official,omitempty"`
}

type RestCurrency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

type RestFlags struct {
	PNG string `json:"png,omitempty"`
	SVG string `json:"svg,omitempty"`
	Alt string `json:"alt,omitempty"`
}
