// Package parser provides utilities for decoding and shaping country data.
// It handles dataset decoding, ranking, grouping and display formatting.
package parser

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/terrascope/worldview/internal/models"
)

// ParseCountries decodes a restcountries JSON array. Entries without a common
// name are dropped.
func ParseCountries(data []byte) ([]models.CountryRecord, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty countries data")
	}

	var raw []models.RestCountry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal countries: %w", err)
	}

	if raw == nil {
		return nil, fmt.Errorf("invalid countries: expected a JSON array")
	}

	records := make([]models.CountryRecord, 0, len(raw))
	for _, rc := range raw {
		if rc.Name.Common == "" {
			continue
		}
		records = append(records, toRecord(rc))
	}

	return records, nil
}

func toRecord(rc models.RestCountry) models.CountryRecord {
	record := models.CountryRecord{
		Name:       rc.Name.Common,
		Population: max(rc.Population, 0),
		Region:     rc.Region,
		Capitals:   rc.Capital,
		Languages:  rc.Languages,
		FlagURL:    rc.Flags.PNG,
	}

	if record.FlagURL == "" {
		record.FlagURL = rc.Flags.SVG
	}

	if rc.Area != nil && *rc.Area >= 0 {
		record.Area = models.Float64(*rc.Area)
	}

	if len(rc.Currencies) > 0 {
		record.Currencies = make(map[string]models.Currency, len(rc.Currencies))
		for code, c := range rc.Currencies {
			record.Currencies[code] = models.Currency{Name: c.Name, Symbol: c.Symbol}
		}
	}

	return record
}
