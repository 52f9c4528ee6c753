// Package parser provides utilities for decoding and shaping country data.
// It handles dataset decoding, ranking, grouping and display formatting.
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrascope/worldview/internal/models"
)

func TestFormatCard(t *testing.T) {
	t.Run("complete record", func(t *testing.T) {
		record := models.CountryRecord{
			Name:       "Germany",
			Population: 83240525,
			Area:       models.Float64(357114),
			Region:     "Europe",
			Capitals:   []string{"Berlin"},
			Languages:  map[string]string{"deu": "German"},
			Currencies: map[string]models.Currency{"EUR": {Name: "Euro", Symbol: "€"}},
			FlagURL:    "https://flagcdn.com/w320/de.png",
		}

		card := FormatCard(record)

		assert.Equal(t, "Germany", card.Name)
		assert.Equal(t, "Europe", card.Region)
		assert.Equal(t, "Berlin", card.Capital)
		assert.Equal(t, "83,240,525", card.Population)
		assert.Equal(t, "357,114 km²", card.Area)
		assert.Equal(t, "233.09 /km²", card.Density)
		assert.Equal(t, "German", card.Languages)
		assert.Equal(t, "Euro", card.Currencies)
		assert.Equal(t, "https://flagcdn.com/w320/de.png", card.FlagURL)
	})

	t.Run("missing optional fields resolve to N/A", func(t *testing.T) {
		card := FormatCard(models.CountryRecord{Name: "Nowhere", Population: 1000})

		assert.Equal(t, NotAvailable, card.Region)
		assert.Equal(t, NotAvailable, card.Capital)
		assert.Equal(t, NotAvailable, card.Area)
		assert.Equal(t, NotAvailable, card.Density)
		assert.Equal(t, NotAvailable, card.Languages)
		assert.Equal(t, NotAvailable, card.Currencies)
		assert.Equal(t, "1,000", card.Population)
	})

	t.Run("zero area has no density", func(t *testing.T) {
		card := FormatCard(models.CountryRecord{Population: 5, Area: models.Float64(0)})

		assert.Equal(t, "0 km²", card.Area)
		assert.Equal(t, NotAvailable, card.Density)
	})

	t.Run("multiple languages and currencies joined", func(t *testing.T) {
		card := FormatCard(models.CountryRecord{
			Languages:  map[string]string{"eng": "English", "afr": "Afrikaans"},
			Currencies: map[string]models.Currency{"ZAR": {Name: "South African rand"}, "USD": {Name: "United States dollar"}},
		})

		assert.Equal(t, "Afrikaans, English", card.Languages)
		assert.Equal(t, "United States dollar, South African rand", card.Currencies)
	})

	t.Run("fractional area", func(t *testing.T) {
		card := FormatCard(models.CountryRecord{Area: models.Float64(0.44)})
		assert.Equal(t, "0.44 km²", card.Area)
	})
}

func TestDensity(t *testing.T) {
	assert.Equal(t, "10 /km²", Density(models.CountryRecord{Population: 100, Area: models.Float64(10)}))
	assert.Equal(t, "0 /km²", Density(models.CountryRecord{Population: 0, Area: models.Float64(10)}))
	assert.Equal(t, NotAvailable, Density(models.CountryRecord{Population: 100}))
	assert.NotContains(t, Density(models.CountryRecord{Population: 100, Area: models.Float64(0)}), "Inf")
}

func TestFormatCardsAndTable(t *testing.T) {
	result := Shape(sample(), models.AllByContinent, models.AllRegions)

	t.Run("cards keep group structure", func(t *testing.T) {
		groups := FormatCards(result)

		require.Len(t, groups, 2)
		assert.Equal(t, "Asia", groups[0].Label)
		assert.Len(t, groups[0].Cards, 2)
		assert.Equal(t, "A", groups[0].Cards[0].Name)
	})

	t.Run("table ranks restart per group", func(t *testing.T) {
		rows := FormatTable(result)

		require.Len(t, rows, 3)
		assert.Equal(t, 1, rows[0].Rank)
		assert.Equal(t, 2, rows[1].Rank)
		assert.Equal(t, 1, rows[2].Rank)
		assert.Equal(t, "E", rows[2].Name)
	})

	t.Run("empty result renders nothing", func(t *testing.T) {
		empty := Shape(nil, models.TopTenGlobal, models.AllRegions)

		assert.Empty(t, FormatCards(empty))
		assert.Empty(t, FormatTable(empty))
	})
}
