// Package parser provides utilities for decoding and shaping country data.
// It handles dataset decoding, ranking, grouping and display formatting.
package parser

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/terrascope/worldview/internal/models"
)

// NotAvailable marks a field the record does not supply.
const NotAvailable = "N/A"

func FormatCard(record models.CountryRecord) models.Card {
	card := models.Card{
		Name:       record.Name,
		FlagURL:    record.FlagURL,
		Region:     orNotAvailable(record.Region),
		Capital:    NotAvailable,
		Population: humanize.Comma(record.Population),
		Area:       NotAvailable,
		Density:    Density(record),
		Languages:  joinOrNotAvailable(record.LanguageNames()),
		Currencies: joinOrNotAvailable(record.CurrencyNames()),
	}

	if capital, ok := record.Capital(); ok {
		card.Capital = capital
	}

	if area, ok := record.AreaKm2(); ok {
		card.Area = humanize.CommafWithDigits(area, 2) + " km²"
	}

	return card
}

// Density formats people per km², or N/A when the area is missing or zero.
func Density(record models.CountryRecord) string {
	area, ok := record.AreaKm2()
	if !ok || area <= 0 {
		return NotAvailable
	}

	d := float64(record.Population) / area
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return NotAvailable
	}

	return humanize.CommafWithDigits(d, 2) + " /km²"
}

func FormatCards(result models.ShapedResult) []models.CardGroup {
	groups := make([]models.CardGroup, 0, len(result.Groups))
	for _, g := range result.Groups {
		cards := make([]models.Card, 0, len(g.Records))
		for _, r := range g.Records {
			cards = append(cards, FormatCard(r))
		}
		groups = append(groups, models.CardGroup{Label: g.Label, Cards: cards})
	}
	return groups
}

// FormatTable flattens the result into ranked rows in display order. Ranks
// restart at 1 for each group.
func FormatTable(result models.ShapedResult) []models.TableRow {
	rows := []models.TableRow{}
	for _, g := range result.Groups {
		for i, r := range g.Records {
			rows = append(rows, models.TableRow{Rank: i + 1, Card: FormatCard(r)})
		}
	}
	return rows
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

func joinOrNotAvailable(values []string) string {
	if len(values) == 0 {
		return NotAvailable
	}
	return strings.Join(values, ", ")
}
