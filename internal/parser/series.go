// Package parser provides utilities for decoding and shaping country data.
// It handles dataset decoding, ranking, grouping and display formatting.
package parser

import (
	"errors"
	"fmt"

	"github.com/terrascope/worldview/internal/models"
)

var ErrUnknownGroup = errors.New("unknown group")

const (
	populationFill   = "rgba(54, 162, 235, 0.6)"
	populationBorder = "rgba(54, 162, 235, 1)"
	areaFill         = "rgba(255, 99, 132, 0.6)"
	areaBorder       = "rgba(255, 99, 132, 1)"
)

// BuildSeries derives the plotted arrays for a record sequence. Missing areas
// plot as zero; labels are blanked for the all-countries view.
func BuildSeries(records []models.CountryRecord, mode models.ViewMode) models.Series {
	series := models.Series{
		Labels:     make([]string, len(records)),
		Population: make([]float64, len(records)),
		Area:       make([]float64, len(records)),
	}

	for i, r := range records {
		if mode != models.AllByContinent {
			series.Labels[i] = r.Name
		}
		series.Population[i] = float64(r.Population)
		if area, ok := r.AreaKm2(); ok {
			series.Area[i] = area
		}
	}

	return series
}

// BuildChartSpec charts the focused group, or every group in display order
// when focus is empty.
func BuildChartSpec(result models.ShapedResult, focus string) (models.ChartSpec, error) {
	records := result.Records()
	title := fmt.Sprintf("%s (%s)", result.Mode.Title(), result.Region.Title())

	if focus != "" {
		group, ok := result.Group(focus)
		if !ok {
			return models.ChartSpec{}, fmt.Errorf("%w: %q", ErrUnknownGroup, focus)
		}
		records = group.Records
		title = fmt.Sprintf("%s: %s", result.Mode.Title(), focus)
	}

	series := BuildSeries(records, result.Mode)

	return models.ChartSpec{
		Title:      title,
		Labels:     series.Labels,
		XAxisTitle: "Country",
		Datasets: []models.Dataset{
			{
				Label:           "Population",
				Data:            series.Population,
				BackgroundColor: populationFill,
				BorderColor:     populationBorder,
				AxisID:          "y",
				AxisTitle:       "Population (log scale)",
				Logarithmic:     true,
			},
			{
				Label:           "Area (km²)",
				Data:            series.Area,
				BackgroundColor: areaFill,
				BorderColor:     areaBorder,
				AxisID:          "y1",
				AxisTitle:       "Area km² (log scale)",
				Logarithmic:     true,
			},
		},
	}, nil
}
