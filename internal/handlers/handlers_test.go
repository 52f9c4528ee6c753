// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"context"
	"sync/atomic"

	"github.com/terrascope/worldview/internal/chart"
	"github.com/terrascope/worldview/internal/models"
	"github.com/terrascope/worldview/internal/source"
)

type fakeSource struct {
	records []models.CountryRecord
	calls   atomic.Int32
}

func (f *fakeSource) FetchOrEmpty(context.Context) []models.CountryRecord {
	f.calls.Add(1)
	if f.records == nil {
		return []models.CountryRecord{}
	}
	return f.records
}

func (f *fakeSource) State() source.State {
	return source.Idle
}

func testRecords() []models.CountryRecord {
	return []models.CountryRecord{
		{Name: "Japan", Region: "Asia", Population: 500, Area: models.Float64(377930), Capitals: []string{"Tokyo"}},
		{Name: "Germany", Region: "Europe", Population: 2000, Area: models.Float64(357114), Capitals: []string{"Berlin"}},
		{Name: "Nepal", Region: "Asia", Population: 100},
	}
}

func newTestHandlers(records []models.CountryRecord) (*Handlers, *fakeSource, *chart.Controller) {
	src := &fakeSource{records: records}
	charts := chart.NewController(chart.DefaultOptions(), nil, nil)
	return New(src, charts, nil), src, charts
}
