// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/terrascope/worldview/internal/chart"
	"github.com/terrascope/worldview/internal/models"
	"github.com/terrascope/worldview/internal/source"
	"github.com/terrascope/worldview/internal/view"
)

// Fetcher supplies the dataset for one explore action. It must not fail:
// an unavailable upstream yields an empty dataset.
type Fetcher interface {
	FetchOrEmpty(ctx context.Context) []models.CountryRecord
	State() source.State
}

type Handlers struct {
	source Fetcher
	charts *chart.Controller
	logger *zap.Logger
}

func New(src Fetcher, charts *chart.Controller, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		source: src,
		charts: charts,
		logger: logger.Named("handlers"),
	}
}

type selection struct {
	mode    models.ViewMode
	region  models.RegionFilter
	display view.Display
	focus   string
}

func parseSelection(r *http.Request) (selection, error) {
	q := r.URL.Query()

	mode, err := models.ParseViewMode(q.Get("view"))
	if err != nil {
		return selection{}, err
	}

	return selection{
		mode:    mode,
		region:  models.ParseRegionFilter(q.Get("region")),
		display: view.ParseDisplay(q.Get("display")),
		focus:   q.Get("focus"),
	}, nil
}

func (h *Handlers) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")

	encoder := json.NewEncoder(w)
	if r.URL.Query().Get("pretty") == "true" {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(v); err != nil {
		h.logger.Error("Error encoding response", zap.String("path", r.URL.Path), zap.Error(err))
	}
}
