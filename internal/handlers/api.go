// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/terrascope/worldview/internal/models"
	"github.com/terrascope/worldview/internal/parser"
)

type CountriesResponse struct {
	Mode   models.ViewMode     `json:"mode"`
	Region models.RegionFilter `json:"region"`
	Total  int                 `json:"total"`
	Groups []models.Group      `json:"groups"`
	Cards  []models.CardGroup  `json:"cards"`
}

func (h *Handlers) Countries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sel, err := parseSelection(r)
	if err != nil {
		http.Error(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	result := h.shape(r, sel)

	h.writeJSON(w, r, CountriesResponse{
		Mode:   result.Mode,
		Region: result.Region,
		Total:  len(result.Records()),
		Groups: result.Groups,
		Cards:  parser.FormatCards(result),
	})
}

func (h *Handlers) Chart(w http.ResponseWriter, r *http.Request) {
	spec, ok := h.chartSpec(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, r, spec)
}

// ChartSVG renders through the controller, replacing the current chart.
func (h *Handlers) ChartSVG(w http.ResponseWriter, r *http.Request) {
	spec, ok := h.chartSpec(w, r)
	if !ok {
		return
	}

	rendered, err := h.charts.Replace(spec)
	if err != nil {
		h.logger.Error("chart render failed", zap.Error(err))
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Chart-Id", strconv.FormatUint(rendered.ID, 10))
	if _, err := w.Write(rendered.SVG); err != nil {
		h.logger.Debug("client went away", zap.Error(err))
	}
}

func (h *Handlers) chartSpec(w http.ResponseWriter, r *http.Request) (models.ChartSpec, bool) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return models.ChartSpec{}, false
	}

	sel, err := parseSelection(r)
	if err != nil {
		http.Error(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return models.ChartSpec{}, false
	}

	spec, err := parser.BuildChartSpec(h.shape(r, sel), sel.focus)
	if errors.Is(err, parser.ErrUnknownGroup) {
		http.Error(w, "Unknown group: "+sel.focus, http.StatusNotFound)
		return models.ChartSpec{}, false
	}
	if err != nil {
		http.Error(w, "Failed to build chart", http.StatusInternalServerError)
		return models.ChartSpec{}, false
	}

	return spec, true
}
