// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/terrascope/worldview/internal/models"
	"github.com/terrascope/worldview/internal/parser"
	"github.com/terrascope/worldview/internal/view"
)

// Explore renders the HTML page for one explore action. An unknown focus
// falls back to the chart of the whole result.
func (h *Handlers) Explore(w http.ResponseWriter, r *http.Request) {
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

	spec, err := parser.BuildChartSpec(result, sel.focus)
	if errors.Is(err, parser.ErrUnknownGroup) {
		h.logger.Debug("ignoring unknown focus", zap.String("focus", sel.focus))
		sel.focus = ""
		spec, err = parser.BuildChartSpec(result, "")
	}
	if err != nil {
		http.Error(w, "Failed to build chart", http.StatusInternalServerError)
		return
	}

	rendered, err := h.charts.Replace(spec)
	if err != nil {
		h.logger.Error("chart render failed", zap.Error(err))
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := view.NewPage(result, sel.display, sel.focus, rendered.SVG)
	if err := view.Render(w, page); err != nil {
		h.logger.Error("Error rendering page", zap.Error(err))
	}
}

func (h *Handlers) shape(r *http.Request, sel selection) models.ShapedResult {
	records := h.source.FetchOrEmpty(r.Context())
	result := parser.Shape(records, sel.mode, sel.region)

	h.logger.Debug("shaped countries",
		zap.String("view", string(sel.mode)),
		zap.String("region", string(sel.region)),
		zap.Int("records", len(records)),
		zap.Int("groups", len(result.Groups)))

	return result
}
