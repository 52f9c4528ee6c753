package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/terrascope/worldview/cmd/api/middleware"
	"github.com/terrascope/worldview/internal/handlers"
	"github.com/terrascope/worldview/internal/metrics"
)

func newRouter(h *handlers.Handlers, collector *metrics.Collector, logger *zap.Logger, corsOrigin string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(logger))
	r.Use(collector.Middleware)
	r.Use(middleware.Cors(corsOrigin))

	r.Get("/", h.Explore)
	r.Get("/explore", h.Explore)
	r.Get("/chart.svg", h.ChartSVG)
	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", collector.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/countries", h.Countries)
		r.Get("/chart", h.Chart)
	})

	return r
}
