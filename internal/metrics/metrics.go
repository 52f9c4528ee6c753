// Package metrics holds the Prometheus collectors for the explorer and the
// HTTP middleware that feeds them.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the explorer metrics. A nil *Collector is valid and
// records nothing.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	Fetches        *prometheus.CounterVec
	FetchDuration  prometheus.Histogram
	FetchedRecords prometheus.Gauge

	ChartReplacements prometheus.Counter
	LiveCharts        prometheus.Gauge
}

// New registers the collectors against reg, defaulting to the global
// Prometheus registry when nil.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{gatherer: gatherer}
	var err error

	if c.HTTPRequests, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "worldview_http_requests_total",
		Help: "HTTP requests handled, labeled by route pattern and status code.",
	}, []string{"route", "code"}), "worldview_http_requests_total"); err != nil {
		return nil, err
	}

	if c.HTTPDurations, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "worldview_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"}), "worldview_http_request_duration_seconds"); err != nil {
		return nil, err
	}

	if c.Fetches, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "worldview_fetches_total",
		Help: "Country dataset fetches, labeled by result (ok or error).",
	}, []string{"result"}), "worldview_fetches_total"); err != nil {
		return nil, err
	}

	if c.FetchDuration, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "worldview_fetch_duration_seconds",
		Help:    "Country dataset fetch latency in seconds.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	}), "worldview_fetch_duration_seconds"); err != nil {
		return nil, err
	}

	if c.FetchedRecords, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "worldview_fetched_records",
		Help: "Number of country records returned by the last fetch.",
	}), "worldview_fetched_records"); err != nil {
		return nil, err
	}

	if c.ChartReplacements, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "worldview_chart_replacements_total",
		Help: "Charts installed by the render controller.",
	}), "worldview_chart_replacements_total"); err != nil {
		return nil, err
	}

	if c.LiveCharts, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "worldview_live_charts",
		Help: "Charts currently held by the render controller.",
	}), "worldview_live_charts"); err != nil {
		return nil, err
	}

	return c, nil
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Middleware records request counts and durations keyed by chi route pattern.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c == nil {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		c.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		c.HTTPDurations.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

func (c *Collector) ObserveFetch(d time.Duration, records int, err error) {
	if c == nil {
		return
	}
	c.FetchDuration.Observe(d.Seconds())
	if err != nil {
		c.Fetches.WithLabelValues("error").Inc()
		return
	}
	c.Fetches.WithLabelValues("ok").Inc()
	c.FetchedRecords.Set(float64(records))
}

func (c *Collector) ChartReplaced(live int) {
	if c == nil {
		return
	}
	c.ChartReplacements.Inc()
	c.LiveCharts.Set(float64(live))
}

func (c *Collector) ChartReleased(live int) {
	if c == nil {
		return
	}
	c.LiveCharts.Set(float64(live))
}

func register[T prometheus.Collector](reg prometheus.Registerer, collector T, name string) (T, error) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		var zero T
		return zero, err
	}
	return collector, nil
}
