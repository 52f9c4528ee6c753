// Package chart renders chart specifications as SVG bar charts and owns the
// single current chart through Controller.
package chart

import (
	"bytes"
	"sync"

	"go.uber.org/zap"

	"github.com/terrascope/worldview/internal/metrics"
	"github.com/terrascope/worldview/internal/models"
)

// Chart is one rendered chart. Its SVG is never modified after creation.
type Chart struct {
	ID    uint64
	Title string
	SVG   []byte
}

// Controller owns the current chart. Replace releases the previous chart
// before installing the next, so at most one is live at a time.
type Controller struct {
	opts    Options
	logger  *zap.Logger
	metrics *metrics.Collector

	mu      sync.Mutex
	current *Chart
	nextID  uint64
}

func NewController(opts Options, logger *zap.Logger, collector *metrics.Collector) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		opts:    opts,
		logger:  logger.Named("chart"),
		metrics: collector,
	}
}

func (c *Controller) Replace(spec models.ChartSpec) (Chart, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.releaseLocked()

	var buf bytes.Buffer
	if err := Render(&buf, spec, c.opts); err != nil {
		return Chart{}, err
	}

	c.nextID++
	c.current = &Chart{ID: c.nextID, Title: spec.Title, SVG: buf.Bytes()}
	c.metrics.ChartReplaced(1)
	c.logger.Debug("chart installed",
		zap.Uint64("id", c.current.ID),
		zap.String("title", spec.Title),
		zap.Int("bars", len(spec.Labels)))

	return *c.current, nil
}

func (c *Controller) Current() (Chart, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return Chart{}, false
	}
	return *c.current, true
}

func (c *Controller) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.releaseLocked()
}

func (c *Controller) releaseLocked() {
	if c.current == nil {
		return
	}
	c.logger.Debug("chart released", zap.Uint64("id", c.current.ID))
	c.current = nil
	c.metrics.ChartReleased(0)
}
