// Package source fetches the country dataset from the upstream API.
//
// Any failure (transport error, non-success status, undecodable body) is a
// *FetchError. FetchOrEmpty is the boundary used by handlers: it logs the
// failure and hands the caller an empty dataset instead.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/terrascope/worldview/internal/config"
	"github.com/terrascope/worldview/internal/metrics"
	"github.com/terrascope/worldview/internal/models"
	"github.com/terrascope/worldview/internal/parser"
)

const maxBodyBytes = 32 << 20

type State int32

const (
	Idle State = iota
	Fetching
)

func (s State) String() string {
	if s == Fetching {
		return "fetching"
	}
	return "idle"
}

// FetchError reports a failed dataset fetch.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client fetches the dataset. Concurrent callers share one in-flight request;
// nothing is kept once it completes.
type Client struct {
	url     string
	timeout time.Duration
	http    *http.Client
	logger  *zap.Logger
	metrics *metrics.Collector

	group singleflight.Group
	state atomic.Int32
}

func New(cfg config.SourceConfig, logger *zap.Logger, collector *metrics.Collector) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		url:     cfg.URL,
		timeout: cfg.Timeout,
		http:    &http.Client{},
		logger:  logger.Named("source"),
		metrics: collector,
	}
}

func (c *Client) State() State {
	return State(c.state.Load())
}

// Fetch returns the decoded dataset. The request outlives a cancelled caller
// so other callers joined on it still get a result.
func (c *Client) Fetch(ctx context.Context) ([]models.CountryRecord, error) {
	ch := c.group.DoChan("countries", func() (any, error) {
		return c.fetch(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, &FetchError{URL: c.url, Err: ctx.Err()}
	case res := <-ch:
		if res.Shared {
			c.logger.Debug("joined in-flight fetch")
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]models.CountryRecord), nil
	}
}

// FetchOrEmpty never fails: a fetch error is logged and yields no records.
func (c *Client) FetchOrEmpty(ctx context.Context) []models.CountryRecord {
	records, err := c.Fetch(ctx)
	if err != nil {
		c.logger.Warn("country fetch failed, continuing with empty dataset", zap.Error(err))
		return []models.CountryRecord{}
	}
	return records
}

func (c *Client) fetch(ctx context.Context) (records []models.CountryRecord, err error) {
	c.state.Store(int32(Fetching))
	start := time.Now()
	defer func() {
		c.state.Store(int32(Idle))
		c.metrics.ObserveFetch(time.Since(start), len(records), err)
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("fetching countries", zap.String("url", c.url))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &FetchError{URL: c.url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	records, err = parser.ParseCountries(body)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}

	c.logger.Info("fetched countries",
		zap.Int("records", len(records)),
		zap.Duration("took", time.Since(start)))

	return records, nil
}
