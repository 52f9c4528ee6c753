// Package config loads the explorer configuration.
//
// Values come from Default, then an optional YAML file, then environment
// variables:
//   - WORLDVIEW_ADDR
//   - WORLDVIEW_SOURCE_URL
//   - WORLDVIEW_SOURCE_TIMEOUT
//   - WORLDVIEW_LOG_LEVEL
//   - WORLDVIEW_LOG_FORMAT
//   - CORS_ALLOWED_ORIGIN
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/terrascope/worldview/internal/logging"
)

// DefaultSourceURL requests only the fields the explorer displays.
const DefaultSourceURL = "https://restcountries.com/v3.1/all?fields=name,population,area,region,capital,languages,currencies,flags"

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type SourceConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

type CORSConfig struct {
	AllowedOrigin string `yaml:"allowed_origin"`
}

type Config struct {
	Server ServerConfig   `yaml:"server"`
	Source SourceConfig   `yaml:"source"`
	CORS   CORSConfig     `yaml:"cors"`
	Log    logging.Config `yaml:"log"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Source: SourceConfig{
			URL:     DefaultSourceURL,
			Timeout: 15 * time.Second,
		},
		CORS: CORSConfig{AllowedOrigin: "*"},
		Log:  logging.Config{Level: "info", Format: "json"},
	}
}

// Load reads path (if non-empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Server.Addr = getEnv("WORLDVIEW_ADDR", c.Server.Addr)
	c.Source.URL = getEnv("WORLDVIEW_SOURCE_URL", c.Source.URL)
	c.Log.Level = getEnv("WORLDVIEW_LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("WORLDVIEW_LOG_FORMAT", c.Log.Format)
	c.CORS.AllowedOrigin = getEnv("CORS_ALLOWED_ORIGIN", c.CORS.AllowedOrigin)

	if raw := os.Getenv("WORLDVIEW_SOURCE_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid WORLDVIEW_SOURCE_TIMEOUT: %w", err)
		}
		c.Source.Timeout = d
	}

	return nil
}

func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("invalid config: missing server.addr")
	}

	u, err := url.Parse(c.Source.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid config: source.url must be an http(s) URL, got %q", c.Source.URL)
	}

	if c.Source.Timeout <= 0 {
		return fmt.Errorf("invalid config: source.timeout must be positive")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
