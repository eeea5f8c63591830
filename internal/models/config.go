// Package models - Service configuration and operational settings.
//
// Configuration Philosophy:
// - Hierarchical configuration with logical grouping (server, rate limit,
//   storage, logging, metrics, observability)
// - Environment-friendly defaults that work out of the box
// - Comprehensive validation to catch misconfigurations early
// - YAML-serializable so a config file and env overrides share one shape
package models

import (
	"errors"
	"fmt"
	"time"
)

// Rate limiting strategy constants.
const (
	RateLimitStrategySlidingWindow = "sliding_window"
	RateLimitStrategyTokenBucket   = "token_bucket"
)

// Config is the root configuration structure containing all service settings.
type Config struct {
	Server        ServerConfig        `yaml:"server" json:"server"`               // HTTP server configuration
	RateLimit     RateLimitConfig     `yaml:"rate_limit" json:"rate_limit"`       // Per-client request throttling
	Storage       StorageConfig       `yaml:"storage" json:"storage"`             // In-memory store settings
	Logging       LoggingConfig       `yaml:"logging" json:"logging"`             // Structured logging
	Metrics       MetricsConfig       `yaml:"metrics" json:"metrics"`             // Prometheus metrics endpoint
	Observability ObservabilityConfig `yaml:"observability" json:"observability"` // Tracing and service identity
}

type ServerConfig struct {
	Port         int           `yaml:"port" json:"port"`
	Host         string        `yaml:"host" json:"host"`
	ReadTimeout  time.Duration `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" json:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" json:"idle_timeout"`
	CORS         CORSConfig    `yaml:"cors" json:"cors"`
}

type CORSConfig struct {
	Enabled        bool     `yaml:"enabled" json:"enabled"`
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods" json:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers" json:"allowed_headers"`
	MaxAge         int      `yaml:"max_age" json:"max_age"`
}

// RateLimitConfig bounds how many requests a single client identity may issue
// inside a rolling window.
//
// Window and MaxRequests are overridable via the RATE_LIMIT_WINDOW (ms) and
// RATE_LIMIT_MAX environment variables. BurstSize applies only to the
// token_bucket strategy; the sliding_window strategy admits exactly
// MaxRequests per Window with per-request recomputation.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled" json:"enabled"`
	Strategy        string        `yaml:"strategy" json:"strategy"`
	Window          time.Duration `yaml:"window" json:"window"`
	MaxRequests     int           `yaml:"max_requests" json:"max_requests"`
	BurstSize       int           `yaml:"burst_size" json:"burst_size"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" json:"cleanup_interval"`
}

// StorageConfig controls the in-memory store. Data lives for the process
// lifetime only; persistence across restarts is out of scope.
type StorageConfig struct {
	Seed bool `yaml:"seed" json:"seed"` // load the sample catalog at startup
}

type LoggingConfig struct {
	Level    string `yaml:"level" json:"level"`
	Format   string `yaml:"format" json:"format"`
	Output   string `yaml:"output" json:"output"`
	FilePath string `yaml:"file_path" json:"file_path"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Path    string `yaml:"path" json:"path"`
	Port    int    `yaml:"port" json:"port"`
}

type ObservabilityConfig struct {
	ServiceName string        `yaml:"service_name" json:"service_name"`
	Tracing     TracingConfig `yaml:"tracing" json:"tracing"`
}

type TracingConfig struct {
	Enabled    bool    `yaml:"enabled" json:"enabled"`
	Exporter   string  `yaml:"exporter" json:"exporter"` // stdout or otlp
	Endpoint   string  `yaml:"endpoint" json:"endpoint"` // otlp collector address
	SampleRate float64 `yaml:"sample_rate" json:"sample_rate"`
}

// NewDefaultConfig creates a configuration with defaults that work without
// any file or environment input.
//
// Default Values Rationale:
// - Port 8080: standard non-privileged HTTP port
// - Rate limit 100 requests / 15 minutes: the documented product default
// - Sliding window strategy: exact per-request accounting, no approximation
// - 5 minute cleanup interval: bounds idle-identity memory without measurable
//   overhead per request
// - JSON logs to stdout: friendly to log aggregation
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         8080,
			Host:         "0.0.0.0",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
			CORS: CORSConfig{
				Enabled:        true,
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowedHeaders: []string{"*"},
				MaxAge:         86400,
			},
		},
		RateLimit: RateLimitConfig{
			Enabled:         true,
			Strategy:        RateLimitStrategySlidingWindow,
			Window:          15 * time.Minute,
			MaxRequests:     100,
			BurstSize:       10,
			CleanupInterval: 5 * time.Minute,
		},
		Storage: StorageConfig{
			Seed: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
			Port:    9090,
		},
		Observability: ObservabilityConfig{
			ServiceName: "booklib",
			Tracing: TracingConfig{
				Enabled:    false,
				Exporter:   "stdout",
				SampleRate: 1.0,
			},
		},
	}
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}

	if err := c.RateLimit.Validate(); err != nil {
		return fmt.Errorf("invalid rate limit config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("invalid logging config: %w", err)
	}

	if err := c.Metrics.Validate(); err != nil {
		return fmt.Errorf("invalid metrics config: %w", err)
	}

	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("invalid observability config: %w", err)
	}

	return nil
}

func (sc *ServerConfig) Validate() error {
	if sc.Port < 1 || sc.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", sc.Port)
	}

	if sc.Host == "" {
		return errors.New("host cannot be empty")
	}

	if sc.ReadTimeout <= 0 {
		return errors.New("read timeout must be positive")
	}

	if sc.WriteTimeout <= 0 {
		return errors.New("write timeout must be positive")
	}

	return nil
}

func (rc *RateLimitConfig) Validate() error {
	if !rc.Enabled {
		return nil
	}

	switch rc.Strategy {
	case RateLimitStrategySlidingWindow, RateLimitStrategyTokenBucket:
	default:
		return fmt.Errorf("unsupported rate limit strategy: %s", rc.Strategy)
	}

	if rc.Window <= 0 {
		return errors.New("window must be positive")
	}

	if rc.MaxRequests <= 0 {
		return errors.New("max_requests must be positive")
	}

	if rc.Strategy == RateLimitStrategyTokenBucket && rc.BurstSize <= 0 {
		return errors.New("burst_size must be positive for the token_bucket strategy")
	}

	if rc.CleanupInterval <= 0 {
		return errors.New("cleanup_interval must be positive")
	}

	return nil
}

func (lc *LoggingConfig) Validate() error {
	switch lc.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level: %s", lc.Level)
	}

	switch lc.Format {
	case "json", "text":
	default:
		return fmt.Errorf("unsupported log format: %s", lc.Format)
	}

	if lc.Output == "file" && lc.FilePath == "" {
		return errors.New("file_path is required when output is file")
	}

	return nil
}

func (mc *MetricsConfig) Validate() error {
	if !mc.Enabled {
		return nil
	}

	if mc.Port < 1 || mc.Port > 65535 {
		return fmt.Errorf("metrics port must be between 1 and 65535, got %d", mc.Port)
	}

	if mc.Path == "" {
		return errors.New("metrics path cannot be empty")
	}

	return nil
}

func (oc *ObservabilityConfig) Validate() error {
	if oc.ServiceName == "" {
		return errors.New("service_name cannot be empty")
	}

	if oc.Tracing.Enabled {
		switch oc.Tracing.Exporter {
		case "stdout", "otlp":
		default:
			return fmt.Errorf("unsupported tracing exporter: %s", oc.Tracing.Exporter)
		}

		if oc.Tracing.Exporter == "otlp" && oc.Tracing.Endpoint == "" {
			return errors.New("endpoint is required for the otlp exporter")
		}

		if oc.Tracing.SampleRate < 0 || oc.Tracing.SampleRate > 1 {
			return fmt.Errorf("sample_rate must be between 0 and 1, got %f", oc.Tracing.SampleRate)
		}
	}

	return nil
}
