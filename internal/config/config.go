// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/rs/zerolog"
)

// Disabled turns off an optional listener when used as its address
const Disabled = "off"

// Config holds application configuration
type Config struct {
	// Port of the gRPC server. ENV: PORT
	Port string `env:"PORT,default=50051"`
	// WSAddr of the websocket server, or "off". ENV: WS_ADDR
	WSAddr string `env:"WS_ADDR,default=:8081"`

	PollTimeout     time.Duration `env:"POLL_TIMEOUT,default=100ms"`
	PollInterval    time.Duration `env:"POLL_INTERVAL,default=10ms"`
	MaxPollFailures int           `env:"MAX_POLL_FAILURES,default=50"`
	Retention       time.Duration `env:"RETENTION,default=720h"`

	RepoType string `env:"REPO_TYPE,default=memory"` // "memory" | "sqlite"
	DBPath   string `env:"DB_PATH,default=./gaze.db"`
	// MemoryMaxSamples caps the in-memory repository; the oldest samples are evicted first
	MemoryMaxSamples int `env:"MEMORY_MAX_SAMPLES,default=100000"`

	DriverType string `env:"DRIVER_TYPE,default=mock"` // "mock" | "replay"
	ReplayPath string `env:"REPLAY_PATH"`
	ReplayLoop bool   `env:"REPLAY_LOOP,default=false"`
	// CapturePath records every sample to a capture file when set
	CapturePath string `env:"CAPTURE_PATH"`

	IntegrationType string `env:"INTEGRATION_TYPE,default=HMD"`

	TLSCert string `env:"TLS_CERT"` // path to this service's certificate
	TLSKey  string `env:"TLS_KEY"`  // path to this service's private key
	TLSCA   string `env:"TLS_CA"`   // path to the CA certificate

	LogLevel string `env:"LOG_LEVEL,default=info"`
}

// Load reads configuration from environment variables and validates it
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot run with
func (c Config) Validate() error {
	var errs []error

	if c.PollTimeout <= 0 {
		errs = append(errs, fmt.Errorf("POLL_TIMEOUT must be positive, got %s", c.PollTimeout))
	}
	if c.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("POLL_INTERVAL must be positive, got %s", c.PollInterval))
	}
	if c.Retention <= 0 {
		errs = append(errs, fmt.Errorf("RETENTION must be positive, got %s", c.Retention))
	}
	if c.MaxPollFailures < 0 {
		errs = append(errs, fmt.Errorf("MAX_POLL_FAILURES must not be negative, got %d", c.MaxPollFailures))
	}

	switch c.RepoType {
	case "memory":
		if c.MemoryMaxSamples <= 0 {
			errs = append(errs, fmt.Errorf("MEMORY_MAX_SAMPLES must be positive, got %d", c.MemoryMaxSamples))
		}
	case "sqlite":
	default:
		errs = append(errs, fmt.Errorf("unknown REPO_TYPE %q", c.RepoType))
	}

	switch c.DriverType {
	case "mock":
	case "replay":
		if c.ReplayPath == "" {
			errs = append(errs, errors.New("DRIVER_TYPE=replay requires REPLAY_PATH"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown DRIVER_TYPE %q", c.DriverType))
	}

	if c.IntegrationType == "" {
		errs = append(errs, errors.New("INTEGRATION_TYPE must not be empty"))
	}

	if c.TLSEnabled() && (c.TLSKey == "" || c.TLSCA == "") {
		errs = append(errs, errors.New("TLS_CERT requires TLS_KEY and TLS_CA"))
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	return errors.Join(errs...)
}

// TLSEnabled reports whether the gRPC server should use mTLS
func (c Config) TLSEnabled() bool {
	return c.TLSCert != ""
}

// WebsocketEnabled reports whether the live stream should be served
func (c Config) WebsocketEnabled() bool {
	return c.WSAddr != "" && c.WSAddr != Disabled
}

// Level returns the configured log level
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
