package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so defaults apply
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PORT", "WS_ADDR", "POLL_TIMEOUT", "POLL_INTERVAL", "MAX_POLL_FAILURES", "RETENTION",
		"REPO_TYPE", "DB_PATH", "MEMORY_MAX_SAMPLES", "DRIVER_TYPE", "REPLAY_PATH", "REPLAY_LOOP", "CAPTURE_PATH",
		"INTEGRATION_TYPE", "TLS_CERT", "TLS_KEY", "TLS_CA", "LOG_LEVEL",
	} {
		t.Setenv(name, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "50051", cfg.Port)
	assert.Equal(t, ":8081", cfg.WSAddr)
	assert.Equal(t, 100*time.Millisecond, cfg.PollTimeout)
	assert.Equal(t, 10*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 50, cfg.MaxPollFailures)
	assert.Equal(t, 720*time.Hour, cfg.Retention)
	assert.Equal(t, "memory", cfg.RepoType)
	assert.Equal(t, "./gaze.db", cfg.DBPath)
	assert.Equal(t, 100000, cfg.MemoryMaxSamples)
	assert.Equal(t, "mock", cfg.DriverType)
	assert.Equal(t, "HMD", cfg.IntegrationType)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
	assert.False(t, cfg.TLSEnabled())
	assert.True(t, cfg.WebsocketEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "6000")
	t.Setenv("WS_ADDR", "off")
	t.Setenv("POLL_TIMEOUT", "250ms")
	t.Setenv("MAX_POLL_FAILURES", "0")
	t.Setenv("REPO_TYPE", "sqlite")
	t.Setenv("DB_PATH", "/var/lib/gaze.db")
	t.Setenv("DRIVER_TYPE", "replay")
	t.Setenv("REPLAY_PATH", "/tmp/session.cbor")
	t.Setenv("REPLAY_LOOP", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "6000", cfg.Port)
	assert.False(t, cfg.WebsocketEnabled())
	assert.Equal(t, 250*time.Millisecond, cfg.PollTimeout)
	assert.Equal(t, 0, cfg.MaxPollFailures)
	assert.Equal(t, "sqlite", cfg.RepoType)
	assert.Equal(t, "/var/lib/gaze.db", cfg.DBPath)
	assert.Equal(t, "replay", cfg.DriverType)
	assert.Equal(t, "/tmp/session.cbor", cfg.ReplayPath)
	assert.True(t, cfg.ReplayLoop)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("REPO_TYPE", "postgres")

	_, err := Load()
	assert.ErrorContains(t, err, "REPO_TYPE")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			PollTimeout:      100 * time.Millisecond,
			PollInterval:     10 * time.Millisecond,
			Retention:        time.Hour,
			RepoType:         "memory",
			MemoryMaxSamples: 10,
			DriverType:       "mock",
			IntegrationType:  "HMD",
			LogLevel:         "info",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero poll timeout", func(c *Config) { c.PollTimeout = 0 }, "POLL_TIMEOUT"},
		{"negative interval", func(c *Config) { c.PollInterval = -time.Second }, "POLL_INTERVAL"},
		{"zero retention", func(c *Config) { c.Retention = 0 }, "RETENTION"},
		{"negative failures", func(c *Config) { c.MaxPollFailures = -1 }, "MAX_POLL_FAILURES"},
		{"unbounded memory repo", func(c *Config) { c.MemoryMaxSamples = 0 }, "MEMORY_MAX_SAMPLES"},
		{"sqlite ignores memory cap", func(c *Config) { c.RepoType = "sqlite"; c.MemoryMaxSamples = 0 }, ""},
		{"unknown driver", func(c *Config) { c.DriverType = "usb" }, "DRIVER_TYPE"},
		{"replay without path", func(c *Config) { c.DriverType = "replay" }, "REPLAY_PATH"},
		{"empty integration", func(c *Config) { c.IntegrationType = "" }, "INTEGRATION_TYPE"},
		{"partial tls", func(c *Config) { c.TLSCert = "cert.pem" }, "TLS_KEY"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
