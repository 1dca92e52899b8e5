package session

import (
	"github.com/rs/zerolog"

	"github.com/dfgHiatus/LinuxProEye/internal/domain"
)

// DefaultRequiredStreams are subscribed by Subscribe unless overridden
var DefaultRequiredStreams = []domain.StreamKind{
	domain.StreamUserPositionGuide,
	domain.StreamWearableConsumer,
}

// Option configures a Manager
type Option func(*Manager)

// WithIntegrationType sets the integration type a device must report to be
// selected. Defaults to "HMD".
func WithIntegrationType(integrationType string) Option {
	return func(m *Manager) {
		m.integrationType = integrationType
	}
}

// WithRequiredStreams replaces the streams Subscribe registers, in order
func WithRequiredStreams(kinds ...domain.StreamKind) Option {
	return func(m *Manager) {
		m.required = append([]domain.StreamKind(nil), kinds...)
	}
}

// WithLogger sets the logger; defaults to the global zerolog logger
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}
