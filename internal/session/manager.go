package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dfgHiatus/LinuxProEye/internal/domain"
	"github.com/dfgHiatus/LinuxProEye/internal/ports"
)

// Manager owns one device handle, its API context and its subscriptions
type Manager struct {
	driver          ports.Driver
	integrationType string
	required        []domain.StreamKind
	logger          zerolog.Logger

	// mu serializes lifecycle transitions and every driver call on the handle
	mu     sync.Mutex
	state  State
	apiCtx domain.ContextID
	handle domain.DeviceHandle
	device domain.DeviceDescriptor
	id     string
	// subs holds active subscriptions in subscription order
	subs []domain.StreamKind

	sample atomic.Pointer[domain.GazeSample]
}

// New creates an unopened session manager for driver
func New(driver ports.Driver, opts ...Option) *Manager {
	m := &Manager{
		driver:          driver,
		integrationType: domain.IntegrationHMD,
		required:        append([]domain.StreamKind(nil), DefaultRequiredStreams...),
		logger:          log.Logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With().Str("component", "session").Logger()
	m.sample.Store(&domain.GazeSample{})
	return m
}

// Open creates a driver context and selects the first enumerated device
// whose integration type matches. Candidates that fail to open or do not
// match are closed and skipped. Any failure is terminal for the session.
func (m *Manager) Open(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateUnopened:
	case StateClosed:
		return domain.ErrSessionClosed
	default:
		return domain.ErrAlreadyOpen
	}
	m.state = StateOpening

	apiCtx, err := m.driver.CreateContext()
	if err != nil {
		m.state = StateClosed
		m.logger.Error().Err(err).Msg("could not create driver context")
		return fmt.Errorf("%w: %w", domain.ErrAdapterUnavailable, err)
	}

	handle, device, err := m.selectDevice(ctx, apiCtx)
	if err != nil {
		m.destroyContext(apiCtx)
		m.state = StateClosed
		m.logger.Error().Err(err).Str("integration_type", m.integrationType).Msg("device selection failed")
		return err
	}

	m.apiCtx = apiCtx
	m.handle = handle
	m.device = device
	m.id = uuid.NewString()
	m.logger = m.logger.With().Str("session_id", m.id).Logger()
	m.state = StateOpened

	m.logger.Info().
		Str("device", device.URL).
		Str("name", device.Name).
		Str("serial", device.SerialNumber).
		Str("firmware", device.FirmwareVersion).
		Msg("eye tracker selected")

	return nil
}

// selectDevice opens candidates in enumeration order until one matches.
// The enumeration order is only used as iteration sequence.
func (m *Manager) selectDevice(ctx context.Context, apiCtx domain.ContextID) (domain.DeviceHandle, domain.DeviceDescriptor, error) {
	ids, err := m.driver.EnumerateDeviceIDs(apiCtx)
	if err != nil {
		return 0, domain.DeviceDescriptor{}, fmt.Errorf("%w: %w", domain.ErrNoDeviceFound, err)
	}
	if len(ids) == 0 {
		return 0, domain.DeviceDescriptor{}, domain.ErrNoDeviceFound
	}

	var lastErr error
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return 0, domain.DeviceDescriptor{}, err
		}

		handle, err := m.driver.OpenDevice(apiCtx, id)
		if err != nil {
			m.logger.Warn().Err(err).Str("device", id).Msg("could not open candidate device")
			lastErr = err
			continue
		}

		info, err := m.driver.GetDeviceInfo(handle)
		if err != nil {
			m.logger.Warn().Err(err).Str("device", id).Msg("could not read candidate device info")
			lastErr = err
			m.closeDevice(handle, id)
			continue
		}
		if info.URL == "" {
			info.URL = id
		}

		if !info.IsIntegration(m.integrationType) {
			m.logger.Info().
				Str("device", id).
				Str("name", info.Name).
				Str("integration_type", info.IntegrationType).
				Msg("passed over device")
			m.closeDevice(handle, id)
			continue
		}

		return handle, info, nil
	}

	if lastErr != nil {
		return 0, domain.DeviceDescriptor{}, fmt.Errorf("%w: last error: %w", domain.ErrNoMatchingDevice, lastErr)
	}
	return 0, domain.DeviceDescriptor{}, domain.ErrNoMatchingDevice
}

// ListSupportedStreams returns the supported stream kinds in the fixed
// enumeration order. Kinds whose query fails are skipped.
func (m *Manager) ListSupportedStreams() ([]domain.StreamKind, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.hasDevice() {
		return nil, domain.ErrNotOpen
	}

	var supported []domain.StreamKind
	for _, kind := range domain.AllStreamKinds() {
		ok, err := m.driver.IsStreamSupported(m.handle, kind)
		if err != nil {
			m.logger.Warn().Err(err).Stringer("stream", kind).Msg("stream support query failed")
			continue
		}
		if ok {
			m.logger.Debug().Stringer("stream", kind).Msg("device supports stream")
			supported = append(supported, kind)
		}
	}

	return supported, nil
}

// Subscribe registers a callback for every required stream, in order.
// On failure the streams subscribed so far stay active until Unsubscribe
// or Close.
func (m *Manager) Subscribe() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateOpened:
	case StateSubscribed:
		return domain.ErrAlreadySubscribed
	default:
		return domain.ErrNotOpen
	}

	for _, kind := range m.required {
		if err := m.driver.Subscribe(m.handle, kind, m.handleStreamData); err != nil {
			m.logger.Error().Err(err).Stringer("stream", kind).Msg("could not subscribe")
			if len(m.subs) > 0 {
				m.state = StateSubscribed
			}
			return &domain.SubscribeError{Kind: kind, Err: err}
		}
		m.subs = append(m.subs, kind)
		m.logger.Debug().Stringer("stream", kind).Msg("subscribed")
	}

	m.state = StateSubscribed
	return nil
}

// Unsubscribe removes every active subscription in reverse order. Streams
// whose unsubscribe fails stay tracked so Close still tears them down.
func (m *Manager) Unsubscribe() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.hasDevice() {
		return domain.ErrNotOpen
	}

	var errs []error
	var remaining []domain.StreamKind
	for i := len(m.subs) - 1; i >= 0; i-- {
		kind := m.subs[i]
		if err := m.driver.Unsubscribe(m.handle, kind); err != nil {
			errs = append(errs, fmt.Errorf("unsubscribe %s: %w", kind, err))
			remaining = append(remaining, kind)
			continue
		}
		m.logger.Debug().Stringer("stream", kind).Msg("unsubscribed")
	}
	slices.Reverse(remaining)
	m.subs = remaining

	if len(m.subs) == 0 {
		m.state = StateOpened
	}
	return errors.Join(errs...)
}

// Poll waits up to timeout for new data, then dispatches buffered samples
// through the registered callbacks. A timeout is not an error. Hard driver
// errors come back as *domain.PollError and leave the session open.
func (m *Manager) Poll(ctx context.Context, timeout time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateSubscribed {
		return domain.ErrNotReady
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		timeout = min(timeout, time.Until(deadline))
	}
	timeout = max(timeout, 0)

	if err := m.driver.WaitForData(m.handle, timeout); err != nil && !errors.Is(err, ports.ErrWaitTimeout) {
		return &domain.PollError{Cause: fmt.Errorf("wait for data: %w", err)}
	}

	if err := m.driver.DispatchCallbacks(m.handle); err != nil {
		return &domain.PollError{Cause: fmt.Errorf("dispatch callbacks: %w", err)}
	}

	return nil
}

// LatestSample returns a copy of the most recent sample. It never blocks.
func (m *Manager) LatestSample() domain.GazeSample {
	return *m.sample.Load()
}

// handleStreamData is the callback registered for every stream. It runs on
// the goroutine driving Poll.
func (m *Manager) handleStreamData(data ports.StreamData) {
	prev := m.LatestSample()

	var next domain.GazeSample
	switch d := data.(type) {
	case ports.PositionGuideData:
		next = TransformPositionGuide(prev, d)
	case *ports.PositionGuideData:
		next = TransformPositionGuide(prev, *d)
	case ports.WearableConsumerData:
		next = ApplyWearable(prev, d)
	case *ports.WearableConsumerData:
		next = ApplyWearable(prev, *d)
	default:
		if data != nil {
			m.logger.Debug().Stringer("stream", data.Stream()).Msg("ignoring sample from unhandled stream")
		}
		return
	}

	next.Sequence = prev.Sequence + 1
	next.ReceivedAt = time.Now()
	m.sample.Store(&next)
}

// Close unsubscribes every active stream, closes the device and destroys
// the driver context. Every step runs even if an earlier one failed;
// failures are only logged. Calling Close again is a no-op.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateClosed {
		return
	}

	if m.state.hasDevice() {
		for i := len(m.subs) - 1; i >= 0; i-- {
			kind := m.subs[i]
			if err := m.driver.Unsubscribe(m.handle, kind); err != nil {
				m.logger.Error().Err(err).Stringer("stream", kind).Msg("could not unsubscribe during teardown")
			}
		}
		m.closeDevice(m.handle, m.device.URL)
		m.destroyContext(m.apiCtx)
	}

	m.subs = nil
	m.handle = 0
	m.apiCtx = 0
	m.state = StateClosed

	m.logger.Info().Msg("session closed")
}

func (m *Manager) closeDevice(handle domain.DeviceHandle, id string) {
	if err := m.driver.CloseDevice(handle); err != nil {
		m.logger.Error().Err(err).Str("device", id).Msg("could not close device")
	}
}

func (m *Manager) destroyContext(apiCtx domain.ContextID) {
	if err := m.driver.DestroyContext(apiCtx); err != nil {
		m.logger.Error().Err(err).Msg("could not destroy driver context")
	}
}

// State returns the current lifecycle phase
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// SessionID returns the identifier assigned by Open, or "" before that
func (m *Manager) SessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id
}

// Device returns the descriptor of the selected device
func (m *Manager) Device() (domain.DeviceDescriptor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.hasDevice() {
		return domain.DeviceDescriptor{}, domain.ErrNotOpen
	}
	return m.device, nil
}

// Subscriptions returns the active subscriptions in subscription order
func (m *Manager) Subscriptions() []domain.StreamSubscription {
	m.mu.Lock()
	defer m.mu.Unlock()

	subs := make([]domain.StreamSubscription, len(m.subs))
	for i, kind := range m.subs {
		subs[i] = domain.StreamSubscription{Kind: kind, Active: true}
	}
	return subs
}
