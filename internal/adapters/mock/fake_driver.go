package mock

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/dfgHiatus/LinuxProEye/internal/domain"
	"github.com/dfgHiatus/LinuxProEye/internal/ports"
)

var (
	// ErrUnknownContext is returned for a context the driver never issued
	ErrUnknownContext = errors.New("unknown driver context")

	// ErrUnknownHandle is returned for a handle that is not open
	ErrUnknownHandle = errors.New("unknown device handle")

	// ErrUnknownDevice is returned when opening an id that is not attached
	ErrUnknownDevice = errors.New("no such device")

	// ErrNonFiniteSample is returned when an injected sample has NaN or Inf components
	ErrNonFiniteSample = errors.New("sample has non-finite components")
)

// FakeDevice describes one simulated tracker
type FakeDevice struct {
	// Descriptor.URL is the id reported by enumeration
	Descriptor domain.DeviceDescriptor
	Streams    []domain.StreamKind
	// OpenErr makes OpenDevice fail for this device
	OpenErr error
}

// DefaultDevices returns a desktop tracker followed by a VR headset, so the
// headset is only found after passing over the desktop unit
func DefaultDevices() []FakeDevice {
	return []FakeDevice{
		{
			Descriptor: domain.DeviceDescriptor{
				URL:             "tobii-ttp://IS5FF-100203414931",
				Name:            "Tobii Eye Tracker 5",
				IntegrationType: "Peripheral",
				SerialNumber:    "IS5FF-100203414931",
				Model:           "IS5_Gibbon_Gaze",
				Generation:      "IS5",
				FirmwareVersion: "2.27.0-4014386",
			},
			Streams: []domain.StreamKind{domain.StreamGazePoint, domain.StreamGazeOrigin, domain.StreamUserPresence, domain.StreamHeadPose},
		},
		{
			Descriptor: domain.DeviceDescriptor{
				URL:                  "tobii-prp://VRU02-5A94AAX02421",
				Name:                 "VR4",
				IntegrationType:      domain.IntegrationHMD,
				SerialNumber:         "VRU02-5A94AAX02421",
				Model:                "VR4_U2_P2",
				Generation:           "VR4",
				FirmwareVersion:      "2.41.0-942e3e4",
				HWCalibrationVersion: "1.100.0-1c2a552",
				HWCalibrationDate:    "2019-05-08 22:08:08.836000",
				RuntimeBuildVersion:  "1.16.36.0_a8c7f63",
			},
			Streams: []domain.StreamKind{domain.StreamDigitalSyncport, domain.StreamUserPositionGuide, domain.StreamWearableConsumer},
		},
	}
}

type fakeConn struct {
	device    *FakeDevice
	callbacks map[domain.StreamKind]ports.StreamCallback
	pending   []ports.StreamData
	lastEmit  time.Time
}

// FakeDriver simulates the vendor driver for development and tests
// This implements the ports.Driver interface
type FakeDriver struct {
	mu       sync.Mutex
	devices  []FakeDevice
	contexts map[domain.ContextID]bool
	conns    map[domain.DeviceHandle]*fakeConn
	nextID   uint64

	baseOrigin domain.Vector3
	variation  float64
	period     time.Duration
	rng        *rand.Rand
}

// NewFakeDriver creates a driver with the given attached devices that
// generates samples every period around the centre of the user box.
// variation: +/- range applied to each origin component (0 = deterministic)
func NewFakeDriver(devices []FakeDevice, period time.Duration, variation float64) *FakeDriver {
	return &FakeDriver{
		devices:    devices,
		contexts:   make(map[domain.ContextID]bool),
		conns:      make(map[domain.DeviceHandle]*fakeConn),
		baseOrigin: domain.Vector3{X: 0.5, Y: 0.5, Z: 0.5},
		variation:  variation,
		period:     period,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetBaseOrigin moves the centre generated origins vary around
func (d *FakeDriver) SetBaseOrigin(origin domain.Vector3) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.baseOrigin = origin
}

func (d *FakeDriver) newID() uint64 {
	d.nextID++
	return d.nextID
}

func (d *FakeDriver) CreateContext() (domain.ContextID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := domain.ContextID(d.newID())
	d.contexts[id] = true
	return id, nil
}

func (d *FakeDriver) DestroyContext(ctx domain.ContextID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.contexts[ctx] {
		return ErrUnknownContext
	}
	delete(d.contexts, ctx)
	return nil
}

func (d *FakeDriver) EnumerateDeviceIDs(ctx domain.ContextID) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.contexts[ctx] {
		return nil, ErrUnknownContext
	}
	ids := make([]string, len(d.devices))
	for i, dev := range d.devices {
		ids[i] = dev.Descriptor.URL
	}
	return ids, nil
}

func (d *FakeDriver) OpenDevice(ctx domain.ContextID, id string) (domain.DeviceHandle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.contexts[ctx] {
		return 0, ErrUnknownContext
	}
	for i := range d.devices {
		dev := &d.devices[i]
		if dev.Descriptor.URL != id {
			continue
		}
		if dev.OpenErr != nil {
			return 0, dev.OpenErr
		}
		h := domain.DeviceHandle(d.newID())
		d.conns[h] = &fakeConn{
			device:    dev,
			callbacks: make(map[domain.StreamKind]ports.StreamCallback),
		}
		return h, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownDevice, id)
}

func (d *FakeDriver) CloseDevice(h domain.DeviceHandle) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.conns[h]; !ok {
		return ErrUnknownHandle
	}
	delete(d.conns, h)
	return nil
}

func (d *FakeDriver) conn(h domain.DeviceHandle) (*fakeConn, error) {
	c, ok := d.conns[h]
	if !ok {
		return nil, ErrUnknownHandle
	}
	return c, nil
}

func (d *FakeDriver) GetDeviceInfo(h domain.DeviceHandle) (domain.DeviceDescriptor, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, err := d.conn(h)
	if err != nil {
		return domain.DeviceDescriptor{}, err
	}
	return c.device.Descriptor, nil
}

func (d *FakeDriver) IsStreamSupported(h domain.DeviceHandle, kind domain.StreamKind) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, err := d.conn(h)
	if err != nil {
		return false, err
	}
	for _, k := range c.device.Streams {
		if k == kind {
			return true, nil
		}
	}
	return false, nil
}

func (d *FakeDriver) Subscribe(h domain.DeviceHandle, kind domain.StreamKind, cb ports.StreamCallback) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, err := d.conn(h)
	if err != nil {
		return err
	}
	supported := false
	for _, k := range c.device.Streams {
		supported = supported || k == kind
	}
	if !supported {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedStream, kind)
	}
	if _, ok := c.callbacks[kind]; ok {
		return fmt.Errorf("stream %s already subscribed", kind)
	}
	c.callbacks[kind] = cb
	return nil
}

func (d *FakeDriver) Unsubscribe(h domain.DeviceHandle, kind domain.StreamKind) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, err := d.conn(h)
	if err != nil {
		return err
	}
	if _, ok := c.callbacks[kind]; !ok {
		return fmt.Errorf("stream %s not subscribed", kind)
	}
	delete(c.callbacks, kind)
	return nil
}

// WaitForData blocks until the next generated sample is due, or returns
// ports.ErrWaitTimeout if that is further away than timeout
func (d *FakeDriver) WaitForData(h domain.DeviceHandle, timeout time.Duration) error {
	d.mu.Lock()
	c, err := d.conn(h)
	if err != nil {
		d.mu.Unlock()
		return err
	}
	if len(c.pending) > 0 {
		d.mu.Unlock()
		return nil
	}
	wait := time.Until(c.lastEmit.Add(d.period))
	d.mu.Unlock()

	if wait > timeout {
		time.Sleep(timeout)
		return ports.ErrWaitTimeout
	}
	if wait > 0 {
		time.Sleep(wait)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	c, err = d.conn(h)
	if err != nil {
		return err
	}
	d.generate(c)
	return nil
}

// generate buffers one sample per subscribed stream. Samples with
// non-finite components are dropped.
func (d *FakeDriver) generate(c *fakeConn) {
	now := time.Now()
	c.lastEmit = now
	ts := now.UnixMicro()

	if _, ok := c.callbacks[domain.StreamUserPositionGuide]; ok {
		left := d.jitter(domain.Vector3{X: d.baseOrigin.X + 0.1, Y: d.baseOrigin.Y, Z: d.baseOrigin.Z})
		right := d.jitter(domain.Vector3{X: d.baseOrigin.X - 0.1, Y: d.baseOrigin.Y, Z: d.baseOrigin.Z})
		if left.IsFinite() && right.IsFinite() {
			c.pending = append(c.pending, ports.PositionGuideData{
				TimestampUS:   ts,
				LeftValidity:  d.validity(),
				LeftPosition:  left,
				RightValidity: d.validity(),
				RightPosition: right,
			})
		}
	}

	if _, ok := c.callbacks[domain.StreamWearableConsumer]; ok {
		dir := normalize(d.jitter(domain.Vector3{Z: -1}))
		if dir.IsFinite() {
			c.pending = append(c.pending, ports.WearableConsumerData{
				TimestampUS:           ts,
				GazeDirectionValidity: ports.NativeValid,
				GazeDirection:         dir,
			})
		}
	}
}

// jitter applies +/- variation to every component
func (d *FakeDriver) jitter(v domain.Vector3) domain.Vector3 {
	if d.variation == 0 {
		return v
	}
	f := func() float64 { return (d.rng.Float64() - 0.5) * 2 * d.variation }
	return domain.Vector3{X: v.X + f(), Y: v.Y + f(), Z: v.Z + f()}
}

// validity simulates the odd blink when samples vary
func (d *FakeDriver) validity() ports.NativeValidity {
	if d.variation > 0 && d.rng.Float64() < 0.02 {
		return ports.NativeInvalid
	}
	return ports.NativeValid
}

func normalize(v domain.Vector3) domain.Vector3 {
	n := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if n == 0 {
		return v
	}
	return domain.Vector3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// Inject buffers a sample for the next DispatchCallbacks on h
func (d *FakeDriver) Inject(h domain.DeviceHandle, data ports.StreamData) error {
	switch s := data.(type) {
	case ports.PositionGuideData:
		if !s.LeftPosition.IsFinite() || !s.RightPosition.IsFinite() {
			return ErrNonFiniteSample
		}
	case ports.WearableConsumerData:
		if !s.GazeDirection.IsFinite() {
			return ErrNonFiniteSample
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	c, err := d.conn(h)
	if err != nil {
		return err
	}
	c.pending = append(c.pending, data)
	return nil
}

// InjectAll buffers a sample on every open handle
func (d *FakeDriver) InjectAll(data ports.StreamData) error {
	for _, h := range d.OpenHandles() {
		if err := d.Inject(h, data); err != nil {
			return err
		}
	}
	return nil
}

// DispatchCallbacks delivers buffered samples to subscribed callbacks
func (d *FakeDriver) DispatchCallbacks(h domain.DeviceHandle) error {
	d.mu.Lock()
	c, err := d.conn(h)
	if err != nil {
		d.mu.Unlock()
		return err
	}
	pending := c.pending
	c.pending = nil
	callbacks := make(map[domain.StreamKind]ports.StreamCallback, len(c.callbacks))
	for k, cb := range c.callbacks {
		callbacks[k] = cb
	}
	d.mu.Unlock()

	for _, data := range pending {
		if cb, ok := callbacks[data.Stream()]; ok {
			cb(data)
		}
	}
	return nil
}

// OpenHandles returns the handles currently open
func (d *FakeDriver) OpenHandles() []domain.DeviceHandle {
	d.mu.Lock()
	defer d.mu.Unlock()

	handles := make([]domain.DeviceHandle, 0, len(d.conns))
	for h := range d.conns {
		handles = append(handles, h)
	}
	return handles
}

// OpenContexts returns how many contexts have not been destroyed
func (d *FakeDriver) OpenContexts() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.contexts)
}
