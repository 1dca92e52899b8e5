package replay

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dfgHiatus/LinuxProEye/internal/capture"
	"github.com/dfgHiatus/LinuxProEye/internal/domain"
	"github.com/dfgHiatus/LinuxProEye/internal/ports"
)

var (
	// ErrUnknownContext is returned for a context the driver never issued
	ErrUnknownContext = errors.New("unknown driver context")

	// ErrUnknownHandle is returned for a handle that is not open
	ErrUnknownHandle = errors.New("unknown device handle")

	// ErrUnknownDevice is returned when opening anything but the recorded device
	ErrUnknownDevice = errors.New("no such device")
)

// replayedStreams are the streams a capture can be turned back into
var replayedStreams = []domain.StreamKind{domain.StreamUserPositionGuide, domain.StreamWearableConsumer}

// Option configures a Driver
type Option func(*Driver)

// WithLoop restarts the capture from the beginning once it is exhausted
func WithLoop(loop bool) Option {
	return func(d *Driver) { d.loop = loop }
}

// WithSpeed scales the recorded inter-sample delays. Speed <= 0 replays
// without any pacing.
func WithSpeed(speed float64) Option {
	return func(d *Driver) { d.speed = speed }
}

type conn struct {
	callbacks map[domain.StreamKind]ports.StreamCallback
	cursor    int
	pending   []ports.StreamData
	lastEmit  time.Time
}

// Driver plays a recorded capture back through the driver port.
// It exposes exactly one device: the one the capture was recorded from.
type Driver struct {
	mu       sync.Mutex
	device   domain.DeviceDescriptor
	samples  []domain.GazeSample
	contexts map[domain.ContextID]bool
	conns    map[domain.DeviceHandle]*conn
	nextID   uint64

	loop  bool
	speed float64
}

// NewDriver creates a driver replaying samples recorded from device
func NewDriver(device domain.DeviceDescriptor, samples []domain.GazeSample, opts ...Option) *Driver {
	d := &Driver{
		device:   device,
		samples:  samples,
		contexts: make(map[domain.ContextID]bool),
		conns:    make(map[domain.DeviceHandle]*conn),
		speed:    1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load reads a whole capture file into a new driver
func Load(path string, opts ...Option) (*Driver, error) {
	r, err := capture.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var samples []domain.GazeSample
	for {
		s, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}

	return NewDriver(r.Header().Device, samples, opts...), nil
}

// Len returns the number of recorded samples
func (d *Driver) Len() int {
	return len(d.samples)
}

func (d *Driver) newID() uint64 {
	d.nextID++
	return d.nextID
}

func (d *Driver) CreateContext() (domain.ContextID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := domain.ContextID(d.newID())
	d.contexts[id] = true
	return id, nil
}

func (d *Driver) DestroyContext(ctx domain.ContextID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.contexts[ctx] {
		return ErrUnknownContext
	}
	delete(d.contexts, ctx)
	return nil
}

func (d *Driver) EnumerateDeviceIDs(ctx domain.ContextID) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.contexts[ctx] {
		return nil, ErrUnknownContext
	}
	return []string{d.device.URL}, nil
}

func (d *Driver) OpenDevice(ctx domain.ContextID, id string) (domain.DeviceHandle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.contexts[ctx] {
		return 0, ErrUnknownContext
	}
	if id != d.device.URL {
		return 0, fmt.Errorf("%w: %s", ErrUnknownDevice, id)
	}
	h := domain.DeviceHandle(d.newID())
	d.conns[h] = &conn{callbacks: make(map[domain.StreamKind]ports.StreamCallback)}
	return h, nil
}

func (d *Driver) CloseDevice(h domain.DeviceHandle) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.conns[h]; !ok {
		return ErrUnknownHandle
	}
	delete(d.conns, h)
	return nil
}

func (d *Driver) conn(h domain.DeviceHandle) (*conn, error) {
	c, ok := d.conns[h]
	if !ok {
		return nil, ErrUnknownHandle
	}
	return c, nil
}

func (d *Driver) GetDeviceInfo(h domain.DeviceHandle) (domain.DeviceDescriptor, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := d.conn(h); err != nil {
		return domain.DeviceDescriptor{}, err
	}
	return d.device, nil
}

func isReplayed(kind domain.StreamKind) bool {
	for _, k := range replayedStreams {
		if k == kind {
			return true
		}
	}
	return false
}

func (d *Driver) IsStreamSupported(h domain.DeviceHandle, kind domain.StreamKind) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := d.conn(h); err != nil {
		return false, err
	}
	return isReplayed(kind), nil
}

func (d *Driver) Subscribe(h domain.DeviceHandle, kind domain.StreamKind, cb ports.StreamCallback) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, err := d.conn(h)
	if err != nil {
		return err
	}
	if !isReplayed(kind) {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedStream, kind)
	}
	if _, ok := c.callbacks[kind]; ok {
		return fmt.Errorf("stream %s already subscribed", kind)
	}
	c.callbacks[kind] = cb
	return nil
}

func (d *Driver) Unsubscribe(h domain.DeviceHandle, kind domain.StreamKind) error {
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

// delay returns how long after the previous sample the one at i is due
func (d *Driver) delay(i int) time.Duration {
	if d.speed <= 0 || i == 0 {
		return 0
	}
	gap := d.samples[i].ReceivedAt.Sub(d.samples[i-1].ReceivedAt)
	if gap <= 0 {
		return 0
	}
	return time.Duration(float64(gap) / d.speed)
}

// WaitForData blocks until the next recorded sample is due. Once the
// capture is exhausted (and not looping) it only ever times out.
func (d *Driver) WaitForData(h domain.DeviceHandle, timeout time.Duration) error {
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
	if c.cursor >= len(d.samples) {
		if !d.loop || len(d.samples) == 0 {
			d.mu.Unlock()
			time.Sleep(timeout)
			return ports.ErrWaitTimeout
		}
		c.cursor = 0
		c.lastEmit = time.Time{}
	}
	var wait time.Duration
	if !c.lastEmit.IsZero() {
		wait = time.Until(c.lastEmit.Add(d.delay(c.cursor)))
	}
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
	if c.cursor < len(d.samples) {
		c.pending = append(c.pending, streamData(d.samples[c.cursor])...)
		c.cursor++
		c.lastEmit = time.Now()
	}
	return nil
}

// streamData splits a recorded sample back into the stream samples it was
// assembled from
func streamData(s domain.GazeSample) []ports.StreamData {
	guide := ports.PositionGuideData{
		TimestampUS:   s.DeviceTimestampUS,
		LeftValidity:  nativeValidity(s.Left.IsValid()),
		LeftPosition:  s.Left.Origin,
		RightValidity: nativeValidity(s.Right.IsValid()),
		RightPosition: s.Right.Origin,
	}

	wearable := ports.WearableConsumerData{TimestampUS: s.DeviceTimestampUS}
	switch {
	case s.Left.HasDirection:
		wearable.GazeDirectionValidity = ports.NativeValid
		wearable.GazeDirection = s.Left.Direction
	case s.Right.HasDirection:
		wearable.GazeDirectionValidity = ports.NativeValid
		wearable.GazeDirection = s.Right.Direction
	}

	return []ports.StreamData{guide, wearable}
}

func nativeValidity(valid bool) ports.NativeValidity {
	if valid {
		return ports.NativeValid
	}
	return ports.NativeInvalid
}

// DispatchCallbacks delivers buffered samples to subscribed callbacks
func (d *Driver) DispatchCallbacks(h domain.DeviceHandle) error {
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
