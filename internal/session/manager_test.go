package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dfgHiatus/LinuxProEye/internal/domain"
	"github.com/dfgHiatus/LinuxProEye/internal/ports"
	"github.com/dfgHiatus/LinuxProEye/internal/ports/mocks"
	"github.com/dfgHiatus/LinuxProEye/internal/session"
)

const testCtx = domain.ContextID(7)

func hmd(url string) domain.DeviceDescriptor {
	return domain.DeviceDescriptor{URL: url, Name: "VR4", IntegrationType: "HMD"}
}

func peripheral(url string) domain.DeviceDescriptor {
	return domain.DeviceDescriptor{URL: url, Name: "Eye Tracker 5", IntegrationType: "Peripheral"}
}

func newManager(driver ports.Driver, opts ...session.Option) *session.Manager {
	return session.New(driver, append([]session.Option{session.WithLogger(zerolog.Nop())}, opts...)...)
}

// expectOpen sets up a driver exposing a single HMD on handle h
func expectOpen(driver *mocks.MockDriver, h domain.DeviceHandle) {
	driver.EXPECT().CreateContext().Return(testCtx, nil).Once()
	driver.EXPECT().EnumerateDeviceIDs(testCtx).Return([]string{"hmd"}, nil).Once()
	driver.EXPECT().OpenDevice(testCtx, "hmd").Return(h, nil).Once()
	driver.EXPECT().GetDeviceInfo(h).Return(hmd("hmd"), nil).Once()
}

// expectSubscribe captures the callback registered for every kind
func expectSubscribe(driver *mocks.MockDriver, h domain.DeviceHandle, callbacks map[domain.StreamKind]ports.StreamCallback, kinds ...domain.StreamKind) {
	for _, kind := range kinds {
		driver.EXPECT().Subscribe(h, kind, mock.Anything).
			Run(func(_ domain.DeviceHandle, k domain.StreamKind, cb ports.StreamCallback) {
				callbacks[k] = cb
			}).
			Return(nil).Once()
	}
}

func expectTeardown(driver *mocks.MockDriver, h domain.DeviceHandle, kinds ...domain.StreamKind) {
	for _, kind := range kinds {
		driver.EXPECT().Unsubscribe(h, kind).Return(nil).Once()
	}
	driver.EXPECT().CloseDevice(h).Return(nil).Once()
	driver.EXPECT().DestroyContext(testCtx).Return(nil).Once()
}

func TestOpen_AdapterUnavailable(t *testing.T) {
	driver := mocks.NewMockDriver(t)
	driver.EXPECT().CreateContext().Return(0, errors.New("libtobii missing")).Once()

	m := newManager(driver)
	err := m.Open(context.Background())

	require.ErrorIs(t, err, domain.ErrAdapterUnavailable)
	assert.Equal(t, session.StateClosed, m.State())
}

func TestOpen_NoCandidates(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		err  error
	}{
		{name: "empty enumeration", ids: []string{}},
		{name: "nil enumeration", ids: nil},
		{name: "enumeration failure", err: errors.New("usb bus error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver := mocks.NewMockDriver(t)
			driver.EXPECT().CreateContext().Return(testCtx, nil).Once()
			driver.EXPECT().EnumerateDeviceIDs(testCtx).Return(tt.ids, tt.err).Once()
			driver.EXPECT().DestroyContext(testCtx).Return(nil).Once()

			m := newManager(driver)
			err := m.Open(context.Background())

			require.ErrorIs(t, err, domain.ErrNoDeviceFound)
			assert.Equal(t, session.StateClosed, m.State())
		})
	}
}

func TestOpen_NoMatchingDeviceClosesEveryCandidateOnce(t *testing.T) {
	driver := mocks.NewMockDriver(t)
	driver.EXPECT().CreateContext().Return(testCtx, nil).Once()
	driver.EXPECT().EnumerateDeviceIDs(testCtx).Return([]string{"a", "b", "c"}, nil).Once()
	for i, id := range []string{"a", "b", "c"} {
		h := domain.DeviceHandle(i + 1)
		driver.EXPECT().OpenDevice(testCtx, id).Return(h, nil).Once()
		driver.EXPECT().GetDeviceInfo(h).Return(peripheral(id), nil).Once()
		driver.EXPECT().CloseDevice(h).Return(nil).Once()
	}
	driver.EXPECT().DestroyContext(testCtx).Return(nil).Once()

	m := newManager(driver)
	err := m.Open(context.Background())

	require.ErrorIs(t, err, domain.ErrNoMatchingDevice)
	assert.Equal(t, session.StateClosed, m.State())
}

func TestOpen_SelectsFirstMatchingDevice(t *testing.T) {
	driver := mocks.NewMockDriver(t)
	driver.EXPECT().CreateContext().Return(testCtx, nil).Once()
	driver.EXPECT().EnumerateDeviceIDs(testCtx).Return([]string{"A", "B", "C"}, nil).Once()
	driver.EXPECT().OpenDevice(testCtx, "A").Return(1, nil).Once()
	driver.EXPECT().GetDeviceInfo(domain.DeviceHandle(1)).Return(peripheral("A"), nil).Once()
	driver.EXPECT().CloseDevice(domain.DeviceHandle(1)).Return(nil).Once()
	driver.EXPECT().OpenDevice(testCtx, "B").Return(2, nil).Once()
	driver.EXPECT().GetDeviceInfo(domain.DeviceHandle(2)).Return(hmd("B"), nil).Once()
	// C is never opened: the mock fails the test on any unexpected call

	m := newManager(driver)
	require.NoError(t, m.Open(context.Background()))

	assert.Equal(t, session.StateOpened, m.State())
	assert.NotEmpty(t, m.SessionID())
	device, err := m.Device()
	require.NoError(t, err)
	assert.Equal(t, "B", device.URL)
}

func TestOpen_OpenFailureKeepsScanning(t *testing.T) {
	driver := mocks.NewMockDriver(t)
	driver.EXPECT().CreateContext().Return(testCtx, nil).Once()
	driver.EXPECT().EnumerateDeviceIDs(testCtx).Return([]string{"busy", "hmd"}, nil).Once()
	driver.EXPECT().OpenDevice(testCtx, "busy").Return(0, errors.New("device busy")).Once()
	driver.EXPECT().OpenDevice(testCtx, "hmd").Return(5, nil).Once()
	driver.EXPECT().GetDeviceInfo(domain.DeviceHandle(5)).Return(hmd("hmd"), nil).Once()

	m := newManager(driver)
	require.NoError(t, m.Open(context.Background()))
	assert.Equal(t, session.StateOpened, m.State())
}

func TestOpen_AllOpensFailReportsLastError(t *testing.T) {
	lastErr := errors.New("permission denied")

	driver := mocks.NewMockDriver(t)
	driver.EXPECT().CreateContext().Return(testCtx, nil).Once()
	driver.EXPECT().EnumerateDeviceIDs(testCtx).Return([]string{"x", "y"}, nil).Once()
	driver.EXPECT().OpenDevice(testCtx, "x").Return(0, errors.New("device busy")).Once()
	driver.EXPECT().OpenDevice(testCtx, "y").Return(0, lastErr).Once()
	driver.EXPECT().DestroyContext(testCtx).Return(nil).Once()

	m := newManager(driver)
	err := m.Open(context.Background())

	require.ErrorIs(t, err, domain.ErrNoMatchingDevice)
	assert.ErrorIs(t, err, lastErr)
}

func TestOpen_InfoFailureClosesCandidate(t *testing.T) {
	driver := mocks.NewMockDriver(t)
	driver.EXPECT().CreateContext().Return(testCtx, nil).Once()
	driver.EXPECT().EnumerateDeviceIDs(testCtx).Return([]string{"x"}, nil).Once()
	driver.EXPECT().OpenDevice(testCtx, "x").Return(3, nil).Once()
	driver.EXPECT().GetDeviceInfo(domain.DeviceHandle(3)).Return(domain.DeviceDescriptor{}, errors.New("io")).Once()
	driver.EXPECT().CloseDevice(domain.DeviceHandle(3)).Return(errors.New("already gone")).Once()
	driver.EXPECT().DestroyContext(testCtx).Return(nil).Once()

	m := newManager(driver)
	require.ErrorIs(t, m.Open(context.Background()), domain.ErrNoMatchingDevice)
}

func TestOpen_CustomIntegrationType(t *testing.T) {
	driver := mocks.NewMockDriver(t)
	driver.EXPECT().CreateContext().Return(testCtx, nil).Once()
	driver.EXPECT().EnumerateDeviceIDs(testCtx).Return([]string{"p"}, nil).Once()
	driver.EXPECT().OpenDevice(testCtx, "p").Return(1, nil).Once()
	driver.EXPECT().GetDeviceInfo(domain.DeviceHandle(1)).Return(peripheral("p"), nil).Once()

	m := newManager(driver, session.WithIntegrationType("Peripheral"))
	require.NoError(t, m.Open(context.Background()))
}

func TestOpen_CanceledContextStopsScan(t *testing.T) {
	driver := mocks.NewMockDriver(t)
	driver.EXPECT().CreateContext().Return(testCtx, nil).Once()
	driver.EXPECT().EnumerateDeviceIDs(testCtx).Return([]string{"x"}, nil).Once()
	driver.EXPECT().DestroyContext(testCtx).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := newManager(driver)
	require.ErrorIs(t, m.Open(ctx), context.Canceled)
	assert.Equal(t, session.StateClosed, m.State())
}

func TestOpen_OnlyFromUnopened(t *testing.T) {
	driver := mocks.NewMockDriver(t)
	expectOpen(driver, 1)
	expectTeardown(driver, 1)

	m := newManager(driver)
	require.NoError(t, m.Open(context.Background()))
	require.ErrorIs(t, m.Open(context.Background()), domain.ErrAlreadyOpen)

	m.Close()
	require.ErrorIs(t, m.Open(context.Background()), domain.ErrSessionClosed)
}

func TestListSupportedStreams_FixedOrderSkippingErrors(t *testing.T) {
	driver := mocks.NewMockDriver(t)
	expectOpen(driver, 1)

	supported := map[domain.StreamKind]bool{
		domain.StreamWearableConsumer:  true,
		domain.StreamDigitalSyncport:   true,
		domain.StreamUserPositionGuide: true,
	}
	for _, kind := range domain.AllStreamKinds() {
		if kind == domain.StreamHeadPose {
			driver.EXPECT().IsStreamSupported(domain.DeviceHandle(1), kind).Return(false, errors.New("not implemented")).Once()
			continue
		}
		driver.EXPECT().IsStreamSupported(domain.DeviceHandle(1), kind).Return(supported[kind], nil).Once()
	}

	m := newManager(driver)
	require.NoError(t, m.Open(context.Background()))

	streams, err := m.ListSupportedStreams()
	require.NoError(t, err)
	assert.Equal(t, []domain.StreamKind{
		domain.StreamDigitalSyncport,
		domain.StreamUserPositionGuide,
		domain.StreamWearableConsumer,
	}, streams)
	assert.Empty(t, m.Subscriptions())
}

func TestOperationsWithoutDevice(t *testing.T) {
	driver := mocks.NewMockDriver(t)
	m := newManager(driver)

	_, err := m.ListSupportedStreams()
	assert.ErrorIs(t, err, domain.ErrNotOpen)
	assert.ErrorIs(t, m.Subscribe(), domain.ErrNotOpen)
	assert.ErrorIs(t, m.Unsubscribe(), domain.ErrNotOpen)
	_, err = m.Device()
	assert.ErrorIs(t, err, domain.ErrNotOpen)
	assert.ErrorIs(t, m.Poll(context.Background(), time.Second), domain.ErrNotReady)
}

func TestLatestSample_InvalidBeforePoll(t *testing.T) {
	m := newManager(mocks.NewMockDriver(t))

	sample := m.LatestSample()
	assert.Equal(t, domain.Invalid, sample.Left.Validity)
	assert.Equal(t, domain.Invalid, sample.Right.Validity)
}

func TestPoll_NotReadyBeforeSubscribe(t *testing.T) {
	driver := mocks.NewMockDriver(t)
	expectOpen(driver, 1)

	m := newManager(driver)
	require.NoError(t, m.Open(context.Background()))

	start := time.Now()
	err := m.Poll(context.Background(), time.Hour)

	require.ErrorIs(t, err, domain.ErrNotReady)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPoll_DeliversPositionGuide(t *testing.T) {
	driver := mocks.NewMockDriver(t)
	callbacks := map[domain.StreamKind]ports.StreamCallback{}
	expectOpen(driver, 1)
	expectSubscribe(driver, 1, callbacks, session.DefaultRequiredStreams...)

	m := newManager(driver)
	require.NoError(t, m.Open(context.Background()))
	require.NoError(t, m.Subscribe())

	direction := domain.Vector3{X: 0, Y: 0, Z: -1}
	driver.EXPECT().WaitForData(domain.DeviceHandle(1), 50*time.Millisecond).Return(nil).Twice()
	driver.EXPECT().DispatchCallbacks(domain.DeviceHandle(1)).RunAndReturn(func(domain.DeviceHandle) error {
		callbacks[domain.StreamWearableConsumer](ports.WearableConsumerData{
			GazeDirectionValidity: ports.NativeValid,
			GazeDirection:         direction,
		})
		return nil
	}).Once()
	driver.EXPECT().DispatchCallbacks(domain.DeviceHandle(1)).RunAndReturn(func(domain.DeviceHandle) error {
		callbacks[domain.StreamUserPositionGuide](ports.PositionGuideData{
			LeftValidity:  ports.NativeValid,
			LeftPosition:  domain.Vector3{X: 0.1, Y: 0.2, Z: 0.3},
			RightValidity: ports.NativeValid,
			RightPosition: domain.Vector3{X: 0.7, Y: 0.8, Z: 0.9},
		})
		return nil
	}).Once()

	require.NoError(t, m.Poll(context.Background(), 50*time.Millisecond))
	before := m.LatestSample()
	require.True(t, before.Right.HasDirection)

	require.NoError(t, m.Poll(context.Background(), 50*time.Millisecond))

	sample := m.LatestSample()
	assert.Equal(t, domain.EyeSample{
		Validity:     domain.Valid,
		Origin:       domain.Vector3{X: 0.1, Y: 0.2, Z: 0.3},
		Direction:    direction,
		HasDirection: true,
	}, sample.Left)
	// right eye takes its own origin and keeps the direction it already had
	assert.Equal(t, domain.EyeSample{
		Validity:     domain.Valid,
		Origin:       domain.Vector3{X: 0.7, Y: 0.8, Z: 0.9},
		Direction:    before.Right.Direction,
		HasDirection: true,
	}, sample.Right)
	assert.Equal(t, uint64(2), sample.Sequence)
}

func TestPoll_TimeoutIsNotAnError(t *testing.T) {
	tests := []struct {
		name    string
		waitErr error
	}{
		{name: "nil on timeout", waitErr: nil},
		{name: "timeout sentinel", waitErr: ports.ErrWaitTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver := mocks.NewMockDriver(t)
			expectOpen(driver, 1)
			expectSubscribe(driver, 1, map[domain.StreamKind]ports.StreamCallback{}, session.DefaultRequiredStreams...)
			driver.EXPECT().WaitForData(domain.DeviceHandle(1), mock.Anything).Return(tt.waitErr).Once()
			driver.EXPECT().DispatchCallbacks(domain.DeviceHandle(1)).Return(nil).Once()

			m := newManager(driver)
			require.NoError(t, m.Open(context.Background()))
			require.NoError(t, m.Subscribe())

			require.NoError(t, m.Poll(context.Background(), time.Millisecond))
			assert.True(t, m.LatestSample().IsEmpty())
		})
	}
}

func TestPoll_HardErrorKeepsSessionOpen(t *testing.T) {
	driverErr := errors.New("connection lost")

	driver := mocks.NewMockDriver(t)
	expectOpen(driver, 1)
	expectSubscribe(driver, 1, map[domain.StreamKind]ports.StreamCallback{}, session.DefaultRequiredStreams...)
	driver.EXPECT().WaitForData(domain.DeviceHandle(1), mock.Anything).Return(driverErr).Once()

	m := newManager(driver)
	require.NoError(t, m.Open(context.Background()))
	require.NoError(t, m.Subscribe())

	err := m.Poll(context.Background(), time.Millisecond)

	var pollErr *domain.PollError
	require.ErrorAs(t, err, &pollErr)
	assert.ErrorIs(t, err, driverErr)
	assert.Equal(t, session.StateSubscribed, m.State())

	driver.EXPECT().WaitForData(domain.DeviceHandle(1), mock.Anything).Return(nil).Once()
	driver.EXPECT().DispatchCallbacks(domain.DeviceHandle(1)).Return(errors.New("callback overflow")).Once()
	require.ErrorAs(t, m.Poll(context.Background(), time.Millisecond), &pollErr)
}

func TestPoll_ContextBoundsTimeout(t *testing.T) {
	driver := mocks.NewMockDriver(t)
	expectOpen(driver, 1)
	expectSubscribe(driver, 1, map[domain.StreamKind]ports.StreamCallback{}, session.DefaultRequiredStreams...)

	m := newManager(driver)
	require.NoError(t, m.Open(context.Background()))
	require.NoError(t, m.Subscribe())

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, m.Poll(canceled, time.Second), context.Canceled)

	driver.EXPECT().WaitForData(domain.DeviceHandle(1), mock.Anything).
		Run(func(_ domain.DeviceHandle, timeout time.Duration) {
			assert.LessOrEqual(t, timeout, 200*time.Millisecond)
		}).
		Return(nil).Once()
	driver.EXPECT().DispatchCallbacks(domain.DeviceHandle(1)).Return(nil).Once()

	deadline, cancelDeadline := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancelDeadline()
	require.NoError(t, m.Poll(deadline, time.Hour))
}

func TestSubscribe_Twice(t *testing.T) {
	driver := mocks.NewMockDriver(t)
	expectOpen(driver, 1)
	expectSubscribe(driver, 1, map[domain.StreamKind]ports.StreamCallback{}, session.DefaultRequiredStreams...)

	m := newManager(driver)
	require.NoError(t, m.Open(context.Background()))
	require.NoError(t, m.Subscribe())

	assert.ErrorIs(t, m.Subscribe(), domain.ErrAlreadySubscribed)
	assert.Len(t, m.Subscriptions(), 2)
}

func TestSubscribe_PartialFailureKeepsFirstStream(t *testing.T) {
	driverErr := errors.New("stream not available")

	driver := mocks.NewMockDriver(t)
	callbacks := map[domain.StreamKind]ports.StreamCallback{}
	expectOpen(driver, 1)
	expectSubscribe(driver, 1, callbacks, domain.StreamUserPositionGuide)
	driver.EXPECT().Subscribe(domain.DeviceHandle(1), domain.StreamWearableConsumer, mock.Anything).Return(driverErr).Once()

	m := newManager(driver)
	require.NoError(t, m.Open(context.Background()))

	err := m.Subscribe()
	var subErr *domain.SubscribeError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, domain.StreamWearableConsumer, subErr.Kind)
	assert.ErrorIs(t, err, driverErr)
	assert.Equal(t, []domain.StreamSubscription{{Kind: domain.StreamUserPositionGuide, Active: true}}, m.Subscriptions())

	// The first stream still delivers through Poll
	driver.EXPECT().WaitForData(domain.DeviceHandle(1), mock.Anything).Return(nil).Once()
	driver.EXPECT().DispatchCallbacks(domain.DeviceHandle(1)).RunAndReturn(func(domain.DeviceHandle) error {
		callbacks[domain.StreamUserPositionGuide](ports.PositionGuideData{
			LeftValidity:  ports.NativeValid,
			RightValidity: ports.NativeValid,
			LeftPosition:  domain.Vector3{X: 0.4},
			RightPosition: domain.Vector3{X: 0.6},
		})
		return nil
	}).Once()
	require.NoError(t, m.Poll(context.Background(), time.Millisecond))
	assert.True(t, m.LatestSample().BothValid())

	// Close unsubscribes only the active stream
	expectTeardown(driver, 1, domain.StreamUserPositionGuide)
	m.Close()
	assert.Equal(t, session.StateClosed, m.State())
}

func TestSubscribe_FirstStreamFailsStaysOpened(t *testing.T) {
	driver := mocks.NewMockDriver(t)
	expectOpen(driver, 1)
	driver.EXPECT().Subscribe(domain.DeviceHandle(1), domain.StreamUserPositionGuide, mock.Anything).Return(errors.New("nope")).Once()

	m := newManager(driver)
	require.NoError(t, m.Open(context.Background()))

	require.Error(t, m.Subscribe())
	assert.Equal(t, session.StateOpened, m.State())
	assert.ErrorIs(t, m.Poll(context.Background(), time.Millisecond), domain.ErrNotReady)
}

func TestUnsubscribe_ReverseOrderThenResubscribe(t *testing.T) {
	driver := mocks.NewMockDriver(t)
	expectOpen(driver, 1)
	expectSubscribe(driver, 1, map[domain.StreamKind]ports.StreamCallback{}, session.DefaultRequiredStreams...)

	m := newManager(driver)
	require.NoError(t, m.Open(context.Background()))
	require.NoError(t, m.Subscribe())

	var order []domain.StreamKind
	for _, kind := range session.DefaultRequiredStreams {
		driver.EXPECT().Unsubscribe(domain.DeviceHandle(1), kind).
			Run(func(_ domain.DeviceHandle, k domain.StreamKind) { order = append(order, k) }).
			Return(nil).Once()
	}
	require.NoError(t, m.Unsubscribe())
	assert.Equal(t, []domain.StreamKind{domain.StreamWearableConsumer, domain.StreamUserPositionGuide}, order)
	assert.Equal(t, session.StateOpened, m.State())

	expectSubscribe(driver, 1, map[domain.StreamKind]ports.StreamCallback{}, session.DefaultRequiredStreams...)
	require.NoError(t, m.Subscribe())
}

func TestUnsubscribe_FailedStreamStaysTracked(t *testing.T) {
	driver := mocks.NewMockDriver(t)
	expectOpen(driver, 1)
	expectSubscribe(driver, 1, map[domain.StreamKind]ports.StreamCallback{}, session.DefaultRequiredStreams...)

	m := newManager(driver)
	require.NoError(t, m.Open(context.Background()))
	require.NoError(t, m.Subscribe())

	driver.EXPECT().Unsubscribe(domain.DeviceHandle(1), domain.StreamWearableConsumer).Return(errors.New("busy")).Once()
	driver.EXPECT().Unsubscribe(domain.DeviceHandle(1), domain.StreamUserPositionGuide).Return(nil).Once()

	require.Error(t, m.Unsubscribe())
	assert.Equal(t, []domain.StreamSubscription{{Kind: domain.StreamWearableConsumer, Active: true}}, m.Subscriptions())
	assert.Equal(t, session.StateSubscribed, m.State())
}

func TestClose_RunsEveryStepDespiteFailures(t *testing.T) {
	driver := mocks.NewMockDriver(t)
	expectOpen(driver, 1)
	expectSubscribe(driver, 1, map[domain.StreamKind]ports.StreamCallback{}, session.DefaultRequiredStreams...)

	m := newManager(driver)
	require.NoError(t, m.Open(context.Background()))
	require.NoError(t, m.Subscribe())

	driver.EXPECT().Unsubscribe(domain.DeviceHandle(1), domain.StreamWearableConsumer).Return(errors.New("a")).Once()
	driver.EXPECT().Unsubscribe(domain.DeviceHandle(1), domain.StreamUserPositionGuide).Return(errors.New("b")).Once()
	driver.EXPECT().CloseDevice(domain.DeviceHandle(1)).Return(errors.New("c")).Once()
	driver.EXPECT().DestroyContext(testCtx).Return(errors.New("d")).Once()

	m.Close()
	assert.Equal(t, session.StateClosed, m.State())
	assert.Empty(t, m.Subscriptions())
}

func TestClose_Idempotent(t *testing.T) {
	driver := mocks.NewMockDriver(t)
	expectOpen(driver, 1)
	expectSubscribe(driver, 1, map[domain.StreamKind]ports.StreamCallback{}, session.DefaultRequiredStreams...)
	expectTeardown(driver, 1, session.DefaultRequiredStreams...)

	m := newManager(driver)
	require.NoError(t, m.Open(context.Background()))
	require.NoError(t, m.Subscribe())

	m.Close()
	m.Close()

	assert.Equal(t, session.StateClosed, m.State())
	assert.ErrorIs(t, m.Poll(context.Background(), time.Millisecond), domain.ErrNotReady)
}

func TestClose_BeforeOpenTouchesNothing(t *testing.T) {
	m := newManager(mocks.NewMockDriver(t))
	m.Close()
	assert.Equal(t, session.StateClosed, m.State())
}
