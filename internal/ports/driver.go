package ports

import (
	"errors"
	"time"

	"github.com/dfgHiatus/LinuxProEye/internal/domain"
)

// ErrWaitTimeout may be returned by Driver.WaitForData when no data arrived
// within the timeout. It is not a failure.
var ErrWaitTimeout = errors.New("wait for data timed out")

// NativeValidity is the driver's own validity sentinel
type NativeValidity int32

const (
	NativeInvalid NativeValidity = 0
	NativeValid   NativeValidity = 1
)

// StreamData is a sample delivered by the driver through a StreamCallback.
// Values are only valid for the duration of the callback.
type StreamData interface {
	Stream() domain.StreamKind
}

// PositionGuideData is a user-position-guide sample: per-eye position
// inside the tracker's normalized user box
type PositionGuideData struct {
	TimestampUS   int64
	LeftValidity  NativeValidity
	LeftPosition  domain.Vector3
	RightValidity NativeValidity
	RightPosition domain.Vector3
}

func (PositionGuideData) Stream() domain.StreamKind { return domain.StreamUserPositionGuide }

// WearableConsumerData is a wearable consumer sample: blink state and the
// combined gaze direction
type WearableConsumerData struct {
	TimestampUS           int64
	LeftBlink             bool
	RightBlink            bool
	GazeDirectionValidity NativeValidity
	GazeDirection         domain.Vector3
}

func (WearableConsumerData) Stream() domain.StreamKind { return domain.StreamWearableConsumer }

// StreamCallback receives samples during Driver.DispatchCallbacks
type StreamCallback func(data StreamData)

// Driver is the capability surface of the vendor eye tracker driver
// This is a PORT - adapters (Mock, Replay, native bindings) implement it
type Driver interface {
	// CreateContext creates an API context
	CreateContext() (domain.ContextID, error)

	// DestroyContext releases an API context
	DestroyContext(ctx domain.ContextID) error

	// EnumerateDeviceIDs lists connection identifiers of attached devices.
	// Order is not guaranteed.
	EnumerateDeviceIDs(ctx domain.ContextID) ([]string, error)

	// OpenDevice connects to a device
	OpenDevice(ctx domain.ContextID, id string) (domain.DeviceHandle, error)

	// CloseDevice disconnects a device
	CloseDevice(h domain.DeviceHandle) error

	// GetDeviceInfo reads device metadata; only available on an open device
	GetDeviceInfo(h domain.DeviceHandle) (domain.DeviceDescriptor, error)

	// IsStreamSupported reports whether the device can deliver a stream kind
	IsStreamSupported(h domain.DeviceHandle, kind domain.StreamKind) (bool, error)

	// Subscribe registers cb for a stream kind
	Subscribe(h domain.DeviceHandle, kind domain.StreamKind, cb StreamCallback) error

	// Unsubscribe removes the callback for a stream kind
	Unsubscribe(h domain.DeviceHandle, kind domain.StreamKind) error

	// WaitForData blocks until samples are buffered or timeout expires.
	// A timeout returns nil or ErrWaitTimeout.
	WaitForData(h domain.DeviceHandle, timeout time.Duration) error

	// DispatchCallbacks synchronously delivers buffered samples to the
	// registered callbacks on the calling goroutine
	DispatchCallbacks(h domain.DeviceHandle) error
}
