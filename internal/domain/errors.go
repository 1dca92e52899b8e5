package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAdapterUnavailable indicates the driver API context could not be created
	ErrAdapterUnavailable = errors.New("eye tracker driver unavailable")

	// ErrNoDeviceFound indicates enumeration failed or returned no devices
	ErrNoDeviceFound = errors.New("no eye tracker found")

	// ErrNoMatchingDevice indicates no enumerated device has the required integration type
	ErrNoMatchingDevice = errors.New("no eye tracker with matching integration type")

	// ErrAlreadySubscribed indicates Subscribe was called while streams are active
	ErrAlreadySubscribed = errors.New("streams already subscribed")

	// ErrNotReady indicates Poll was called before any stream was subscribed
	ErrNotReady = errors.New("session not ready for polling")

	// ErrNotOpen indicates the session has no open device
	ErrNotOpen = errors.New("session not open")

	// ErrAlreadyOpen indicates Open was called on a session that already selected a device
	ErrAlreadyOpen = errors.New("session already open")

	// ErrSessionClosed indicates the session reached its terminal state
	ErrSessionClosed = errors.New("session closed")

	// ErrUnsupportedStream indicates an unknown or unsupported stream kind
	ErrUnsupportedStream = errors.New("unsupported stream")

	// ErrSampleNotFound indicates requested sample doesn't exist
	ErrSampleNotFound = errors.New("sample not found")

	// ErrEmptySample indicates a sample that never received an update
	ErrEmptySample = errors.New("sample has no data")
)

// SubscribeError reports which required stream could not be subscribed
type SubscribeError struct {
	Kind StreamKind
	Err  error
}

func (e *SubscribeError) Error() string {
	return fmt.Sprintf("subscribe %s: %v", e.Kind, e.Err)
}

func (e *SubscribeError) Unwrap() error {
	return e.Err
}

// PollError wraps a hard driver error raised while waiting for or dispatching data.
// The session stays open; the caller decides whether to retry.
type PollError struct {
	Cause error
}

func (e *PollError) Error() string {
	return fmt.Sprintf("poll: %v", e.Cause)
}

func (e *PollError) Unwrap() error {
	return e.Cause
}
