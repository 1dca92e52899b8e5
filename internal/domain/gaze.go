package domain

import (
	"math"
	"time"
)

// Vector3 is a three-component double precision vector
type Vector3 struct {
	X float64 `json:"x" cbor:"1,keyasint"`
	Y float64 `json:"y" cbor:"2,keyasint"`
	Z float64 `json:"z" cbor:"3,keyasint"`
}

// IsFinite reports whether no component is NaN or infinite
func (v Vector3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Validity tells whether an eye reading can be trusted
type Validity uint8

const (
	// Invalid is the zero value: no usable data for the eye
	Invalid Validity = iota
	Valid
)

func (v Validity) String() string {
	if v == Valid {
		return "valid"
	}
	return "invalid"
}

// EyeSample is the latest reading for one eye
type EyeSample struct {
	Validity Validity `json:"validity" cbor:"1,keyasint"`
	// Origin is the eye position in the tracker's normalized user box
	Origin Vector3 `json:"origin" cbor:"2,keyasint"`
	// Direction is only meaningful when HasDirection is set
	Direction    Vector3 `json:"direction" cbor:"3,keyasint"`
	HasDirection bool    `json:"has_direction" cbor:"4,keyasint"`
}

// IsValid is shorthand for Validity == Valid
func (e EyeSample) IsValid() bool {
	return e.Validity == Valid
}

// GazeSample represents the latest known reading for both eyes.
// The zero value has both eyes Invalid.
type GazeSample struct {
	Left  EyeSample `json:"left" cbor:"1,keyasint"`
	Right EyeSample `json:"right" cbor:"2,keyasint"`

	// Sequence is incremented on every update delivered by the driver
	Sequence uint64 `json:"sequence" cbor:"3,keyasint"`

	// DeviceTimestampUS is the driver's own clock for the last update
	DeviceTimestampUS int64 `json:"device_timestamp_us" cbor:"4,keyasint"`

	// ReceivedAt is the host time the last update was dispatched
	ReceivedAt time.Time `json:"received_at" cbor:"5,keyasint"`
}

// IsEmpty returns true if no update was ever applied
func (s GazeSample) IsEmpty() bool {
	return s.Sequence == 0
}

// BothValid returns true if both eyes carry a valid reading
func (s GazeSample) BothValid() bool {
	return s.Left.IsValid() && s.Right.IsValid()
}

// TrackingState returns a human-readable summary of which eyes are tracked
func (s GazeSample) TrackingState() string {
	switch {
	case s.BothValid():
		return "Both Eyes"
	case s.Left.IsValid():
		return "Left Eye Only"
	case s.Right.IsValid():
		return "Right Eye Only"
	}
	return "No Eyes"
}

// GazeRecord is a sample persisted by a SampleRepository
type GazeRecord struct {
	ID        int64
	SessionID string
	Sample    GazeSample
}

// NewGazeRecord creates a record for a sample received during a session
func NewGazeRecord(sessionID string, sample GazeSample) (*GazeRecord, error) {
	// Nothing was ever delivered: there is nothing to persist
	if sample.IsEmpty() {
		return nil, ErrEmptySample
	}
	if sample.ReceivedAt.IsZero() {
		sample.ReceivedAt = time.Now()
	}

	return &GazeRecord{
		SessionID: sessionID,
		Sample:    sample,
	}, nil
}

// Timestamp is the host time the recorded sample was received
func (r *GazeRecord) Timestamp() time.Time {
	return r.Sample.ReceivedAt
}
