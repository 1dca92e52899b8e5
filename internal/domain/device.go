package domain

import "fmt"

// ContextID identifies a driver API context. Zero means no context.
type ContextID uint64

// DeviceHandle identifies an open device connection. Zero means no device.
type DeviceHandle uint64

// IntegrationHMD is the integration type of head-mounted trackers
const IntegrationHMD = "HMD"

// DeviceDescriptor is the metadata a driver reports for an open device.
// It is read once at selection time and never mutated.
type DeviceDescriptor struct {
	URL                  string `json:"url" yaml:"url" cbor:"1,keyasint"`
	Name                 string `json:"name" yaml:"name" cbor:"2,keyasint"`
	IntegrationType      string `json:"integration_type" yaml:"integration_type" cbor:"3,keyasint"`
	SerialNumber         string `json:"serial_number" yaml:"serial_number" cbor:"4,keyasint"`
	Model                string `json:"model" yaml:"model" cbor:"5,keyasint"`
	Generation           string `json:"generation" yaml:"generation" cbor:"6,keyasint"`
	FirmwareVersion      string `json:"firmware_version" yaml:"firmware_version" cbor:"7,keyasint"`
	IntegrationID        string `json:"integration_id,omitempty" yaml:"integration_id,omitempty" cbor:"8,keyasint,omitempty"`
	HWCalibrationVersion string `json:"hw_calibration_version,omitempty" yaml:"hw_calibration_version,omitempty" cbor:"9,keyasint,omitempty"`
	HWCalibrationDate    string `json:"hw_calibration_date,omitempty" yaml:"hw_calibration_date,omitempty" cbor:"10,keyasint,omitempty"`
	LotID                string `json:"lot_id,omitempty" yaml:"lot_id,omitempty" cbor:"11,keyasint,omitempty"`
	RuntimeBuildVersion  string `json:"runtime_build_version,omitempty" yaml:"runtime_build_version,omitempty" cbor:"12,keyasint,omitempty"`
}

// IsIntegration reports whether the device has the given integration type
func (d DeviceDescriptor) IsIntegration(integrationType string) bool {
	return d.IntegrationType == integrationType
}

// StreamKind is a category of sensor data that can be subscribed independently
type StreamKind uint8

const (
	StreamGazePoint StreamKind = iota
	StreamGazeOrigin
	StreamEyePositionNormalized
	StreamUserPresence
	StreamHeadPose
	StreamDigitalSyncport
	StreamDiagnosticsImage
	StreamUserPositionGuide
	StreamWearableConsumer
	StreamWearableAdvanced
	StreamWearableFoveatedGaze

	streamKindCount
)

var streamKindNames = [streamKindCount]string{
	StreamGazePoint:             "gaze_point",
	StreamGazeOrigin:            "gaze_origin",
	StreamEyePositionNormalized: "eye_position_normalized",
	StreamUserPresence:          "user_presence",
	StreamHeadPose:              "head_pose",
	StreamDigitalSyncport:       "digital_syncport",
	StreamDiagnosticsImage:      "diagnostics_image",
	StreamUserPositionGuide:     "user_position_guide",
	StreamWearableConsumer:      "wearable_consumer",
	StreamWearableAdvanced:      "wearable_advanced",
	StreamWearableFoveatedGaze:  "wearable_foveated_gaze",
}

// AllStreamKinds returns every known stream kind in enumeration order
func AllStreamKinds() []StreamKind {
	kinds := make([]StreamKind, 0, streamKindCount)
	for k := StreamKind(0); k < streamKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k StreamKind) String() string {
	if k < streamKindCount {
		return streamKindNames[k]
	}
	return fmt.Sprintf("stream(%d)", uint8(k))
}

// ParseStreamKind maps a stream name back to its kind
func ParseStreamKind(name string) (StreamKind, error) {
	for k, n := range streamKindNames {
		if n == name {
			return StreamKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedStream, name)
}

// StreamSubscription tracks whether a stream kind is currently subscribed
type StreamSubscription struct {
	Kind   StreamKind
	Active bool
}
