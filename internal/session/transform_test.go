package session

import (
	"testing"

	"github.com/dfgHiatus/LinuxProEye/internal/domain"
	"github.com/dfgHiatus/LinuxProEye/internal/ports"
)

func TestTransformPositionGuide(t *testing.T) {
	tests := []struct {
		name      string
		data      ports.PositionGuideData
		wantLeft  domain.Validity
		wantRight domain.Validity
	}{
		{
			name:      "both valid",
			data:      ports.PositionGuideData{LeftValidity: ports.NativeValid, RightValidity: ports.NativeValid},
			wantLeft:  domain.Valid,
			wantRight: domain.Valid,
		},
		{
			name:      "left only",
			data:      ports.PositionGuideData{LeftValidity: ports.NativeValid, RightValidity: ports.NativeInvalid},
			wantLeft:  domain.Valid,
			wantRight: domain.Invalid,
		},
		{
			name:      "unknown sentinel is invalid",
			data:      ports.PositionGuideData{LeftValidity: 7, RightValidity: -1},
			wantLeft:  domain.Invalid,
			wantRight: domain.Invalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TransformPositionGuide(domain.GazeSample{}, tt.data)
			if got.Left.Validity != tt.wantLeft {
				t.Errorf("left validity = %v, want %v", got.Left.Validity, tt.wantLeft)
			}
			if got.Right.Validity != tt.wantRight {
				t.Errorf("right validity = %v, want %v", got.Right.Validity, tt.wantRight)
			}
		})
	}
}

func TestTransformPositionGuide_CopiesOriginsVerbatim(t *testing.T) {
	data := ports.PositionGuideData{
		TimestampUS:   42,
		LeftValidity:  ports.NativeValid,
		LeftPosition:  domain.Vector3{X: 1.5, Y: -0.2, Z: 0.3},
		RightValidity: ports.NativeValid,
		RightPosition: domain.Vector3{X: 0.4, Y: 0.5, Z: 0.6},
	}

	got := TransformPositionGuide(domain.GazeSample{}, data)

	// no clamping: out-of-box values pass through
	if got.Left.Origin != data.LeftPosition {
		t.Errorf("left origin = %+v, want %+v", got.Left.Origin, data.LeftPosition)
	}
	if got.Right.Origin != data.RightPosition {
		t.Errorf("right origin = %+v, want %+v", got.Right.Origin, data.RightPosition)
	}
	if got.DeviceTimestampUS != 42 {
		t.Errorf("device timestamp = %d, want 42", got.DeviceTimestampUS)
	}

	again := TransformPositionGuide(got, data)
	if again != got {
		t.Errorf("transform is not idempotent: %+v vs %+v", again, got)
	}
}

func TestTransformPositionGuide_KeepsDirection(t *testing.T) {
	dir := domain.Vector3{Z: -1}
	prev := domain.GazeSample{
		Left:  domain.EyeSample{Direction: dir, HasDirection: true},
		Right: domain.EyeSample{Direction: dir, HasDirection: true},
	}

	got := TransformPositionGuide(prev, ports.PositionGuideData{LeftValidity: ports.NativeValid})
	if !got.Left.HasDirection || got.Left.Direction != dir {
		t.Errorf("left direction lost: %+v", got.Left)
	}
	if !got.Right.HasDirection || got.Right.Direction != dir {
		t.Errorf("right direction lost: %+v", got.Right)
	}
}

func TestApplyWearable(t *testing.T) {
	prev := domain.GazeSample{
		Left:  domain.EyeSample{Validity: domain.Valid, Origin: domain.Vector3{X: 0.1}},
		Right: domain.EyeSample{Validity: domain.Invalid},
	}
	dir := domain.Vector3{X: 0.1, Z: -0.99}

	got := ApplyWearable(prev, ports.WearableConsumerData{GazeDirectionValidity: ports.NativeValid, GazeDirection: dir})
	if got.Left.Validity != domain.Valid || got.Left.Origin != prev.Left.Origin {
		t.Errorf("left validity/origin changed: %+v", got.Left)
	}
	if got.Right.Validity != domain.Invalid {
		t.Errorf("right validity changed: %+v", got.Right)
	}
	for _, eye := range []domain.EyeSample{got.Left, got.Right} {
		if !eye.HasDirection || eye.Direction != dir {
			t.Errorf("expected direction %+v, got %+v", dir, eye)
		}
	}

	cleared := ApplyWearable(got, ports.WearableConsumerData{GazeDirectionValidity: ports.NativeInvalid, GazeDirection: dir})
	if cleared.Left.HasDirection || cleared.Right.HasDirection {
		t.Errorf("expected direction cleared, got %+v", cleared)
	}
}
