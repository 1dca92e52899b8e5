package session

import (
	"github.com/dfgHiatus/LinuxProEye/internal/domain"
	"github.com/dfgHiatus/LinuxProEye/internal/ports"
)

func validityOf(v ports.NativeValidity) domain.Validity {
	if v == ports.NativeValid {
		return domain.Valid
	}
	return domain.Invalid
}

// TransformPositionGuide maps a user-position-guide sample onto prev.
// Validity and origin of both eyes are replaced; gaze direction is kept.
// Origins are copied as delivered, already normalized by the driver.
func TransformPositionGuide(prev domain.GazeSample, data ports.PositionGuideData) domain.GazeSample {
	next := prev

	next.Left.Validity = validityOf(data.LeftValidity)
	next.Left.Origin = data.LeftPosition

	next.Right.Validity = validityOf(data.RightValidity)
	next.Right.Origin = data.RightPosition

	next.DeviceTimestampUS = data.TimestampUS
	return next
}

// ApplyWearable maps the combined gaze direction of a wearable consumer
// sample onto both eyes of prev. Validity and origin are left alone.
func ApplyWearable(prev domain.GazeSample, data ports.WearableConsumerData) domain.GazeSample {
	next := prev

	hasDirection := data.GazeDirectionValidity == ports.NativeValid
	for _, eye := range []*domain.EyeSample{&next.Left, &next.Right} {
		eye.HasDirection = hasDirection
		if hasDirection {
			eye.Direction = data.GazeDirection
		} else {
			eye.Direction = domain.Vector3{}
		}
	}

	next.DeviceTimestampUS = data.TimestampUS
	return next
}
