package grpc

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dfgHiatus/LinuxProEye/internal/domain"
	"github.com/dfgHiatus/LinuxProEye/internal/session"
	"github.com/dfgHiatus/LinuxProEye/pkg/gazerpc"
)

// LiveSession is the part of a session the query service reads from
type LiveSession interface {
	LatestSample() domain.GazeSample
	SessionID() string
	Device() (domain.DeviceDescriptor, error)
	ListSupportedStreams() ([]domain.StreamKind, error)
	Subscriptions() []domain.StreamSubscription
	State() session.State
}

// GazeServiceHandler implements the gRPC GazeService
type GazeServiceHandler struct {
	gazerpc.UnimplementedGazeServiceServer
	repo    domain.SampleRepository
	session LiveSession
}

// NewGazeServiceHandler creates a new gRPC handler
func NewGazeServiceHandler(repo domain.SampleRepository, session LiveSession) *GazeServiceHandler {
	return &GazeServiceHandler{
		repo:    repo,
		session: session,
	}
}

// GetCurrentGaze returns the live sample, falling back to the last stored one
func (h *GazeServiceHandler) GetCurrentGaze(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	log.Debug().Msg("GetCurrentGaze called")

	if sample := h.session.LatestSample(); !sample.IsEmpty() {
		return newStruct(map[string]any{
			gazerpc.FieldSource: "live",
			gazerpc.FieldSample: sampleFields(0, h.session.SessionID(), sample),
		})
	}

	// Nothing received yet in this session
	record, err := h.repo.GetLatestSample(ctx)
	if errors.Is(err, domain.ErrSampleNotFound) {
		return nil, status.Error(codes.NotFound, "no gaze sample received yet")
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to get latest sample")
		return nil, status.Error(codes.Internal, "failed to get sample")
	}

	return newStruct(map[string]any{
		gazerpc.FieldSource: "stored",
		gazerpc.FieldSample: recordFields(record),
	})
}

// GetHistory returns stored samples within time range with tracking statistics
func (h *GazeServiceHandler) GetHistory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	start, err := timeField(req, gazerpc.FieldStartTime, time.Time{})
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	end, err := timeField(req, gazerpc.FieldEndTime, time.Now())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if start.IsZero() {
		return nil, status.Error(codes.InvalidArgument, "start_time is required")
	}
	if end.Before(start) {
		return nil, status.Error(codes.InvalidArgument, "end_time is before start_time")
	}

	log.Info().
		Time("start", start).
		Time("end", end).
		Msg("GetHistory called")

	records, err := h.repo.GetSamplesInRange(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to get samples")
		return nil, status.Error(codes.Internal, "failed to get samples")
	}

	samples := make([]any, len(records))
	for i, r := range records {
		samples[i] = recordFields(r)
	}

	stats := calculateStatistics(records)

	return newStruct(map[string]any{
		gazerpc.FieldSamples: samples,
		"count":              len(records),
		"both_eyes":          stats.both,
		"left_only":          stats.leftOnly,
		"right_only":         stats.rightOnly,
		"no_eyes":            stats.none,
		"tracked_ratio":      stats.trackedRatio(),
	})
}

// GetDevice returns the selected device, what it supports and what is subscribed
func (h *GazeServiceHandler) GetDevice(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	log.Debug().Msg("GetDevice called")

	device, err := h.session.Device()
	if err != nil {
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}

	kinds, err := h.session.ListSupportedStreams()
	if err != nil {
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}
	supported := make([]any, len(kinds))
	for i, k := range kinds {
		supported[i] = k.String()
	}

	subs := h.session.Subscriptions()
	streams := make([]any, len(subs))
	for i, s := range subs {
		streams[i] = s.Kind.String()
	}

	return newStruct(map[string]any{
		gazerpc.FieldSessionID: h.session.SessionID(),
		gazerpc.FieldState:     h.session.State().String(),
		gazerpc.FieldDevice:    deviceFields(device),
		gazerpc.FieldSupported: supported,
		gazerpc.FieldStreams:   streams,
	})
}

func newStruct(fields map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode response")
		return nil, status.Error(codes.Internal, "failed to encode response")
	}
	return s, nil
}

// maxUnixSeconds is 9999-12-31T23:59:59Z
const maxUnixSeconds = 253402300799

func timeField(req *structpb.Struct, name string, fallback time.Time) (time.Time, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return fallback, nil
	}
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		t, err := time.Parse(time.RFC3339Nano, kind.StringValue)
		if err != nil {
			return time.Time{}, errors.New(name + ": expected RFC 3339 timestamp")
		}
		return t, nil
	case *structpb.Value_NumberValue:
		// Unix seconds
		sec := kind.NumberValue
		if math.IsNaN(sec) || sec < 0 || sec > maxUnixSeconds {
			return time.Time{}, errors.New(name + ": unix seconds out of range")
		}
		whole, frac := math.Modf(sec)
		return time.Unix(int64(whole), int64(frac*float64(time.Second))), nil
	default:
		return time.Time{}, errors.New(name + ": expected timestamp string or unix seconds")
	}
}

// recordFields converts a stored record to its wire document
func recordFields(r *domain.GazeRecord) map[string]any {
	return sampleFields(r.ID, r.SessionID, r.Sample)
}

func sampleFields(id int64, sessionID string, s domain.GazeSample) map[string]any {
	fields := map[string]any{
		"session_id":          sessionID,
		"sequence":            s.Sequence,
		"device_timestamp_us": s.DeviceTimestampUS,
		"received_at":         s.ReceivedAt.UTC().Format(time.RFC3339Nano),
		"tracking_state":      s.TrackingState(),
		"left":                eyeFields(s.Left),
		"right":               eyeFields(s.Right),
	}
	if id != 0 {
		fields["id"] = id
	}
	return fields
}

func eyeFields(e domain.EyeSample) map[string]any {
	fields := map[string]any{
		"validity":      e.Validity.String(),
		"origin":        vectorFields(e.Origin),
		"has_direction": e.HasDirection,
	}
	if e.HasDirection {
		fields["direction"] = vectorFields(e.Direction)
	}
	return fields
}

func vectorFields(v domain.Vector3) map[string]any {
	return map[string]any{"x": v.X, "y": v.Y, "z": v.Z}
}

func deviceFields(d domain.DeviceDescriptor) map[string]any {
	fields := map[string]any{
		"url":              d.URL,
		"name":             d.Name,
		"integration_type": d.IntegrationType,
		"serial_number":    d.SerialNumber,
		"model":            d.Model,
		"generation":       d.Generation,
		"firmware_version": d.FirmwareVersion,
	}
	optional := map[string]string{
		"integration_id":         d.IntegrationID,
		"hw_calibration_version": d.HWCalibrationVersion,
		"hw_calibration_date":    d.HWCalibrationDate,
		"lot_id":                 d.LotID,
		"runtime_build_version":  d.RuntimeBuildVersion,
	}
	for k, v := range optional {
		if v != "" {
			fields[k] = v
		}
	}
	return fields
}

// statistics counts samples per tracking state
type statistics struct {
	both      int
	leftOnly  int
	rightOnly int
	none      int
}

func (s statistics) total() int {
	return s.both + s.leftOnly + s.rightOnly + s.none
}

// trackedRatio is the share of samples with at least one valid eye
func (s statistics) trackedRatio() float64 {
	if s.total() == 0 {
		return 0
	}
	return float64(s.both+s.leftOnly+s.rightOnly) / float64(s.total())
}

// calculateStatistics computes stats for a set of records
func calculateStatistics(records []*domain.GazeRecord) statistics {
	var stats statistics
	for _, r := range records {
		left, right := r.Sample.Left.IsValid(), r.Sample.Right.IsValid()
		switch {
		case left && right:
			stats.both++
		case left:
			stats.leftOnly++
		case right:
			stats.rightOnly++
		default:
			stats.none++
		}
	}
	return stats
}
