package ports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dfgHiatus/LinuxProEye/internal/domain"
)

// ErrTooManyPollFailures stops the recorder after consecutive hard poll errors
var ErrTooManyPollFailures = errors.New("too many consecutive poll failures")

// GazeSource is the part of a session the recorder drives
type GazeSource interface {
	Poll(ctx context.Context, timeout time.Duration) error
	LatestSample() domain.GazeSample
	SessionID() string
}

// SampleSink receives every recorded sample, e.g. a capture file
type SampleSink interface {
	WriteSample(sample domain.GazeSample) error
}

// SamplePublisher fans recorded samples out to live listeners
type SamplePublisher interface {
	Publish(sample domain.GazeSample)
}

// RecorderConfig tunes the poll loop
type RecorderConfig struct {
	PollTimeout     time.Duration
	PollInterval    time.Duration
	Retention       time.Duration
	CleanupInterval time.Duration
	// MaxPollFailures of 0 never gives up
	MaxPollFailures int

	Sink      SampleSink
	Publisher SamplePublisher
}

// Recorder drives a session's poll loop and stores what it receives
type Recorder struct {
	source GazeSource
	repo   domain.SampleRepository
	cfg    RecorderConfig

	lastSequence uint64
	failures     int
}

// NewRecorder creates a new background recorder
func NewRecorder(source GazeSource, repo domain.SampleRepository, cfg RecorderConfig) *Recorder {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 10 * time.Millisecond
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 24 * time.Hour
	}
	return &Recorder{
		source: source,
		repo:   repo,
		cfg:    cfg,
	}
}

// Start polls the session until ctx is cancelled.
// It returns nil on cancellation, and an error if the session cannot be
// polled at all or keeps failing.
func (r *Recorder) Start(ctx context.Context) error {
	log.Info().
		Dur("poll_timeout", r.cfg.PollTimeout).
		Dur("interval", r.cfg.PollInterval).
		Str("session_id", r.source.SessionID()).
		Msg("starting background recorder")

	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	cleanupTicker := time.NewTicker(r.cfg.CleanupInterval)
	defer cleanupTicker.Stop()

	for {
		if err := r.recordOnce(ctx); err != nil {
			log.Error().Err(err).Msg("stopping background recorder")
			return err
		}

		select {
		case <-ticker.C:

		case <-cleanupTicker.C:
			r.cleanup(ctx)

		case <-ctx.Done():
			log.Info().Msg("stopping background recorder")
			return nil
		}
	}
}

func (r *Recorder) cleanup(ctx context.Context) {
	if r.cfg.Retention <= 0 {
		return
	}
	if err := r.repo.DeleteOldSamples(ctx, r.cfg.Retention); err != nil {
		log.Error().Err(err).Msg("failed to delete old samples")
		return
	}
	log.Info().Dur("retention", r.cfg.Retention).Msg("deleted expired samples")
}

// recordOnce polls once and stores the latest sample if it is new.
// Only errors that should end the loop are returned.
func (r *Recorder) recordOnce(ctx context.Context) error {
	err := r.source.Poll(ctx, r.cfg.PollTimeout)
	switch {
	case err == nil:
		r.failures = 0
	case ctx.Err() != nil:
		return nil
	case errors.Is(err, domain.ErrNotReady):
		return err
	default:
		var pollErr *domain.PollError
		if !errors.As(err, &pollErr) {
			return err
		}
		r.failures++
		log.Warn().Err(err).Int("consecutive", r.failures).Msg("poll failed")
		if r.cfg.MaxPollFailures > 0 && r.failures >= r.cfg.MaxPollFailures {
			return fmt.Errorf("%w: %w", ErrTooManyPollFailures, err)
		}
		return nil
	}

	sample := r.source.LatestSample()
	if sample.IsEmpty() || sample.Sequence == r.lastSequence {
		return nil
	}
	r.lastSequence = sample.Sequence

	record, err := domain.NewGazeRecord(r.source.SessionID(), sample)
	if err != nil {
		log.Error().Err(err).Msg("failed to create record")
		return nil
	}

	if err := r.repo.SaveSample(ctx, record); err != nil {
		log.Error().Err(err).Msg("failed to save sample")
	}

	if r.cfg.Sink != nil {
		if err := r.cfg.Sink.WriteSample(sample); err != nil {
			log.Error().Err(err).Msg("failed to write capture")
		}
	}

	if r.cfg.Publisher != nil {
		r.cfg.Publisher.Publish(sample)
	}

	log.Debug().
		Uint64("sequence", sample.Sequence).
		Str("tracking", sample.TrackingState()).
		Msg("recorded gaze sample")

	return nil
}
