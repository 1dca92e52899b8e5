package domain

import (
	"context"
	"time"
)

// SampleRepository defines operations for storing/retrieving gaze samples
// This is a PORT - adapters (SQLite, Memory) implement it
type SampleRepository interface {
	// SaveSample persists a record and assigns its ID
	SaveSample(ctx context.Context, record *GazeRecord) error

	// GetSample retrieves a specific record by ID
	GetSample(ctx context.Context, id int64) (*GazeRecord, error)

	// GetSamplesInRange retrieves all records received within time range.
	// Uses a half-open interval: inclusive start, exclusive end [start, end).
	GetSamplesInRange(ctx context.Context, start, end time.Time) ([]*GazeRecord, error)

	// GetLatestSample retrieves the most recently received record
	GetLatestSample(ctx context.Context) (*GazeRecord, error)

	// DeleteOldSamples removes records older than specified duration
	DeleteOldSamples(ctx context.Context, olderThan time.Duration) error
}
