package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dfgHiatus/LinuxProEye/internal/domain"
)

// SampleRepository implements domain.SampleRepository with SQLite
type SampleRepository struct {
	db *sql.DB
}

// received_at holds Unix nanoseconds: samples arrive far faster than once a second
const schema = `
CREATE TABLE IF NOT EXISTS gaze_samples (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	sequence INTEGER NOT NULL,
	device_ts_us INTEGER NOT NULL,
	received_at INTEGER NOT NULL,
	left_validity INTEGER NOT NULL,
	left_ox REAL NOT NULL, left_oy REAL NOT NULL, left_oz REAL NOT NULL,
	left_has_dir INTEGER NOT NULL,
	left_dx REAL NOT NULL, left_dy REAL NOT NULL, left_dz REAL NOT NULL,
	right_validity INTEGER NOT NULL,
	right_ox REAL NOT NULL, right_oy REAL NOT NULL, right_oz REAL NOT NULL,
	right_has_dir INTEGER NOT NULL,
	right_dx REAL NOT NULL, right_dy REAL NOT NULL, right_dz REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_gaze_received_at ON gaze_samples(received_at);
CREATE INDEX IF NOT EXISTS idx_gaze_session ON gaze_samples(session_id);
`

const selectColumns = `
	SELECT id, session_id, sequence, device_ts_us, received_at,
		left_validity, left_ox, left_oy, left_oz, left_has_dir, left_dx, left_dy, left_dz,
		right_validity, right_ox, right_oy, right_oz, right_has_dir, right_dx, right_dy, right_dz
	FROM gaze_samples`

// NewSampleRepository creates a SQLite-backed repository
func NewSampleRepository(dbPath string) (*SampleRepository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SampleRepository{db: db}, nil
}

// SaveSample stores a record in SQLite and assigns its ID
func (r *SampleRepository) SaveSample(ctx context.Context, record *domain.GazeRecord) error {
	query := `
		INSERT INTO gaze_samples (session_id, sequence, device_ts_us, received_at,
			left_validity, left_ox, left_oy, left_oz, left_has_dir, left_dx, left_dy, left_dz,
			right_validity, right_ox, right_oy, right_oz, right_has_dir, right_dx, right_dy, right_dz)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	s := record.Sample
	args := []any{record.SessionID, int64(s.Sequence), s.DeviceTimestampUS, s.ReceivedAt.UnixNano()}
	args = append(args, eyeArgs(s.Left)...)
	args = append(args, eyeArgs(s.Right)...)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert sample: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get insert id: %w", err)
	}

	record.ID = id
	return nil
}

func eyeArgs(e domain.EyeSample) []any {
	return []any{
		int(e.Validity),
		e.Origin.X, e.Origin.Y, e.Origin.Z,
		e.HasDirection,
		e.Direction.X, e.Direction.Y, e.Direction.Z,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*domain.GazeRecord, error) {
	var (
		record     domain.GazeRecord
		sequence   int64
		receivedAt int64
		leftValid  int
		rightValid int
	)
	s := &record.Sample

	err := row.Scan(
		&record.ID, &record.SessionID, &sequence, &s.DeviceTimestampUS, &receivedAt,
		&leftValid, &s.Left.Origin.X, &s.Left.Origin.Y, &s.Left.Origin.Z,
		&s.Left.HasDirection, &s.Left.Direction.X, &s.Left.Direction.Y, &s.Left.Direction.Z,
		&rightValid, &s.Right.Origin.X, &s.Right.Origin.Y, &s.Right.Origin.Z,
		&s.Right.HasDirection, &s.Right.Direction.X, &s.Right.Direction.Y, &s.Right.Direction.Z,
	)
	if err != nil {
		return nil, err
	}

	s.Sequence = uint64(sequence)
	s.ReceivedAt = time.Unix(0, receivedAt)
	s.Left.Validity = domain.Validity(leftValid)
	s.Right.Validity = domain.Validity(rightValid)
	return &record, nil
}

// GetSample retrieves a record by ID
func (r *SampleRepository) GetSample(ctx context.Context, id int64) (*domain.GazeRecord, error) {
	record, err := scanRecord(r.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSampleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query sample: %w", err)
	}

	return record, nil
}

// GetSamplesInRange returns all records received in [start, end)
func (r *SampleRepository) GetSamplesInRange(ctx context.Context, start, end time.Time) ([]*domain.GazeRecord, error) {
	query := selectColumns + `
		WHERE received_at >= ? AND received_at < ?
		ORDER BY received_at ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, start.UnixNano(), end.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("failed to query samples: %w", err)
	}
	defer rows.Close()

	var records []*domain.GazeRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sample: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate samples: %w", err)
	}

	return records, nil
}

// GetLatestSample returns the most recently received record
func (r *SampleRepository) GetLatestSample(ctx context.Context) (*domain.GazeRecord, error) {
	query := selectColumns + `
		ORDER BY received_at DESC, id DESC
		LIMIT 1
	`

	record, err := scanRecord(r.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSampleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest sample: %w", err)
	}

	return record, nil
}

// DeleteOldSamples removes records older than specified duration
func (r *SampleRepository) DeleteOldSamples(ctx context.Context, olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)

	_, err := r.db.ExecContext(ctx, `DELETE FROM gaze_samples WHERE received_at < ?`, cutoff.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to delete old samples: %w", err)
	}

	return nil
}

// Close closes the database connection
func (r *SampleRepository) Close() error {
	return r.db.Close()
}
