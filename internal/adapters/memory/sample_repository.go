package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dfgHiatus/LinuxProEye/internal/domain"
)

// DefaultMaxRecords bounds the repository when no capacity is given,
// about 13 minutes of samples at 125 Hz
const DefaultMaxRecords = 100_000

// SampleRepository implements domain.SampleRepository with in-memory storage.
// It holds at most maxRecords records and evicts the oldest saved first.
type SampleRepository struct {
	mu         sync.RWMutex
	records    map[int64]*domain.GazeRecord
	order      []int64 // IDs in save order, oldest first
	maxRecords int
	nextID     int64
	// latest is the ID of the most recently received record, 0 if empty
	latest int64
}

// NewSampleRepository creates an empty repository holding up to maxRecords
// records; maxRecords <= 0 uses DefaultMaxRecords
func NewSampleRepository(maxRecords int) *SampleRepository {
	if maxRecords <= 0 {
		maxRecords = DefaultMaxRecords
	}
	return &SampleRepository{
		records:    make(map[int64]*domain.GazeRecord),
		maxRecords: maxRecords,
		nextID:     1,
	}
}

func newer(a, b *domain.GazeRecord) bool {
	if a.Timestamp().Equal(b.Timestamp()) {
		return a.ID > b.ID
	}
	return a.Timestamp().After(b.Timestamp())
}

// SaveSample stores a copy of the record in memory
func (r *SampleRepository) SaveSample(ctx context.Context, record *domain.GazeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == 0 {
		record.ID = r.nextID
		r.nextID++
	}

	stored := *record
	if _, exists := r.records[stored.ID]; !exists {
		r.order = append(r.order, stored.ID)
	}
	r.records[stored.ID] = &stored

	for len(r.order) > r.maxRecords {
		delete(r.records, r.order[0])
		r.order = r.order[1:]
	}

	cur, ok := r.records[r.latest]
	switch {
	case !ok || r.latest == stored.ID:
		// empty, evicted or overwritten in place
		r.refreshLatest()
	case newer(&stored, cur):
		r.latest = stored.ID
	}
	return nil
}

// refreshLatest rescans for the newest record; callers hold the write lock
func (r *SampleRepository) refreshLatest() {
	r.latest = 0
	var latest *domain.GazeRecord
	for _, record := range r.records {
		if latest == nil || newer(record, latest) {
			latest = record
		}
	}
	if latest != nil {
		r.latest = latest.ID
	}
}

// GetSample retrieves a record by ID
func (r *SampleRepository) GetSample(ctx context.Context, id int64) (*domain.GazeRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[id]
	if !exists {
		return nil, domain.ErrSampleNotFound
	}

	out := *record
	return &out, nil
}

// GetSamplesInRange returns all records received in [start, end)
func (r *SampleRepository) GetSamplesInRange(ctx context.Context, start, end time.Time) ([]*domain.GazeRecord, error) {
	r.mu.RLock()
	var results []*domain.GazeRecord
	for _, id := range r.order {
		record := r.records[id]
		ts := record.Timestamp()
		if !ts.Before(start) && ts.Before(end) {
			out := *record
			results = append(results, &out)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Timestamp().Equal(results[j].Timestamp()) {
			return results[i].ID < results[j].ID
		}
		return results[i].Timestamp().Before(results[j].Timestamp())
	})

	return results, nil
}

// GetLatestSample returns the most recently received record
func (r *SampleRepository) GetLatestSample(ctx context.Context) (*domain.GazeRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	latest, ok := r.records[r.latest]
	if !ok {
		return nil, domain.ErrSampleNotFound
	}

	out := *latest
	return &out, nil
}

// DeleteOldSamples removes records older than specified duration
func (r *SampleRepository) DeleteOldSamples(ctx context.Context, olderThan time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)

	kept := r.order[:0]
	for _, id := range r.order {
		if r.records[id].Timestamp().Before(cutoff) {
			delete(r.records, id)
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept

	if _, ok := r.records[r.latest]; !ok {
		r.refreshLatest()
	}
	return nil
}

// Len returns the number of records held
func (r *SampleRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
