package capture

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/dfgHiatus/LinuxProEye/internal/domain"
)

// Version is the current capture format version
const Version = 1

// ErrUnsupportedVersion is returned when reading a capture written by a newer format
var ErrUnsupportedVersion = errors.New("unsupported capture version")

// Header opens every capture file
type Header struct {
	Version   int                     `cbor:"1,keyasint"`
	SessionID string                  `cbor:"2,keyasint"`
	Device    domain.DeviceDescriptor `cbor:"3,keyasint"`
	Streams   []string                `cbor:"4,keyasint,omitempty"`
	StartedAt time.Time               `cbor:"5,keyasint"`
}

// Record is one received sample
type Record struct {
	Sample domain.GazeSample `cbor:"1,keyasint"`
}

// Writer appends samples to a capture file.
// It is safe for concurrent use.
type Writer struct {
	mu      sync.Mutex
	file    *os.File
	encoder *cbor.Encoder
	closed  bool
}

// Create truncates or creates path and writes the header
func Create(path string, header Header) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("create capture: %w", err)
	}

	w := &Writer{file: f, encoder: newEncoder(f)}
	header.Version = Version
	if header.StartedAt.IsZero() {
		header.StartedAt = time.Now()
	}
	if err := w.encoder.Encode(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write capture header: %w", err)
	}
	return w, nil
}

// WriteSample appends a sample. Writes after Close are ignored.
func (w *Writer) WriteSample(sample domain.GazeSample) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	return w.encoder.Encode(Record{Sample: sample})
}

// Close closes the file; calling it again is a no-op
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

// Reader streams samples back from a capture file
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	header  Header
}

// Open reads the header of the capture at path
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open capture: %w", err)
	}

	r := &Reader{file: f, decoder: newDecoder(f)}
	if err := r.decoder.Decode(&r.header); err != nil {
		f.Close()
		return nil, fmt.Errorf("read capture header: %w", err)
	}
	if r.header.Version > Version {
		f.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, r.header.Version)
	}
	return r, nil
}

// Header returns the capture header
func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next sample, or io.EOF at the end of the capture
func (r *Reader) Next() (domain.GazeSample, error) {
	var rec Record
	if err := r.decoder.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.GazeSample{}, io.EOF
		}
		return domain.GazeSample{}, fmt.Errorf("read capture record: %w", err)
	}
	return rec.Sample, nil
}

// Close closes the underlying file
func (r *Reader) Close() error {
	return r.file.Close()
}
