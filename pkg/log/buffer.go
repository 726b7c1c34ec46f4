package log

import (
	"bytes"
	"io"
	"sync"
)

// DefaultRingSize is used when a non-positive size is given to [NewRing].
const DefaultRingSize = 200

// Ring keeps the most recent log records in memory. It is installed as the
// log sink while the viewer owns the terminal, and drained once it exits.
type Ring struct {
	records [][]byte
	next    int
	count   int
	mu      sync.Mutex
}

func NewRing(size int) *Ring {
	if size <= 0 {
		size = DefaultRingSize
	}

	return &Ring{records: make([][]byte, size)}
}

// Write stores a copy of p as one record, evicting the oldest if needed.
func (r *Ring) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[r.next] = bytes.Clone(p)
	r.next = (r.next + 1) % len(r.records)
	r.count = min(r.count+1, len(r.records))

	return len(p), nil
}

// Records returns copies of the stored records, oldest first.
func (r *Ring) Records() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][]byte, 0, r.count)

	start := (r.next - r.count + len(r.records)) % len(r.records)
	for i := range r.count {
		out = append(out, bytes.Clone(r.records[(start+i)%len(r.records)]))
	}

	return out
}

// Len returns the number of stored records.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.count
}

// Reset drops all records.
func (r *Ring) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.records)
	r.next = 0
	r.count = 0
}

// WriteTo writes the stored records to w, oldest first, and implements
// [io.WriterTo].
func (r *Ring) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for _, rec := range r.Records() {
		n, err := w.Write(rec)
		total += int64(n)

		if err != nil {
			return total, err //nolint:wrapcheck // Passthrough for io.WriterTo.
		}
	}

	return total, nil
}
