// internal/journal/journal.go
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"go-merge-defense/internal/event"

	"github.com/klauspost/compress/zstd"
)

// Record is one journal line.
type Record struct {
	Seq      uint64          `json:"seq"`
	GameTime float64         `json:"game_time"`
	Type     string          `json:"type"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// Writer appends every event it receives to a zstd-compressed JSONL file.
type Writer struct {
	mu    sync.Mutex // Close may come from a signal goroutine
	f     *os.File
	enc   *zstd.Encoder
	w     *bufio.Writer
	seq   uint64
	clock func() float64
}

// Create opens path for writing, truncating it. clock supplies the simulated time stamped on
// each record; nil stamps zero.
func Create(path string, clock func() float64) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Writer{f: f, enc: enc, w: bufio.NewWriter(enc), clock: clock}, nil
}

// OnEvent implements event.Listener. Write errors are logged, never returned to the dispatcher.
func (w *Writer) OnEvent(e event.Event) {
	if err := w.Write(e); err != nil {
		log.Printf("journal: %v", err)
	}
}

// Write appends one event.
func (w *Writer) Write(e event.Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return fmt.Errorf("write %s: journal closed", e.Type)
	}

	rec := Record{Seq: w.seq, Type: string(e.Type)}
	if w.clock != nil {
		rec.GameTime = w.clock()
	}
	if e.Data != nil {
		data, err := json.Marshal(e.Data)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", e.Type, err)
		}
		rec.Data = data
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	w.seq++
	return nil
}

// Close flushes and closes the file. Closing twice is harmless.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return nil
	}
	var firstErr error
	if err := w.w.Flush(); err != nil {
		firstErr = err
	}
	if err := w.enc.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := w.f.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	w.w, w.enc, w.f = nil, nil, nil
	return firstErr
}

// ReadAll decodes every record of a journal file.
func ReadAll(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads zstd-compressed JSONL records from r.
func Decode(r io.Reader) ([]Record, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var out []Record
	scanner := bufio.NewScanner(dec)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("journal line %d: %w", len(out)+1, err)
		}
		out = append(out, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Summary counts records per event type.
func Summary(records []Record) map[string]int {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.Type]++
	}
	return counts
}
