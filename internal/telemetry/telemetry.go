// Package telemetry writes per-generation and per-frame statistics as CSV.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// GenerationRecord is one row of the life statistics file.
type GenerationRecord struct {
	Generation int     `csv:"generation"`
	Time       float64 `csv:"time_s"`
	Alive      int     `csv:"alive"`
	Births     int     `csv:"births"`
	Deaths     int     `csv:"deaths"`
}

// FlockRecord is one row of the boids statistics file.
type FlockRecord struct {
	Frame     int     `csv:"frame"`
	Time      float64 `csv:"time_s"`
	MeanSpeed float64 `csv:"mean_speed"`
	MaxSpeed  float64 `csv:"max_speed"`
}

// SweepRecord summarises one seed of a sweep run.
type SweepRecord struct {
	Seed        int64 `csv:"seed"`
	Generations int   `csv:"generations"`
	FirstAlive  int   `csv:"first_alive"`
	FinalAlive  int   `csv:"final_alive"`
	PeakAlive   int   `csv:"peak_alive"`
	Births      int   `csv:"births"`
	Deaths      int   `csv:"deaths"`
	Extinct     bool  `csv:"extinct"`
}

// Writer appends records of type T to an io.Writer, emitting the header
// before the first row only.
type Writer[T any] struct {
	w             io.Writer
	headerWritten bool
}

// NewWriter wraps w.
func NewWriter[T any](w io.Writer) *Writer[T] {
	return &Writer[T]{w: w}
}

// Write appends records.
func (cw *Writer[T]) Write(records ...T) error {
	if cw == nil || len(records) == 0 {
		return nil
	}
	if !cw.headerWritten {
		if err := gocsv.Marshal(records, cw.w); err != nil {
			return fmt.Errorf("writing records: %w", err)
		}
		cw.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, cw.w); err != nil {
		return fmt.Errorf("writing records: %w", err)
	}
	return nil
}

// Output owns the CSV files of one run.
type Output struct {
	dir         string
	lifeFile    *os.File
	flockFile   *os.File
	generations *Writer[GenerationRecord]
	frames      *Writer[FlockRecord]
}

// NewOutput creates dir and opens generations.csv and flock.csv inside it.
// Returns nil if dir is empty (output disabled).
func NewOutput(dir string) (*Output, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	lf, err := os.Create(filepath.Join(dir, "generations.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating generations.csv: %w", err)
	}
	ff, err := os.Create(filepath.Join(dir, "flock.csv"))
	if err != nil {
		lf.Close()
		return nil, fmt.Errorf("creating flock.csv: %w", err)
	}

	return &Output{
		dir:         dir,
		lifeFile:    lf,
		flockFile:   ff,
		generations: NewWriter[GenerationRecord](lf),
		frames:      NewWriter[FlockRecord](ff),
	}, nil
}

// WriteGeneration appends a life statistics row. A nil Output discards it.
func (o *Output) WriteGeneration(r GenerationRecord) error {
	if o == nil {
		return nil
	}
	return o.generations.Write(r)
}

// WriteFrame appends a boids statistics row. A nil Output discards it.
func (o *Output) WriteFrame(r FlockRecord) error {
	if o == nil {
		return nil
	}
	return o.frames.Write(r)
}

// Dir returns the output directory path.
func (o *Output) Dir() string {
	if o == nil {
		return ""
	}
	return o.dir
}

// Close closes all output files.
func (o *Output) Close() error {
	if o == nil {
		return nil
	}
	var firstErr error
	for _, f := range []*os.File{o.lifeFile, o.flockFile} {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
