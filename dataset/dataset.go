// Package dataset serializes synthesized injections to NDJSON and
// writes the one-line bracketed run summary.
package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// Record is one synthesized time-series as written to the output
// NDJSON file.
type Record struct {
	Label        string    `json:"label"`
	SamplingRate int       `json:"sampling_rate"`
	TimeSeries   []float64 `json:"time_series"`
}

// Summary captures the aggregate run parameters for the summary file.
// Empty InstrumentType or NoiseModel render as None.
type Summary struct {
	InstrumentType string
	SamplingRate   int
	NoiseModel     string
	InjectionCount int
}

// String renders the single bracketed summary line without the trailing
// newline.
func (s Summary) String() string {
	return fmt.Sprintf("[ InstrumentType = %s, SamplingRate = %d, NoiseModel = %s, InjectionCount = %d ]",
		orNone(s.InstrumentType), s.SamplingRate, orNone(s.NoiseModel), s.InjectionCount)
}

// WriteRecords writes one JSON record per line to path, preserving
// record order. There is no partial-write recovery: a failure midway
// leaves the file truncated.
func WriteRecords(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)

	for i, r := range records {
		if err := enc.Encode(r); err != nil {
			f.Close()
			return fmt.Errorf("dataset: encode record %d (%s): %w", i, r.Label, err)
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("dataset: write %s: %w", path, err)
	}

	return f.Close()
}

// WriteSummary writes the summary line followed by a newline to path.
func WriteSummary(path string, s Summary) error {
	if err := os.WriteFile(path, []byte(s.String()+"\n"), 0o644); err != nil {
		return fmt.Errorf("dataset: write %s: %w", path, err)
	}

	return nil
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}

	return s
}
