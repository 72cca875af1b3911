// Package signature loads newline-delimited JSON signature records and
// resolves per-record labels against signature metadata.
package signature

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/qgeolab/mocksig/keyval"
)

// ErrMalformedLine marks an input line that is not valid JSON.
var ErrMalformedLine = errors.New("signature: malformed NDJSON line")

// Signature describes one synthetic signal's physical parameters.
// Width 0 means unset; the synthesizer substitutes duration/8.
type Signature struct {
	Label     string  `json:"label"`
	Frequency float64 `json:"frequency"`
	Width     float64 `json:"width"`
	Amplitude float64 `json:"amplitude"`
}

// Load reads an NDJSON file of signature records, one JSON object per
// line. Blank lines are skipped. Unknown fields are ignored; a missing
// amplitude defaults to 1. Any line that is not valid JSON is fatal.
func Load(path string) ([]Signature, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sigs []Signature

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineNo := 0
	for sc.Scan() {
		lineNo++

		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		sig := Signature{Amplitude: 1}
		if err := json.Unmarshal([]byte(line), &sig); err != nil {
			return nil, fmt.Errorf("%w %d in %s: %v", ErrMalformedLine, lineNo, path, err)
		}

		sigs = append(sigs, sig)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return sigs, nil
}

// ResolveLabel returns the signature's own label, or a generated
// "<TheoryVariant>_<index>" label for unlabeled records. index is the
// record's 1-based position; the prefix falls back to "sig" when the
// metadata has no TheoryVariant.
func ResolveLabel(sig Signature, meta keyval.Map, index int) string {
	if sig.Label != "" {
		return sig.Label
	}

	return fmt.Sprintf("%s_%d", keyval.String(meta, "TheoryVariant", "sig"), index)
}
