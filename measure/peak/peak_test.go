package peak

import (
	"math"
	"testing"
)

func sine(freq, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
	}

	return out
}

func TestEstimateBinAligned(t *testing.T) {
	got, err := Estimate(sine(440, 4096, 4096), 4096)
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if math.Abs(got-440) > 0.5 {
		t.Fatalf("freq = %v, want ~440", got)
	}
}

func TestEstimateZeroPadded(t *testing.T) {
	// 1000 samples pad to 1024; the 100 Hz component leaks across bins.
	got, err := Estimate(sine(100, 1000, 1000), 1000)
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if math.Abs(got-100) > 2 {
		t.Fatalf("freq = %v, want ~100", got)
	}
}

func TestEstimateEmpty(t *testing.T) {
	if _, err := Estimate(nil, 4096); err == nil {
		t.Fatal("expected error for empty signal")
	}
}

func TestEstimateBadRate(t *testing.T) {
	if _, err := Estimate([]float64{1, 2, 3}, 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}
