// Package stats provides single-pass time-domain statistics for
// synthesized injections.
package stats

import "math"

// Stats holds time-domain signal statistics.
type Stats struct {
	Length      int
	DC          float64 // mean
	RMS         float64
	Peak        float64 // max absolute value
	CrestFactor float64 // peak / RMS
	Energy      float64 // sum of squares
}

// Calculate computes all statistics in a single pass over the signal.
// An empty signal yields the zero Stats.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var sum, energy, peak float64

	for _, v := range signal {
		sum += v
		energy += v * v

		if av := math.Abs(v); av > peak {
			peak = av
		}
	}

	s := Stats{
		Length: n,
		DC:     sum / float64(n),
		RMS:    math.Sqrt(energy / float64(n)),
		Peak:   peak,
		Energy: energy,
	}

	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
	}

	return s
}
