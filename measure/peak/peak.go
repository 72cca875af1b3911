// Package peak estimates the dominant frequency of a time-domain
// signal. It is used to sanity-check synthesized injections against
// their requested carrier frequency.
package peak

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var errEmptySignal = errors.New("peak: signal must not be empty")

// Estimate returns the frequency in Hz of the strongest non-DC spectral
// component. The signal is zero-padded to the next power of two and the
// peak bin is refined by parabolic interpolation over its neighbors.
func Estimate(signal []float64, sampleRate float64) (float64, error) {
	if len(signal) == 0 {
		return 0, errEmptySignal
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("peak: sample rate must be > 0: %f", sampleRate)
	}

	fftSize := nextPowerOf2(len(signal))
	if fftSize < 4 {
		fftSize = 4
	}

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("peak: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("peak: fft: %w", err)
	}

	binCount := fftSize/2 + 1

	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := 0; i < binCount; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, binCount)
	vecmath.Power(power, re, im)

	// Skip the DC bin.
	best := 1
	for i := 2; i < binCount; i++ {
		if power[i] > power[best] {
			best = i
		}
	}

	binHz := sampleRate / float64(fftSize)

	pos := float64(best)
	if best > 1 && best < binCount-1 {
		pos += parabolicOffset(power[best-1], power[best], power[best+1])
	}

	return pos * binHz, nil
}

// parabolicOffset returns the sub-bin offset in [-0.5, 0.5] of the
// parabola vertex through three adjacent power values.
func parabolicOffset(left, center, right float64) float64 {
	den := left - 2*center + right
	if den == 0 {
		return 0
	}

	off := 0.5 * (left - right) / den
	if off < -0.5 {
		return -0.5
	}
	if off > 0.5 {
		return 0.5
	}

	return off
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
