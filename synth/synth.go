package synth

import (
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	defaultSampleRate = 4096.0
	defaultDuration   = 1.0
	defaultNoiseFloor = 0.05
)

// Generator synthesizes signals from a shared instrument configuration.
// A Generator with a nonzero seed is deterministic; consecutive
// Synthesize calls consume one continuous noise stream.
type Generator struct {
	sampleRate float64
	duration   float64
	noiseFloor float64
	src        rand.Source
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the sampling rate in Hz.
func WithSampleRate(hz float64) Option {
	return func(g *Generator) {
		if hz > 0 {
			g.sampleRate = hz
		}
	}
}

// WithDuration sets the signal duration in seconds.
func WithDuration(seconds float64) Option {
	return func(g *Generator) {
		if seconds > 0 {
			g.duration = seconds
		}
	}
}

// WithSeed sets a deterministic seed for noise generation. Seed 0
// selects a time-based seed, making runs non-reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		if seed != 0 {
			g.src = rand.NewSource(uint64(seed))
		}
	}
}

// WithNoiseFloor sets the noise standard deviation as a fraction of the
// signature amplitude. Zero disables noise entirely.
func WithNoiseFloor(fraction float64) Option {
	return func(g *Generator) {
		if fraction >= 0 {
			g.noiseFloor = fraction
		}
	}
}

// New creates a configured signal generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		sampleRate: defaultSampleRate,
		duration:   defaultDuration,
		noiseFloor: defaultNoiseFloor,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	if g.src == nil {
		g.src = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	return g
}

// SampleRate returns the configured sampling rate in Hz.
func (g *Generator) SampleRate() float64 { return g.sampleRate }

// Duration returns the configured signal duration in seconds.
func (g *Generator) Duration() float64 { return g.duration }

// Synthesize builds one time-series for the given signature parameters
// and returns the time axis and the samples. width <= 0 falls back to
// an envelope standard deviation of duration/8.
func (g *Generator) Synthesize(freqHz, width, amplitude float64) ([]float64, []float64, error) {
	n := int(math.Round(g.duration * g.sampleRate))
	if n <= 0 {
		return nil, nil, fmt.Errorf("synth: duration %f at %f Hz yields no samples", g.duration, g.sampleRate)
	}

	t := make([]float64, n)
	step := 1 / g.sampleRate
	for i := range t {
		t[i] = float64(i) * step
	}

	out := make([]float64, n)
	omega := 2 * math.Pi * freqHz
	for i := range out {
		out[i] = amplitude * math.Sin(omega*t[i])
	}

	std := width
	if std <= 0 {
		std = g.duration / 8
	}

	vecmath.MulBlockInPlace(out, GaussianEnvelope(n, g.sampleRate, g.duration, std))

	if sigma := g.noiseFloor * math.Abs(amplitude); sigma > 0 {
		vecmath.AddBlockInPlace(out, g.noise(sigma, n))
	}

	return t, out, nil
}

// GaussianEnvelope returns n samples of a Gaussian window centered at
// duration/2 with standard deviation std, evaluated on the same time
// axis Synthesize uses. Returns nil for degenerate arguments.
func GaussianEnvelope(n int, sampleRate, duration, std float64) []float64 {
	if n <= 0 || sampleRate <= 0 || std <= 0 {
		return nil
	}

	center := duration / 2

	out := make([]float64, n)
	for i := range out {
		x := (float64(i)/sampleRate - center) / std
		out[i] = math.Exp(-0.5 * x * x)
	}

	return out
}

func (g *Generator) noise(sigma float64, n int) []float64 {
	dist := distuv.Normal{Mu: 0, Sigma: sigma, Src: g.src}

	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}

	return out
}
