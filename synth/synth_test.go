package synth

import (
	"math"
	"testing"
)

func TestSynthesizeLength(t *testing.T) {
	g := New(WithSampleRate(100), WithDuration(1), WithSeed(1))

	tt, x, err := g.Synthesize(10, 0.1, 2)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if len(x) != 100 || len(tt) != 100 {
		t.Fatalf("len = %d/%d, want 100", len(tt), len(x))
	}
	if tt[0] != 0 || tt[1] != 0.01 {
		t.Fatalf("time axis starts %v, %v; want 0, 0.01", tt[0], tt[1])
	}
	if last := tt[len(tt)-1]; last >= 1 {
		t.Fatalf("time axis reaches %v, want < duration", last)
	}
}

func TestSynthesizeFractionalDuration(t *testing.T) {
	g := New(WithSampleRate(1000), WithDuration(0.25), WithSeed(1))

	_, x, err := g.Synthesize(50, 0, 1)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if len(x) != 250 {
		t.Fatalf("len = %d, want round(0.25*1000) = 250", len(x))
	}
}

func TestSynthesizeNoSamples(t *testing.T) {
	g := New(WithSampleRate(1), WithDuration(0.4))

	if _, _, err := g.Synthesize(1, 0, 1); err == nil {
		t.Fatal("expected error when rounding yields zero samples")
	}
}

func TestSeedDeterministic(t *testing.T) {
	a := New(WithSampleRate(256), WithSeed(42))
	b := New(WithSampleRate(256), WithSeed(42))

	_, xa, err := a.Synthesize(40, 0.1, 1)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	_, xb, err := b.Synthesize(40, 0.1, 1)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	for i := range xa {
		if xa[i] != xb[i] {
			t.Fatalf("sample %d differs under equal seeds: %v != %v", i, xa[i], xb[i])
		}
	}

	c := New(WithSampleRate(256), WithSeed(43))
	_, xc, err := c.Synthesize(40, 0.1, 1)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	same := true
	for i := range xa {
		if xa[i] != xc[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different noise")
	}
}

func TestZeroWidthFallback(t *testing.T) {
	a := New(WithSampleRate(256), WithSeed(7))
	b := New(WithSampleRate(256), WithSeed(7))

	_, xa, err := a.Synthesize(40, 0, 1)
	if err != nil {
		t.Fatalf("Synthesize(width=0) error = %v", err)
	}
	_, xb, err := b.Synthesize(40, 1.0/8, 1)
	if err != nil {
		t.Fatalf("Synthesize(width=d/8) error = %v", err)
	}

	for i := range xa {
		if xa[i] != xb[i] {
			t.Fatalf("sample %d differs: width=0 must behave as width=duration/8", i)
		}
	}
}

func TestEnvelopePeak(t *testing.T) {
	env := GaussianEnvelope(100, 100, 1, 0.1)
	if env == nil {
		t.Fatal("GaussianEnvelope() = nil")
	}

	if got := env[50]; math.Abs(got-1) > 1e-6 {
		t.Fatalf("envelope at center = %v, want ~1", got)
	}
	if env[0] >= env[25] || env[25] >= env[50] {
		t.Fatalf("envelope not rising toward center: %v %v %v", env[0], env[25], env[50])
	}
	if env[0] > 5e-6 {
		t.Fatalf("envelope edge = %v, want heavily damped", env[0])
	}
}

func TestGaussianEnvelopeDegenerate(t *testing.T) {
	if GaussianEnvelope(0, 100, 1, 0.1) != nil {
		t.Fatal("expected nil for n = 0")
	}
	if GaussianEnvelope(10, 100, 1, 0) != nil {
		t.Fatal("expected nil for std = 0")
	}
}

func TestSynthesizeNoiseless(t *testing.T) {
	g := New(WithSampleRate(200), WithDuration(1), WithNoiseFloor(0))

	tt, x, err := g.Synthesize(10, 0.1, 2)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	env := GaussianEnvelope(len(x), 200, 1, 0.1)
	for i := range x {
		want := 2 * math.Sin(2*math.Pi*10*tt[i]) * env[i]
		if math.Abs(x[i]-want) > 1e-12 {
			t.Fatalf("sample %d = %v, want %v", i, x[i], want)
		}
	}
}

func TestOptionGuards(t *testing.T) {
	g := New(WithSampleRate(-5), WithDuration(0), WithNoiseFloor(-1))

	if g.SampleRate() != defaultSampleRate {
		t.Fatalf("sample rate = %v, want default kept", g.SampleRate())
	}
	if g.Duration() != defaultDuration {
		t.Fatalf("duration = %v, want default kept", g.Duration())
	}
	if g.noiseFloor != defaultNoiseFloor {
		t.Fatalf("noise floor = %v, want default kept", g.noiseFloor)
	}
}
