// Command mocksig synthesizes mock detector time-series from signal
// signatures and an instrument specification.
//
// Usage:
//
//	mocksig -signatures signatures.ndjson -signature-meta signatures.am \
//	        -instrument-spec instrument_spec.am \
//	        -output-ndjson mock_data.ndjson -output-meta mock_data.am
//
// Each input signature (label/frequency/width/amplitude) becomes one
// injection: a sine carrier shaped by a Gaussian envelope with additive
// white noise, sampled at the instrument's rate. Results are written as
// NDJSON plus a one-line summary in the same key-value text style as
// the inputs.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/qgeolab/mocksig/dataset"
	"github.com/qgeolab/mocksig/keyval"
	"github.com/qgeolab/mocksig/measure/peak"
	"github.com/qgeolab/mocksig/signature"
	"github.com/qgeolab/mocksig/stats"
	"github.com/qgeolab/mocksig/synth"
)

const (
	defaultSamplingRate = 4096
	defaultDuration     = 1.0
)

type options struct {
	signatures     string
	signatureMeta  string
	instrumentSpec string
	outputNDJSON   string
	outputMeta     string
	seed           int64
	noiseFloor     float64
}

func main() {
	var opts options

	flag.StringVar(&opts.signatures, "signatures", "", "NDJSON file of signature records (required)")
	flag.StringVar(&opts.signatureMeta, "signature-meta", "", "key-value text file with signature metadata (required)")
	flag.StringVar(&opts.instrumentSpec, "instrument-spec", "", "key-value text file with the instrument specification (required)")
	flag.StringVar(&opts.outputNDJSON, "output-ndjson", "", "destination for synthesized time-series (required)")
	flag.StringVar(&opts.outputMeta, "output-meta", "", "destination for the summary text (required)")
	flag.Int64Var(&opts.seed, "seed", 0, "noise seed; 0 seeds from the clock")
	flag.Float64Var(&opts.noiseFloor, "noise-floor", 0.05, "noise standard deviation as a fraction of signature amplitude")
	verbose := flag.Bool("verbose", false, "log per-injection diagnostics to stderr")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mocksig [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Synthesizes mock detector time-series from signal signatures.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  mocksig -signatures signatures.ndjson -signature-meta signatures.am \\\n")
		fmt.Fprintf(os.Stderr, "          -instrument-spec instrument_spec.am \\\n")
		fmt.Fprintf(os.Stderr, "          -output-ndjson mock_data.ndjson -output-meta mock_data.am\n")
	}
	flag.Parse()

	if missing := missingFlags(opts); len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "error: missing required flags: %v\n\n", missing)
		flag.Usage()
		os.Exit(2)
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()

	if err := run(opts, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func missingFlags(opts options) []string {
	var missing []string

	for _, f := range []struct {
		name  string
		value string
	}{
		{"-signatures", opts.signatures},
		{"-signature-meta", opts.signatureMeta},
		{"-instrument-spec", opts.instrumentSpec},
		{"-output-ndjson", opts.outputNDJSON},
		{"-output-meta", opts.outputMeta},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}

	return missing
}

func run(opts options, logger *zap.Logger) error {
	sigMeta, err := keyval.ParseFile(opts.signatureMeta)
	if err != nil {
		return fmt.Errorf("signature metadata: %w", err)
	}

	inst, err := keyval.ParseFile(opts.instrumentSpec)
	if err != nil {
		return fmt.Errorf("instrument spec: %w", err)
	}

	sigs, err := signature.Load(opts.signatures)
	if err != nil {
		return fmt.Errorf("signatures: %w", err)
	}

	samplingRate := keyval.Int(inst, "SamplingRate", defaultSamplingRate)
	duration := keyval.Float(inst, "Duration", defaultDuration)

	logger.Info("resolved instrument parameters",
		zap.Int("sampling_rate", samplingRate),
		zap.Float64("duration", duration),
		zap.Int("signatures", len(sigs)),
	)

	gen := synth.New(
		synth.WithSampleRate(float64(samplingRate)),
		synth.WithDuration(duration),
		synth.WithSeed(opts.seed),
		synth.WithNoiseFloor(opts.noiseFloor),
	)

	records := make([]dataset.Record, 0, len(sigs))

	for i, sig := range sigs {
		label := signature.ResolveLabel(sig, sigMeta, i+1)

		_, samples, err := gen.Synthesize(sig.Frequency, sig.Width, sig.Amplitude)
		if err != nil {
			return fmt.Errorf("synthesize %s: %w", label, err)
		}

		logInjection(logger, label, samples, float64(samplingRate))

		records = append(records, dataset.Record{
			Label:        label,
			SamplingRate: samplingRate,
			TimeSeries:   samples,
		})
	}

	if err := dataset.WriteRecords(opts.outputNDJSON, records); err != nil {
		return err
	}

	summary := dataset.Summary{
		InstrumentType: keyval.String(inst, "InstrumentType", ""),
		SamplingRate:   samplingRate,
		NoiseModel:     keyval.String(inst, "NoiseModel", ""),
		InjectionCount: len(records),
	}
	if err := dataset.WriteSummary(opts.outputMeta, summary); err != nil {
		return err
	}

	fmt.Printf("Wrote %d mock signals to %s\n", len(records), opts.outputNDJSON)
	fmt.Printf("Wrote summary to %s\n", opts.outputMeta)

	return nil
}

func logInjection(logger *zap.Logger, label string, samples []float64, sampleRate float64) {
	if !logger.Core().Enabled(zap.InfoLevel) {
		return
	}

	st := stats.Calculate(samples)

	fields := []zap.Field{
		zap.String("label", label),
		zap.Int("samples", st.Length),
		zap.Float64("rms", st.RMS),
		zap.Float64("peak", st.Peak),
	}

	if freq, err := peak.Estimate(samples, sampleRate); err == nil {
		fields = append(fields, zap.Float64("peak_freq_hz", freq))
	}

	logger.Info("synthesized injection", fields...)
}
