package snr

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ssvep/dsp/spectrum"
)

const (
	// DefaultNeighborBandHz is the half-width of the neighborhood around the
	// target from which noise power is averaged.
	DefaultNeighborBandHz = 1.0

	// DefaultGuardBandHz is the half-width of the band around the target
	// excluded from the noise average.
	DefaultGuardBandHz = 0.5
)

// Config holds SNR estimation parameters.
type Config struct {
	NeighborBandHz float64
	GuardBandHz    float64
}

// Option mutates a Config.
type Option func(*Config)

// WithNeighborBand sets the neighborhood half-width in Hz.
func WithNeighborBand(hz float64) Option {
	return func(cfg *Config) {
		if hz > 0 {
			cfg.NeighborBandHz = hz
		}
	}
}

// WithGuardBand sets the guard-band half-width in Hz.
func WithGuardBand(hz float64) Option {
	return func(cfg *Config) {
		if hz >= 0 {
			cfg.GuardBandHz = hz
		}
	}
}

func applyOptions(opts []Option) Config {
	cfg := Config{
		NeighborBandHz: DefaultNeighborBandHz,
		GuardBandHz:    DefaultGuardBandHz,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Result holds the outcome of a single SNR estimation.
//
//nolint:revive
type Result struct {
	TargetHz     float64 // requested target frequency
	BinIndex     int     // resolved target bin
	BinHz        float64 // center frequency of the resolved bin
	TargetPower  float64
	NoisePower   float64 // mean power of the neighbor bins
	NeighborBins int
	SNR          float64
	SNR_dB       float64
}

// Estimate computes the SNR at targetHz from a power spectrum and its
// index-aligned frequency grid.
//
// The grid step is taken as the mean of consecutive bin-center differences;
// the target resolves to the first bin within half a step of targetHz, with
// ties going to the lower-frequency bin. Noise power is the arithmetic mean
// over all bins in the closed neighbor band excluding the closed guard band.
//
// Estimate is pure and deterministic. A zero-power neighborhood is not
// special-cased: the ratio is +Inf for a nonzero target bin and NaN for a
// zero one. Failure to resolve the target wraps [ErrTargetNotResolvable];
// an empty neighborhood wraps [ErrNoValidNeighbors].
func Estimate(power, freqs []float64, targetHz float64, opts ...Option) (Result, error) {
	cfg := applyOptions(opts)

	if len(power) == 0 {
		return Result{}, fmt.Errorf("snr: power spectrum must not be empty")
	}
	if len(power) != len(freqs) {
		return Result{}, fmt.Errorf("snr: power/frequency length mismatch: %d != %d", len(power), len(freqs))
	}
	if err := spectrum.ValidateGrid(freqs); err != nil {
		return Result{}, fmt.Errorf("snr: %w", err)
	}

	df := spectrum.BinSpacing(freqs)

	bin, ok := spectrum.ResolveBin(freqs, targetHz, df/2)
	if !ok {
		return Result{}, fmt.Errorf("snr: target %g Hz on grid [%g, %g] Hz: %w",
			targetHz, freqs[0], freqs[len(freqs)-1], ErrTargetNotResolvable)
	}

	guardLo := targetHz - cfg.GuardBandHz
	guardHi := targetHz + cfg.GuardBandHz

	i0, i1 := spectrum.BandIndices(freqs, targetHz-cfg.NeighborBandHz, targetHz+cfg.NeighborBandHz)

	sum := 0.0
	count := 0
	for j := i0; j < i1; j++ {
		f := freqs[j]
		if f >= guardLo && f <= guardHi {
			// The closed guard band wins on exact boundary values.
			continue
		}
		sum += power[j]
		count++
	}

	if count == 0 {
		return Result{}, fmt.Errorf("snr: target %g Hz, band ±%g Hz, guard ±%g Hz: %w",
			targetHz, cfg.NeighborBandHz, cfg.GuardBandHz, ErrNoValidNeighbors)
	}

	noise := sum / float64(count)
	ratio := power[bin] / noise

	return Result{
		TargetHz:     targetHz,
		BinIndex:     bin,
		BinHz:        freqs[bin],
		TargetPower:  power[bin],
		NoisePower:   noise,
		NeighborBins: count,
		SNR:          ratio,
		SNR_dB:       powerRatioToDB(ratio),
	}, nil
}

// powerRatioToDB converts a linear power ratio to decibels: 10 * log10(v).
// Returns -Inf for zero or negative values.
func powerRatioToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(v)
}
