// Package signal generates deterministic test signals for frequency-domain
// analysis: single tones, harmonic stacks, and seeded broadband noise.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultSampleRate is a common EEG acquisition rate in Hz.
const DefaultSampleRate = 256.0

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the generation sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(g *Generator) {
		if sampleRate > 0 {
			g.sampleRate = sampleRate
		}
	}
}

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		sampleRate: DefaultSampleRate,
		seed:       1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// SampleRate returns the generator sample rate in Hz.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if freqHz < 0 || freqHz > g.sampleRate/2 {
		return nil, fmt.Errorf("sine frequency must be between 0 and sampleRate/2: %f", freqHz)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Harmonics generates a stack of sinusoids at integer multiples of
// fundamentalHz. amplitudes[k] is the amplitude of harmonic k+1, so
// amplitudes[0] drives the fundamental itself.
//
// Every requested harmonic must lie at or below Nyquist.
func (g *Generator) Harmonics(fundamentalHz float64, amplitudes []float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("harmonics samples must be > 0: %d", samples)
	}
	if fundamentalHz <= 0 {
		return nil, fmt.Errorf("harmonics fundamental must be > 0: %f", fundamentalHz)
	}
	if len(amplitudes) == 0 {
		return nil, fmt.Errorf("harmonics amplitudes must not be empty")
	}

	top := fundamentalHz * float64(len(amplitudes))
	if top > g.sampleRate/2 {
		return nil, fmt.Errorf("harmonic %d at %f Hz exceeds Nyquist %f Hz", len(amplitudes), top, g.sampleRate/2)
	}

	out := make([]float64, samples)
	for k, amp := range amplitudes {
		if amp == 0 {
			continue
		}
		step := 2 * math.Pi * fundamentalHz * float64(k+1) / g.sampleRate
		for i := range out {
			out[i] += amp * math.Sin(step*float64(i))
		}
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// SSVEP generates a steady-state response-like signal: a harmonic stack
// entrained to stimHz plus seeded broadband noise.
func (g *Generator) SSVEP(stimHz float64, harmonicAmps []float64, noiseAmp float64, samples int) ([]float64, error) {
	out, err := g.Harmonics(stimHz, harmonicAmps, samples)
	if err != nil {
		return nil, err
	}

	if noiseAmp > 0 {
		noise, err := g.WhiteNoise(noiseAmp, samples)
		if err != nil {
			return nil, err
		}
		for i := range out {
			out[i] += noise[i]
		}
	}
	return out, nil
}
