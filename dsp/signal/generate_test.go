package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-ssvep/internal/testutil"
)

func TestSineBasicProperties(t *testing.T) {
	g := NewGenerator(WithSampleRate(256))

	out, err := g.Sine(12, 0.5, 512)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 512 {
		t.Fatalf("length mismatch: got %d want 512", len(out))
	}
	testutil.RequireFinite(t, out)

	for i, v := range out {
		if math.Abs(v) > 0.5+1e-12 {
			t.Fatalf("sample %d exceeds amplitude: %v", i, v)
		}
	}
	if out[0] != 0 {
		t.Fatalf("sine must start at zero phase, got %v", out[0])
	}
}

func TestSineInvalidArgs(t *testing.T) {
	g := NewGenerator(WithSampleRate(256))

	if _, err := g.Sine(12, 1, 0); err == nil {
		t.Fatalf("expected error for zero samples")
	}
	if _, err := g.Sine(200, 1, 16); err == nil {
		t.Fatalf("expected error for frequency above Nyquist")
	}
	if _, err := g.Sine(-1, 1, 16); err == nil {
		t.Fatalf("expected error for negative frequency")
	}
}

func TestHarmonicsSumsComponents(t *testing.T) {
	g := NewGenerator(WithSampleRate(256))

	fund, err := g.Sine(10, 1.0, 256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := g.Sine(20, 0.25, 256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := g.Harmonics(10, []float64{1.0, 0.25}, 256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := make([]float64, len(fund))
	for i := range want {
		want[i] = fund[i] + second[i]
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestHarmonicsAboveNyquist(t *testing.T) {
	g := NewGenerator(WithSampleRate(256))

	// Third harmonic of 50 Hz lands at 150 Hz, above the 128 Hz Nyquist.
	if _, err := g.Harmonics(50, []float64{1, 0.5, 0.25}, 256); err == nil {
		t.Fatalf("expected error for harmonic above Nyquist")
	}
}

func TestWhiteNoiseDeterministicPerSeed(t *testing.T) {
	a, err := NewGenerator(WithSeed(42)).WhiteNoise(1, 128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewGenerator(WithSeed(42)).WhiteNoise(1, 128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, a, b, 0)

	c, err := NewGenerator(WithSeed(7)).WhiteNoise(1, 128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("different seeds produced identical noise")
	}
}

func TestSSVEPCombinesStackAndNoise(t *testing.T) {
	g := NewGenerator(WithSampleRate(256), WithSeed(3))

	out, err := g.SSVEP(12, []float64{1, 0.3}, 0.1, 1024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1024 {
		t.Fatalf("length mismatch: got %d want 1024", len(out))
	}
	testutil.RequireFinite(t, out)

	clean, err := g.SSVEP(12, []float64{1, 0.3}, 0, 1024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	diffSeen := false
	for i := range out {
		if out[i] != clean[i] {
			diffSeen = true
			break
		}
	}
	if !diffSeen {
		t.Fatalf("noise amplitude had no effect on output")
	}
}
