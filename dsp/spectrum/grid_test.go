package spectrum

import (
	"math"
	"testing"
)

func TestBinSpacingUniformGrid(t *testing.T) {
	freqs := []float64{8, 8.5, 9, 9.5, 10}
	if df := BinSpacing(freqs); math.Abs(df-0.5) > 1e-12 {
		t.Fatalf("bin spacing mismatch: got %v want 0.5", df)
	}
}

func TestBinSpacingDegenerateGrids(t *testing.T) {
	if df := BinSpacing(nil); df != 0 {
		t.Fatalf("empty grid spacing: got %v want 0", df)
	}
	if df := BinSpacing([]float64{10}); df != 0 {
		t.Fatalf("single-bin grid spacing: got %v want 0", df)
	}
}

func TestResolveBinFirstMatchWins(t *testing.T) {
	freqs := []float64{9, 9.5, 10, 10.5, 11}

	// 9.75 is equally close to 9.5 and 10; the scan must settle on the
	// lower-frequency bin.
	i, ok := ResolveBin(freqs, 9.75, 0.25)
	if !ok {
		t.Fatalf("expected bin to resolve")
	}
	if i != 1 {
		t.Fatalf("tie resolved to index %d, want 1", i)
	}
}

func TestResolveBinOutOfRange(t *testing.T) {
	freqs := []float64{9, 9.5, 10}
	if _, ok := ResolveBin(freqs, 12, 0.25); ok {
		t.Fatalf("expected resolution to fail for off-grid target")
	}
	if _, ok := ResolveBin(nil, 10, 0.25); ok {
		t.Fatalf("expected resolution to fail on empty grid")
	}
}

func TestBandIndicesClosedBounds(t *testing.T) {
	freqs := []float64{8, 9, 10, 11, 12}

	i0, i1 := BandIndices(freqs, 9, 11)
	if i0 != 1 || i1 != 4 {
		t.Fatalf("band indices mismatch: got [%d,%d) want [1,4)", i0, i1)
	}

	// Bounds between bins.
	i0, i1 = BandIndices(freqs, 8.5, 11.5)
	if i0 != 1 || i1 != 4 {
		t.Fatalf("band indices mismatch: got [%d,%d) want [1,4)", i0, i1)
	}

	// Band entirely outside the grid.
	i0, i1 = BandIndices(freqs, 20, 22)
	if i0 < i1 {
		t.Fatalf("expected empty range, got [%d,%d)", i0, i1)
	}
}

func TestValidateGrid(t *testing.T) {
	if err := ValidateGrid([]float64{8, 9, 10}); err != nil {
		t.Fatalf("valid grid rejected: %v", err)
	}
	if err := ValidateGrid(nil); err == nil {
		t.Fatalf("expected error for empty grid")
	}
	if err := ValidateGrid([]float64{8, 8, 9}); err == nil {
		t.Fatalf("expected error for repeated frequency")
	}
	if err := ValidateGrid([]float64{10, 9}); err == nil {
		t.Fatalf("expected error for decreasing grid")
	}
}
