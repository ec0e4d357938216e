package spectrum

import (
	"fmt"
	"math"
	"sort"
)

// BinSpacing returns the mean spacing between consecutive bin centers.
//
// The grid is assumed uniform; the mean of consecutive differences is taken
// as representative without verifying uniformity. A grid with fewer than two
// bins has no measurable spacing and yields 0.
func BinSpacing(freqs []float64) float64 {
	if len(freqs) < 2 {
		return 0
	}

	sum := 0.0
	for i := 1; i < len(freqs); i++ {
		sum += freqs[i] - freqs[i-1]
	}
	return sum / float64(len(freqs)-1)
}

// ResolveBin returns the first index whose bin center lies within tolHz of
// targetHz, scanning from the lowest frequency.
//
// Ties between equally close bins therefore resolve to the lower-frequency
// bin. The second return value is false when no bin qualifies.
func ResolveBin(freqs []float64, targetHz, tolHz float64) (int, bool) {
	for i, f := range freqs {
		if math.Abs(f-targetHz) <= tolHz {
			return i, true
		}
	}
	return 0, false
}

// BandIndices returns the half-open index range [i0, i1) of bins whose
// centers lie within the closed frequency interval [loHz, hiHz].
//
// freqs must be sorted in increasing order. The range is empty (i0 >= i1)
// when no bin falls inside the interval.
func BandIndices(freqs []float64, loHz, hiHz float64) (i0, i1 int) {
	i0 = sort.Search(len(freqs), func(k int) bool { return freqs[k] >= loHz })
	i1 = sort.Search(len(freqs), func(k int) bool { return freqs[k] > hiHz })
	return i0, i1
}

// ValidateGrid checks that freqs forms a usable frequency grid: non-empty
// and strictly increasing.
func ValidateGrid(freqs []float64) error {
	if len(freqs) == 0 {
		return fmt.Errorf("frequency grid must not be empty")
	}
	for i := 1; i < len(freqs); i++ {
		if !(freqs[i] > freqs[i-1]) {
			return fmt.Errorf("frequency grid must be strictly increasing at index %d: %v >= %v", i, freqs[i-1], freqs[i])
		}
	}
	return nil
}
