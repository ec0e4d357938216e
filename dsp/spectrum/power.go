package spectrum

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Power returns |X[k]|^2 for each complex spectrum bin.
//
// This function uses SIMD-optimized implementations when available (AVX2,
// SSE2, NEON). Scratch buffers are pooled internally, so in steady state this
// allocates only the output slice.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Like [Power], this uses SIMD-optimized implementations when available and
// pools scratch memory internally.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// OneSided converts a full complex spectrum of a real signal into a one-sided
// power spectrum covering bins 0 (DC) through Nyquist.
//
// Power of the mirrored bins is folded in by doubling every bin except DC
// and, for even-length inputs, the Nyquist bin. The result has length
// len(bins)/2 + 1.
func OneSided(bins []complex128) []float64 {
	n := len(bins)
	if n == 0 {
		return nil
	}

	half := n/2 + 1
	out := make([]float64, half)
	re, im, buf := getScratch(half)

	for i := range half {
		re[i] = real(bins[i])
		im[i] = imag(bins[i])
	}

	vecmath.Power(out, re, im)
	putScratch(buf)

	last := half - 1
	for i := 1; i < half; i++ {
		if i == last && n%2 == 0 {
			continue // Nyquist bin has no mirror image
		}
		out[i] *= 2
	}
	return out
}

// BinFrequencies returns the bin-center frequencies in Hz for a one-sided
// spectrum produced by an FFT of the given size.
//
// The result has length fftSize/2 + 1, with bin i centered at
// i * sampleRate / fftSize.
func BinFrequencies(fftSize int, sampleRate float64) ([]float64, error) {
	if fftSize <= 0 {
		return nil, fmt.Errorf("bin frequencies fftSize must be > 0: %d", fftSize)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("bin frequencies sampleRate must be > 0: %f", sampleRate)
	}

	df := sampleRate / float64(fftSize)
	out := make([]float64, fftSize/2+1)
	for i := range out {
		out[i] = float64(i) * df
	}
	return out, nil
}
