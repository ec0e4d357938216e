// Package spectrum provides power-spectrum extraction and frequency-grid
// utilities.
//
// The package intentionally does not implement spectral estimation itself.
// It operates on complex spectrum bins produced by external FFT backends and
// on precomputed power spectra, and provides helpers for power extraction,
// bin-grid construction, and index selection on uniformly spaced grids.
package spectrum
