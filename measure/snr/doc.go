// Package snr estimates the signal-to-noise ratio of a narrowband response
// at a known target frequency in a power spectrum.
//
// The estimate is the ratio of power at the target bin to the mean power of
// the surrounding neighbor bins, where the neighborhood is the closed band
// of ±1 Hz around the target minus a closed ±0.5 Hz guard band. The guard
// band keeps spectral leakage from the response itself out of the noise
// estimate. Both widths are configurable through options; a bin landing
// exactly on a guard-band edge is excluded.
//
// This is the standard SNR statistic for steady-state evoked responses
// (SSVEP and similar), applied to one spectrum per experimental condition.
// The package performs no spectral estimation: callers supply a precomputed
// power spectrum and its frequency grid, index-aligned and strictly
// increasing in frequency.
package snr
