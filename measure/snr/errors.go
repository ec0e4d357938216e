package snr

import "errors"

var (
	// ErrTargetNotResolvable reports that no grid frequency lies within half
	// a bin spacing of the target, i.e. the target is off-grid or outside
	// the spectrum's frequency range.
	ErrTargetNotResolvable = errors.New("no frequency bin within half a bin spacing of the target")

	// ErrNoValidNeighbors reports that the neighbor band minus the guard
	// band contains no grid points, i.e. the frequency resolution is too
	// coarse or the target sits too close to the spectrum boundary.
	ErrNoValidNeighbors = errors.New("no neighbor bins outside the guard band")
)
