package snr

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Condition pairs one target frequency with the spectrum computed for that
// experimental condition. Conditions carry independent spectra because each
// condition may use a differently tuned spatial filter upstream.
type Condition struct {
	TargetHz float64
	Power    []float64
	Freqs    []float64
}

// Outcome is the per-condition result of a batch estimation: either a valid
// Result or the error that prevented one.
type Outcome struct {
	TargetHz float64
	Result   Result
	Err      error
}

// EstimateAll evaluates every condition independently and returns one
// outcome per condition, in input order.
//
// A failed condition does not affect the others; callers inspect each
// Outcome.Err to decide whether to skip or abort. Use [EstimateBatch] for
// the fail-fast policy.
func EstimateAll(conds []Condition, opts ...Option) []Outcome {
	out := make([]Outcome, len(conds))
	for i, c := range conds {
		res, err := Estimate(c.Power, c.Freqs, c.TargetHz, opts...)
		out[i] = Outcome{TargetHz: c.TargetHz, Result: res, Err: err}
	}
	return out
}

// EstimateBatch evaluates all conditions in parallel and fails fast: the
// first error aborts the batch and is returned, wrapped with the index of
// the offending condition.
//
// Each estimation reads only its own condition, so conditions are processed
// concurrently on up to GOMAXPROCS workers. Results are returned in input
// order.
func EstimateBatch(ctx context.Context, conds []Condition, opts ...Option) ([]Result, error) {
	results := make([]Result, len(conds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, c := range conds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := Estimate(c.Power, c.Freqs, c.TargetHz, opts...)
			if err != nil {
				return fmt.Errorf("condition %d: %w", i, err)
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
