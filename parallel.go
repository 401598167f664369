package kmeansgo

import (
	"context"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// RunBest executes restarts independent clustering runs in parallel and
// returns the result with the lowest sum-squared error. Runs share no
// state, so restarts scale across cores.
//
// Each restart draws its own randomness source from the configured one,
// so a seeded WithRand makes the winning result reproducible. Fewer
// than one restart is treated as one.
func RunBest(ctx context.Context, points []Point, k int, restarts int, optFns ...Option) (*Result, error) {
	if restarts < 1 {
		restarts = 1
	}

	o := applyOptions(optFns)

	seeds := make([]int64, restarts)
	for i := range seeds {
		seeds[i] = o.rand.Int63()
	}

	results := make([]*Result, restarts)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < restarts; i++ {
		i := i
		g.Go(func() error {
			ro := o
			ro.rand = rand.New(rand.NewSource(seeds[i])) // nolint gosec

			res, err := run(gctx, points, k, ro)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var best *Result
	bestSSE := math.Inf(1)
	for _, res := range results {
		sse, err := SumSquaredError(points, res.Means, res.Assignments)
		if err != nil {
			return nil, err
		}
		if sse < bestSSE {
			bestSSE = sse
			best = res
		}
	}

	return best, nil
}
