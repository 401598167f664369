package kmeansgo

import (
	"context"
	"fmt"
	"slices"
)

// Result holds the outcome of one clustering run. It is owned by the
// caller; the run keeps no reference to it.
type Result struct {
	// Means are the final mean positions. The index is the cluster identity.
	Means []Point

	// Assignments maps each point index to the index of its owning mean.
	Assignments []int

	// Steps is the number of completed update+reassign iterations.
	Steps int

	// Converged reports whether the final iteration changed no
	// assignment. False means the max-iteration bound was hit first.
	Converged bool
}

// Run partitions points into k clusters using Lloyd's algorithm.
//
// Initial means are independent copies of k point positions sampled
// uniformly at random with replacement. Each iteration moves the means
// to the centroids of their clusters and reassigns every point to its
// nearest mean; the run always performs at least one full iteration and
// stops once no assignment changes.
//
// The context is checked once per iteration, so a cancelled run returns
// promptly with the context's error. When the max-iteration bound (see
// WithMaxIterations) is exceeded the partial result is returned with
// Converged set to false; that is a status, not an error.
func Run(ctx context.Context, points []Point, k int, optFns ...Option) (*Result, error) {
	o := applyOptions(optFns)
	return run(ctx, points, k, o)
}

func run(ctx context.Context, points []Point, k int, o options) (*Result, error) {
	if k <= 0 || k > len(points) {
		return nil, fmt.Errorf("%w: k=%d with %d points", ErrInvalidK, k, len(points))
	}

	logger := o.logger.WithK(k).WithDimension(len(points[0]))

	means := make([]Point, k)
	for i := range means {
		means[i] = slices.Clone(points[o.rand.Intn(len(points))])
	}

	assignments, err := AssignPointsToMeans(points, means)
	if err != nil {
		return nil, err
	}

	steps := 0
	converged := false

	for o.maxIterations <= 0 || steps < o.maxIterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, err := MoveMeansToCenters(points, assignments, means); err != nil {
			return nil, err
		}

		prev := assignments
		assignments, err = AssignPointsToMeans(points, means)
		if err != nil {
			return nil, err
		}

		changed, err := CountChangedAssignments(prev, assignments)
		if err != nil {
			return nil, err
		}

		if o.observer != nil {
			o.observer(changed, steps)
		}
		logger.LogIteration(ctx, steps, changed)

		steps++

		if changed == 0 {
			converged = true
			break
		}
	}

	logger.LogRun(ctx, steps, converged)

	return &Result{
		Means:       means,
		Assignments: assignments,
		Steps:       steps,
		Converged:   converged,
	}, nil
}
