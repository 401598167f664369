package kmeansgo

import (
	"github.com/hupe1980/kmeansgo/distance"
)

// SumSquaredError returns the total within-cluster squared error, the
// objective Lloyd's algorithm locally minimizes: the sum over points of
// the squared distance to their assigned mean.
func SumSquaredError(points, means []Point, assignments []int) (float64, error) {
	if len(points) != len(assignments) {
		return 0, &ErrDimensionMismatch{Expected: len(points), Actual: len(assignments)}
	}

	var sum float64
	for i, p := range points {
		se, err := distance.SquaredError(p, means[assignments[i]])
		if err != nil {
			return 0, err
		}
		sum += se
	}

	return sum, nil
}

// AverageDistanceToMean returns the mean of the per-point distances to
// their assigned mean.
func AverageDistanceToMean(points, means []Point, assignments []int) (float64, error) {
	if len(points) != len(assignments) {
		return 0, &ErrDimensionMismatch{Expected: len(points), Actual: len(assignments)}
	}
	if len(points) == 0 {
		return 0, ErrEmptyInput
	}

	var sum float64
	for i, p := range points {
		d, err := distance.Distance(p, means[assignments[i]])
		if err != nil {
			return 0, err
		}
		sum += d
	}

	return sum / float64(len(points)), nil
}

// AverageMeanSeparation returns the average pairwise distance across
// all k·(k-1)/2 unordered pairs of means. Separation is undefined for
// fewer than two means; ErrTooFewMeans is returned in that case.
func AverageMeanSeparation(means []Point) (float64, error) {
	if len(means) < 2 {
		return 0, ErrTooFewMeans
	}

	var sum float64
	pairs := 0
	for i := 0; i < len(means); i++ {
		for j := i + 1; j < len(means); j++ {
			d, err := distance.Distance(means[i], means[j])
			if err != nil {
				return 0, err
			}
			sum += d
			pairs++
		}
	}

	return sum / float64(pairs), nil
}

// PointsPerMean returns how many points each mean owns, keyed by mean
// index as it appears in assignments. The mapping is sparse: a mean
// with zero assigned points has no entry.
func PointsPerMean(assignments []int) map[int]int {
	counts := make(map[int]int)
	for _, a := range assignments {
		counts[a]++
	}
	return counts
}
