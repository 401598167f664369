package kmeansgo

import (
	"github.com/hupe1980/kmeansgo/distance"
)

// ArgMin returns the index of the first minimal element under strict
// less-than comparison, so earlier indices win ties.
func ArgMin(values []float64) (int, error) {
	if len(values) == 0 {
		return -1, ErrEmptyInput
	}

	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] < values[best] {
			best = i
		}
	}

	return best, nil
}

// FindClosestMean returns the index of the mean nearest to point. When
// several means are equidistant, the first index wins.
func FindClosestMean(point Point, means []Point) (int, error) {
	if len(means) == 0 {
		return -1, ErrEmptyMeanSet
	}

	dists := make([]float64, len(means))
	for i, m := range means {
		d, err := distance.Distance(point, m)
		if err != nil {
			return -1, err
		}
		dists[i] = d
	}

	return ArgMin(dists)
}

// AssignPointsToMeans maps every point to the index of its nearest
// mean. The returned assignment vector preserves point order and has
// the same length as points.
func AssignPointsToMeans(points, means []Point) ([]int, error) {
	assignments := make([]int, len(points))
	for i, p := range points {
		idx, err := FindClosestMean(p, means)
		if err != nil {
			return nil, err
		}
		assignments[i] = idx
	}

	return assignments, nil
}

// CountChangedAssignments counts the positions where two assignment
// vectors hold different cluster indices. Only exact index equality is
// considered.
func CountChangedAssignments(prev, curr []int) (int, error) {
	if len(prev) != len(curr) {
		return 0, &ErrDimensionMismatch{Expected: len(prev), Actual: len(curr)}
	}

	changed := 0
	for i := range prev {
		if prev[i] != curr[i] {
			changed++
		}
	}

	return changed, nil
}
