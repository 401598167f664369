package kmeansgo

import (
	"gonum.org/v1/gonum/floats"
)

// AveragePosition returns the coordinate-wise arithmetic mean of a
// non-empty set of same-dimension points.
func AveragePosition(points []Point) (Point, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}

	dim := len(points[0])
	sum := make(Point, dim)
	for _, p := range points {
		if len(p) != dim {
			return nil, &ErrDimensionMismatch{Expected: dim, Actual: len(p)}
		}
		floats.Add(sum, p)
	}
	floats.Scale(1/float64(len(points)), sum)

	return sum, nil
}

// MoveMeansToCenters replaces every mean with the centroid of its
// currently assigned points. A mean with no assigned points keeps its
// previous position, so no cluster collapses to NaN. The means slice is
// mutated in place and returned for convenience.
func MoveMeansToCenters(points []Point, assignments []int, means []Point) ([]Point, error) {
	if len(points) != len(assignments) {
		return nil, &ErrDimensionMismatch{Expected: len(points), Actual: len(assignments)}
	}

	members := make([]Point, 0, len(points))
	for i := range means {
		members = members[:0]
		for j, a := range assignments {
			if a == i {
				members = append(members, points[j])
			}
		}

		if len(members) == 0 {
			continue
		}

		center, err := AveragePosition(members)
		if err != nil {
			return nil, err
		}
		means[i] = center
	}

	return means, nil
}
