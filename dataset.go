package kmeansgo

// Point is a fixed-dimension numeric coordinate vector. All points and
// means participating in one run share the same dimension.
type Point []float64

// Range is the [Min, Max] extent of one dimension across a dataset.
type Range struct {
	Min float64
	Max float64
}

// FindRanges returns the per-dimension [min, max] pair across all
// points. The first point's length is taken as the dimension.
func FindRanges(points []Point) ([]Range, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}

	ranges := make([]Range, len(points[0]))
	for d, v := range points[0] {
		ranges[d] = Range{Min: v, Max: v}
	}

	for _, p := range points[1:] {
		if len(p) != len(ranges) {
			return nil, &ErrDimensionMismatch{Expected: len(ranges), Actual: len(p)}
		}
		for d, v := range p {
			if v < ranges[d].Min {
				ranges[d].Min = v
			}
			if v > ranges[d].Max {
				ranges[d].Max = v
			}
		}
	}

	return ranges, nil
}
