package distance

import (
	"fmt"
	"math"
)

// ErrDimensionMismatch is a named error type for dimension mismatch
type ErrDimensionMismatch struct {
	Expected int // Expected dimensions
	Actual   int // Actual dimensions
}

// Error returns the error message for dimension mismatch
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Func is a function type for distance calculation.
type Func func(a, b []float64) (float64, error)

// SquaredError calculates the sum over dimensions of the squared
// difference between two points. Pure, no side effects.
func SquaredError(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}

	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return sum, nil
}

// Distance calculates the Euclidean (L2) distance between two points.
func Distance(a, b []float64) (float64, error) {
	se, err := SquaredError(a, b)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(se), nil
}
