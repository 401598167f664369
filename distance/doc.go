// Package distance provides the distance and error primitives used by
// k-means clustering.
//
// # Supported Operations
//
//   - SquaredError: sum of per-dimension squared differences
//   - Distance: Euclidean (L2) distance
//
// Both operations validate that their operands share a dimension and
// return *ErrDimensionMismatch otherwise.
//
// # Usage
//
//	d, err := distance.Distance(a, b)
//	se, err := distance.SquaredError(a, b)
package distance
