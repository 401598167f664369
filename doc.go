// Package kmeansgo implements Lloyd's k-means clustering for Go.
//
// Kmeansgo partitions N fixed-dimension points into k groups by
// iteratively assigning each point to its nearest mean and moving each
// mean to the centroid of its assigned points, until no assignment
// changes between rounds.
//
// # Quick Start
//
//	ctx := context.Background()
//	result, _ := kmeansgo.Run(ctx, points, 3)
//	for i, m := range result.Means {
//	    fmt.Println(i, m)
//	}
//
// Seeded, reproducible runs:
//
//	rng := rand.New(rand.NewSource(42))
//	result, _ := kmeansgo.Run(ctx, points, 3, kmeansgo.WithRand(rng))
//
// # Multiple Restarts
//
// Lloyd's algorithm only finds a local minimum of the sum-squared error.
// RunBest executes independent restarts in parallel and keeps the run
// with the lowest error:
//
//	result, _ := kmeansgo.RunBest(ctx, points, 3, 8)
//
// # Observing Progress
//
//	kmeansgo.Run(ctx, points, 3, kmeansgo.WithObserver(func(changed, iteration int) {
//	    fmt.Printf("iteration %d: %d points moved\n", iteration, changed)
//	}))
//
// # Key Features
//
//   - Exact Lloyd iteration with first-index tie-breaking
//   - Empty clusters keep their previous mean (no NaN collapse)
//   - Context cancellation checked every iteration
//   - Configurable max-iteration bound with a NotConverged status
//   - Cluster quality diagnostics (SSE, mean separation, per-mean counts)
package kmeansgo
