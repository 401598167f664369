package kmeansgo_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmeansgo"
	"github.com/hupe1980/kmeansgo/testutil"
)

func TestRun_Converges(t *testing.T) {
	ctx := context.Background()
	points := []kmeansgo.Point{{0}, {0}, {10}, {10}}

	result, err := kmeansgo.Run(ctx, points, 2,
		kmeansgo.WithRand(rand.New(rand.NewSource(5))),
	)
	require.NoError(t, err)

	assert.True(t, result.Converged)
	assert.GreaterOrEqual(t, result.Steps, 1)
	assert.Len(t, result.Means, 2)
	require.Len(t, result.Assignments, len(points))

	// The two low points and the two high points end up together,
	// whatever labels they carry.
	assert.Equal(t, result.Assignments[0], result.Assignments[1])
	assert.Equal(t, result.Assignments[2], result.Assignments[3])
	assert.NotEqual(t, result.Assignments[0], result.Assignments[2])
}

func TestRun_InvalidK(t *testing.T) {
	ctx := context.Background()
	points := []kmeansgo.Point{{0}, {1}, {2}, {3}}

	_, err := kmeansgo.Run(ctx, points, 0)
	assert.ErrorIs(t, err, kmeansgo.ErrInvalidK)

	_, err = kmeansgo.Run(ctx, points, -1)
	assert.ErrorIs(t, err, kmeansgo.ErrInvalidK)

	_, err = kmeansgo.Run(ctx, points, 5)
	assert.ErrorIs(t, err, kmeansgo.ErrInvalidK)

	_, err = kmeansgo.Run(ctx, nil, 1)
	assert.ErrorIs(t, err, kmeansgo.ErrInvalidK)
}

func TestRun_KEqualsN(t *testing.T) {
	ctx := context.Background()
	points := []kmeansgo.Point{{0}, {10}}

	result, err := kmeansgo.Run(ctx, points, 2,
		kmeansgo.WithRand(rand.New(rand.NewSource(9))),
	)
	require.NoError(t, err)
	assert.Len(t, result.Means, 2)
	assert.True(t, result.Converged)
}

func TestRun_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	rng := testutil.NewRNG(11)
	points := rng.RangedPoints([]kmeansgo.Range{{Min: 0, Max: 1}, {Min: 0, Max: 1}}, 500)

	_, err := kmeansgo.Run(ctx, points, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Deterministic(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(23)
	points := rng.ClusteredPoints([]kmeansgo.Range{{Min: 0, Max: 100}, {Min: 0, Max: 100}}, 300, 5, 0.02)

	a, err := kmeansgo.Run(ctx, points, 5, kmeansgo.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	b, err := kmeansgo.Run(ctx, points, 5, kmeansgo.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)

	assert.Equal(t, a.Assignments, b.Assignments)
	assert.Equal(t, a.Means, b.Means)
	assert.Equal(t, a.Steps, b.Steps)
}

func TestRun_Observer(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(31)
	points := rng.ClusteredPoints([]kmeansgo.Range{{Min: 0, Max: 10}}, 100, 3, 0.05)

	var iterations []int
	var changes []int

	result, err := kmeansgo.Run(ctx, points, 3,
		kmeansgo.WithRand(rng.Rand()),
		kmeansgo.WithObserver(func(changed, iteration int) {
			changes = append(changes, changed)
			iterations = append(iterations, iteration)
		}),
	)
	require.NoError(t, err)

	require.Len(t, iterations, result.Steps)
	for i, it := range iterations {
		assert.Equal(t, i, it)
	}
	if result.Converged {
		assert.Zero(t, changes[len(changes)-1])
	}
}

func TestRun_MaxIterationsStatus(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(47)
	points := rng.RangedPoints([]kmeansgo.Range{{Min: 0, Max: 1}, {Min: 0, Max: 1}}, 200)

	lastChanged := -1
	result, err := kmeansgo.Run(ctx, points, 8,
		kmeansgo.WithRand(rng.Rand()),
		kmeansgo.WithMaxIterations(1),
		kmeansgo.WithObserver(func(changed, _ int) { lastChanged = changed }),
	)

	// Hitting the bound is a status, never an error.
	require.NoError(t, err)
	assert.Equal(t, 1, result.Steps)
	assert.Equal(t, lastChanged == 0, result.Converged)
	assert.Len(t, result.Assignments, len(points))
}

func TestRun_Unbounded(t *testing.T) {
	ctx := context.Background()
	points := []kmeansgo.Point{{0}, {1}, {9}, {10}}

	result, err := kmeansgo.Run(ctx, points, 2,
		kmeansgo.WithRand(rand.New(rand.NewSource(3))),
		kmeansgo.WithMaxIterations(0),
	)
	require.NoError(t, err)
	assert.True(t, result.Converged)
}

func TestRun_Logging(t *testing.T) {
	ctx := context.Background()
	points := []kmeansgo.Point{{0}, {0}, {10}, {10}}

	var buf bytes.Buffer
	logger := kmeansgo.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	_, err := kmeansgo.Run(ctx, points, 2,
		kmeansgo.WithRand(rand.New(rand.NewSource(5))),
		kmeansgo.WithLogger(logger),
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "iteration completed")
	assert.Contains(t, out, "clustering converged")
	assert.Contains(t, out, "k=2")
}

func TestRun_MonotonicDescent(t *testing.T) {
	// Lloyd's algorithm never increases the sum-squared error across an
	// update+reassign round.
	ranges := []kmeansgo.Range{{Min: 0, Max: 100}, {Min: 0, Max: 100}}

	for _, seed := range []int64{1, 2, 3, 4, 5} {
		rng := testutil.NewRNG(seed)
		points := rng.ClusteredPoints(ranges, 200, 4, 0.05)
		src := rng.Rand()

		means := make([]kmeansgo.Point, 3)
		for i := range means {
			means[i] = slices.Clone(points[src.Intn(len(points))])
		}

		assignments, err := kmeansgo.AssignPointsToMeans(points, means)
		require.NoError(t, err)

		prevSSE := math.Inf(1)
		for iter := 0; iter < 25; iter++ {
			_, err := kmeansgo.MoveMeansToCenters(points, assignments, means)
			require.NoError(t, err)

			assignments, err = kmeansgo.AssignPointsToMeans(points, means)
			require.NoError(t, err)

			sse, err := kmeansgo.SumSquaredError(points, means, assignments)
			require.NoError(t, err)

			assert.LessOrEqual(t, sse, prevSSE+1e-6, "seed %d", seed)
			prevSSE = sse
		}
	}
}
