package kmeansgo

import (
	"errors"

	"github.com/hupe1980/kmeansgo/distance"
)

var (
	// ErrInvalidK is returned when k is not in [1, len(points)].
	ErrInvalidK = errors.New("k must be in [1, number of points]")

	// ErrEmptyInput is returned when an operation that needs at least
	// one element receives none.
	ErrEmptyInput = errors.New("empty input")

	// ErrEmptyMeanSet is returned when a point is matched against zero means.
	ErrEmptyMeanSet = errors.New("empty mean set")

	// ErrTooFewMeans is returned by AverageMeanSeparation when fewer
	// than two means exist, since no pair can be formed.
	ErrTooFewMeans = errors.New("at least two means are required")
)

// ErrDimensionMismatch indicates that two sequences expected to be
// parallel (point coordinates, points/assignments, old/new assignments)
// differ in length. It is never recovered internally; callers always
// see it immediately.
type ErrDimensionMismatch = distance.ErrDimensionMismatch
