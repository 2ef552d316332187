// Package testutil provides testing utilities for kdpoint.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random points and rectangles and for
// computing exact ground truth by linear scan.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000, geom.Rect{XMax: 1, YMax: 1})
//	grid := rng.GridPoints(1000, 16) // many coordinate ties and repeats
//
// # Ground Truth
//
//	want := testutil.ExactRange(pts, rect)
//	_, dist := testutil.ExactNearest(pts, query)
package testutil
