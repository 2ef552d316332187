package kdpoint

import (
	"context"
	"math"
	"testing"

	"github.com/hupe1980/kdpoint/geom"
	"github.com/hupe1980/kdpoint/resource"
	"github.com/hupe1980/kdpoint/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_BatchInsert(t *testing.T) {
	ctx := context.Background()

	t.Run("CountsCreated", func(t *testing.T) {
		idx := newScenarioIndex(t, BackendKDTree)

		created, err := idx.BatchInsert(ctx,
			[]geom.Point{geom.Pt(0, 0), geom.Pt(2, 2), geom.Pt(3, 3), geom.Pt(2, 2)},
			[]string{"A2", "D", "E", "D2"},
		)
		require.NoError(t, err)
		assert.Equal(t, 2, created)
		assert.Equal(t, 5, idx.Len())

		v, _, err := idx.Get(ctx, geom.Pt(2, 2))
		require.NoError(t, err)
		assert.Equal(t, "D2", v)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		idx := newScenarioIndex(t, BackendKDTree)
		_, err := idx.BatchInsert(ctx, []geom.Point{geom.Pt(5, 5)}, nil)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("AllOrNothing", func(t *testing.T) {
		idx := newScenarioIndex(t, BackendKDTree)
		_, err := idx.BatchInsert(ctx,
			[]geom.Point{geom.Pt(5, 5), geom.Pt(math.NaN(), 1)},
			[]string{"E", "F"},
		)
		require.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, 3, idx.Len())

		var iae *geom.InvalidArgumentError
		require.ErrorAs(t, err, &iae)
		assert.Equal(t, "points[1]", iae.Arg)
	})

	t.Run("NilValue", func(t *testing.T) {
		idx, err := New[[]int]()
		require.NoError(t, err)
		_, err = idx.BatchInsert(ctx, []geom.Point{geom.Pt(1, 1)}, [][]int{nil})
		require.ErrorIs(t, err, ErrInvalidArgument)
		assert.True(t, idx.IsEmpty())
	})
}

func TestIndex_BatchRange(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(3)
	bounds := geom.Rect{XMin: -10, YMin: -10, XMax: 10, YMax: 10}
	points := testutil.Distinct(rng.UniformPoints(400, bounds))

	idx, err := New[int](WithResourceConfig(resource.Config{MaxWorkers: 3}))
	require.NoError(t, err)
	values := make([]int, len(points))
	for i := range values {
		values[i] = i
	}
	_, err = idx.BatchInsert(ctx, points, values)
	require.NoError(t, err)

	rects := make([]geom.Rect, 40)
	for i := range rects {
		rects[i] = rng.Rect(bounds)
	}

	results, err := idx.BatchRange(ctx, rects)
	require.NoError(t, err)
	require.Len(t, results, len(rects))
	for i, r := range rects {
		assert.ElementsMatch(t, testutil.ExactRange(points, r), results[i], "rect %d", i)
	}
}

func TestIndex_BatchRange_Invalid(t *testing.T) {
	idx := newScenarioIndex(t, BackendKDTree)
	_, err := idx.BatchRange(context.Background(), []geom.Rect{geom.Plane(), {XMin: 2, XMax: 1}})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestIndex_BatchNearest(t *testing.T) {
	ctx := context.Background()

	t.Run("InputOrder", func(t *testing.T) {
		idx := newScenarioIndex(t, BackendBruteForce)
		got, err := idx.BatchNearest(ctx, []geom.Point{geom.Pt(-100, -100), geom.Pt(0.1, 0.1), geom.Pt(5, 5)})
		require.NoError(t, err)
		require.Len(t, got, 3)

		assert.Equal(t, geom.Pt(-1, -1), got[0].Point)
		assert.Equal(t, geom.Pt(0, 0), got[1].Point)
		assert.Equal(t, geom.Pt(1, 1), got[2].Point)
		assert.InDelta(t, math.Sqrt(0.02), got[1].Distance, 1e-12)
		for _, n := range got {
			assert.True(t, n.Found)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		idx, err := New[string]()
		require.NoError(t, err)
		got, err := idx.BatchNearest(ctx, []geom.Point{geom.Pt(1, 1)})
		require.NoError(t, err)
		assert.Equal(t, []Neighbor{{}}, got)
	})

	t.Run("Invalid", func(t *testing.T) {
		idx := newScenarioIndex(t, BackendKDTree)
		_, err := idx.BatchNearest(ctx, []geom.Point{geom.Pt(math.NaN(), 0)})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Canceled", func(t *testing.T) {
		idx := newScenarioIndex(t, BackendKDTree)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := idx.BatchNearest(cctx, []geom.Point{geom.Pt(1, 1), geom.Pt(2, 2)})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("NoQueries", func(t *testing.T) {
		idx := newScenarioIndex(t, BackendKDTree)
		got, err := idx.BatchNearest(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
