package kdpoint

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/kdpoint/geom"
	"github.com/hupe1980/kdpoint/internal/validate"
	"github.com/hupe1980/kdpoint/resource"
	"golang.org/x/sync/errgroup"
)

// Neighbor is the answer to one query of BatchNearest.
type Neighbor struct {
	Point    geom.Point
	Distance float64
	Found    bool
}

// BatchInsert inserts points[i] -> values[i] for every i under a single lock
// acquisition and returns the number of newly created keys.
//
// All arguments are validated first; an invalid one fails the whole batch
// and leaves the index untouched.
func (ix *Index[V]) BatchInsert(ctx context.Context, points []geom.Point, values []V) (created int, err error) {
	start := time.Now()
	defer func() {
		ix.metrics.RecordBatchInsert(len(points), created, time.Since(start), err)
		ix.logger.LogBatchInsert(ctx, len(points), created, err)
	}()

	if len(points) != len(values) {
		return 0, &geom.InvalidArgumentError{
			Arg:    "values",
			Reason: fmt.Sprintf("length %d does not match %d points", len(values), len(points)),
		}
	}
	for i, p := range points {
		if err := geom.ValidatePoint(fmt.Sprintf("points[%d]", i), p); err != nil {
			return 0, err
		}
		if validate.IsNil(values[i]) {
			return 0, &geom.InvalidArgumentError{Arg: fmt.Sprintf("values[%d]", i), Reason: "must not be nil"}
		}
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.closed {
		return 0, ErrClosed
	}

	before := ix.table.Len()
	for i, p := range points {
		if err := ix.table.Insert(p, values[i]); err != nil {
			// Unreachable after validation; report what was applied.
			return ix.table.Len() - before, err
		}
	}
	return ix.table.Len() - before, nil
}

// BatchRange runs one range query per rectangle concurrently and returns the
// results in input order.
func (ix *Index[V]) BatchRange(ctx context.Context, rects []geom.Rect) ([][]geom.Point, error) {
	for i, r := range rects {
		if err := geom.ValidateRect(fmt.Sprintf("rects[%d]", i), r); err != nil {
			return nil, err
		}
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if ix.closed {
		return nil, ErrClosed
	}

	return fanOut(ctx, ix.opts.controller, rects, func(r geom.Rect) ([]geom.Point, error) {
		start := time.Now()
		points, err := ix.table.Range(r)
		ix.metrics.RecordRange(len(points), time.Since(start), err)
		return points, err
	})
}

// BatchNearest runs one nearest-neighbour query per point concurrently and
// returns the results in input order.
func (ix *Index[V]) BatchNearest(ctx context.Context, queries []geom.Point) ([]Neighbor, error) {
	for i, q := range queries {
		if err := geom.ValidatePoint(fmt.Sprintf("queries[%d]", i), q); err != nil {
			return nil, err
		}
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if ix.closed {
		return nil, ErrClosed
	}

	return fanOut(ctx, ix.opts.controller, queries, func(q geom.Point) (Neighbor, error) {
		start := time.Now()
		best, found, err := ix.table.Nearest(q)
		ix.metrics.RecordNearest(time.Since(start), err)
		if err != nil || !found {
			return Neighbor{}, err
		}
		return Neighbor{Point: best, Distance: best.DistanceTo(q), Found: true}, nil
	})
}

// fanOut calls fn for every query on at most the controller's worker count
// of goroutines. The first error cancels the remaining queries.
func fanOut[Q, R any](ctx context.Context, rc *resource.Controller, queries []Q, fn func(Q) (R, error)) ([]R, error) {
	results := make([]R, len(queries))
	g, gctx := errgroup.WithContext(ctx)

	var acquireErr error
	for i, q := range queries {
		if err := rc.AcquireWorker(gctx); err != nil {
			acquireErr = err
			break
		}
		g.Go(func() error {
			defer rc.ReleaseWorker()
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := fn(q)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if acquireErr != nil {
		return nil, acquireErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
