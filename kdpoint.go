package kdpoint

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/hupe1980/kdpoint/brute"
	"github.com/hupe1980/kdpoint/geom"
	"github.com/hupe1980/kdpoint/kdtree"
)

// Backend selects the point table behind an Index.
type Backend int

const (
	// BackendKDTree uses a 2d-tree: logarithmic inserts and pruned queries
	// on well-spread data.
	BackendKDTree Backend = iota
	// BackendBruteForce uses an ordered map with linear-scan queries.
	BackendBruteForce
)

func (b Backend) String() string {
	switch b {
	case BackendKDTree:
		return "kdtree"
	case BackendBruteForce:
		return "brute"
	default:
		return fmt.Sprintf("Unknown(%d)", int(b))
	}
}

// PointTable is the contract shared by kdtree.Tree and brute.Table.
// Implementations are not safe for concurrent mutation.
type PointTable[V any] interface {
	Len() int
	IsEmpty() bool
	Insert(p geom.Point, v V) error
	Get(p geom.Point) (V, bool, error)
	Contains(p geom.Point) (bool, error)
	Points() iter.Seq[geom.Point]
	All() iter.Seq2[geom.Point, V]
	Range(r geom.Rect) ([]geom.Point, error)
	Nearest(q geom.Point) (geom.Point, bool, error)
}

var (
	_ PointTable[int] = (*kdtree.Tree[int])(nil)
	_ PointTable[int] = (*brute.Table[int])(nil)
)

func newTable[V any](b Backend) (PointTable[V], error) {
	switch b {
	case BackendKDTree:
		return kdtree.New[V](), nil
	case BackendBruteForce:
		return brute.New[V](), nil
	default:
		return nil, &geom.InvalidArgumentError{Arg: "backend", Reason: fmt.Sprintf("unknown backend %s", b)}
	}
}

// Index is a concurrency-safe point index mapping points to values of type V.
type Index[V any] struct {
	mu     sync.RWMutex
	table  PointTable[V]
	closed bool

	saveMu sync.Mutex

	opts    options
	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty Index.
func New[V any](optFns ...Option) (*Index[V], error) {
	opts := applyOptions(optFns)

	table, err := newTable[V](opts.backend)
	if err != nil {
		return nil, err
	}

	return &Index[V]{
		table:   table,
		opts:    opts,
		logger:  opts.logger.WithBackend(opts.backend),
		metrics: opts.metricsCollector,
	}, nil
}

// Backend returns the configured backend.
func (ix *Index[V]) Backend() Backend { return ix.opts.backend }

// Len returns the number of distinct points in the index.
func (ix *Index[V]) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.table.Len()
}

// IsEmpty reports whether the index holds no points.
func (ix *Index[V]) IsEmpty() bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.table.IsEmpty()
}

// Insert associates v with p, replacing the value of an existing point.
func (ix *Index[V]) Insert(ctx context.Context, p geom.Point, v V) (err error) {
	start := time.Now()
	created := false
	defer func() {
		ix.metrics.RecordInsert(time.Since(start), err)
		ix.logger.LogInsert(ctx, p, created, err)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.closed {
		return ErrClosed
	}

	before := ix.table.Len()
	if err := ix.table.Insert(p, v); err != nil {
		return err
	}
	created = ix.table.Len() > before
	return nil
}

// Get returns the value stored at p. The boolean is false if p is absent.
func (ix *Index[V]) Get(ctx context.Context, p geom.Point) (v V, found bool, err error) {
	start := time.Now()
	defer func() { ix.metrics.RecordLookup(time.Since(start), err) }()

	if err := ctx.Err(); err != nil {
		return v, false, err
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if ix.closed {
		return v, false, ErrClosed
	}
	return ix.table.Get(p)
}

// Contains reports whether p is present.
func (ix *Index[V]) Contains(ctx context.Context, p geom.Point) (bool, error) {
	_, found, err := ix.Get(ctx, p)
	return found, err
}

// Points returns every stored point. The order is backend-specific:
// tree pre-order for BackendKDTree, ascending (y, then x) for BackendBruteForce.
func (ix *Index[V]) Points(ctx context.Context) ([]geom.Point, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if ix.closed {
		return nil, ErrClosed
	}
	return slices.AppendSeq(make([]geom.Point, 0, ix.table.Len()), ix.table.Points()), nil
}

// Range returns all points inside r, boundary included.
func (ix *Index[V]) Range(ctx context.Context, r geom.Rect) (points []geom.Point, err error) {
	start := time.Now()
	defer func() {
		ix.metrics.RecordRange(len(points), time.Since(start), err)
		ix.logger.LogRange(ctx, r, len(points), err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if ix.closed {
		return nil, ErrClosed
	}
	return ix.table.Range(r)
}

// Nearest returns the stored point closest to q. The boolean is false if
// the index is empty.
func (ix *Index[V]) Nearest(ctx context.Context, q geom.Point) (best geom.Point, found bool, err error) {
	start := time.Now()
	defer func() {
		ix.metrics.RecordNearest(time.Since(start), err)
		ix.logger.LogNearest(ctx, q, best, found, err)
	}()

	if err := ctx.Err(); err != nil {
		return geom.Point{}, false, err
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if ix.closed {
		return geom.Point{}, false, ErrClosed
	}
	return ix.table.Nearest(q)
}
