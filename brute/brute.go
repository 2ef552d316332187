// Package brute provides the reference point table: an ordered map from points
// to values with linear-scan range and nearest neighbour queries.
//
// It answers the same queries as package kdtree with the simplest possible
// algorithms and serves as the correctness baseline in differential tests, in
// the same way an exact flat index backs an approximate one. Points are kept
// in a B-tree ordered by y-coordinate, then x-coordinate.
//
// A Table is not safe for concurrent mutation.
package brute

import (
	"iter"

	"github.com/google/btree"
	"github.com/hupe1980/kdpoint/geom"
	"github.com/hupe1980/kdpoint/internal/validate"
)

// ErrInvalidArgument is returned for a non-finite point, a malformed
// rectangle or a nil value.
var ErrInvalidArgument = geom.ErrInvalidArgument

// degree is the B-tree branching factor.
const degree = 32

type entry[V any] struct {
	point geom.Point
	value V
}

func lessEntry[V any](a, b entry[V]) bool {
	return a.point.Less(b.point)
}

// Table is an ordered point-to-value map.
type Table[V any] struct {
	tree *btree.BTreeG[entry[V]]
}

// New returns an empty table.
func New[V any]() *Table[V] {
	return &Table[V]{
		tree: btree.NewG[entry[V]](degree, lessEntry[V]),
	}
}

// Len returns the number of distinct points in the table.
func (t *Table[V]) Len() int { return t.tree.Len() }

// IsEmpty reports whether the table holds no points.
func (t *Table[V]) IsEmpty() bool { return t.tree.Len() == 0 }

// Insert associates v with p, replacing any previous value.
func (t *Table[V]) Insert(p geom.Point, v V) error {
	if err := geom.ValidatePoint("point", p); err != nil {
		return err
	}
	if validate.IsNil(v) {
		return &geom.InvalidArgumentError{Arg: "value", Reason: "must not be nil"}
	}
	t.tree.ReplaceOrInsert(entry[V]{point: p, value: v})
	return nil
}

// Get returns the value stored at p. The boolean is false if p is absent.
func (t *Table[V]) Get(p geom.Point) (V, bool, error) {
	var zero V
	if err := geom.ValidatePoint("point", p); err != nil {
		return zero, false, err
	}
	e, ok := t.tree.Get(entry[V]{point: p})
	if !ok {
		return zero, false, nil
	}
	return e.value, true, nil
}

// Contains reports whether p is stored in the table.
func (t *Table[V]) Contains(p geom.Point) (bool, error) {
	if err := geom.ValidatePoint("point", p); err != nil {
		return false, err
	}
	return t.tree.Has(entry[V]{point: p}), nil
}

// Points returns every stored point in ascending (y, x) order.
func (t *Table[V]) Points() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		t.tree.Ascend(func(e entry[V]) bool {
			return yield(e.point)
		})
	}
}

// All returns every stored point with its value in ascending (y, x) order.
func (t *Table[V]) All() iter.Seq2[geom.Point, V] {
	return func(yield func(geom.Point, V) bool) {
		t.tree.Ascend(func(e entry[V]) bool {
			return yield(e.point, e.value)
		})
	}
}

// Range returns every stored point inside r, boundary included.
func (t *Table[V]) Range(r geom.Rect) ([]geom.Point, error) {
	if err := geom.ValidateRect("rect", r); err != nil {
		return nil, err
	}
	var out []geom.Point
	for p := range t.Points() {
		if r.Contains(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Nearest returns the first point in table order at minimum distance from q.
// The boolean is false only when the table is empty.
func (t *Table[V]) Nearest(q geom.Point) (geom.Point, bool, error) {
	if err := geom.ValidatePoint("query", q); err != nil {
		return geom.Point{}, false, err
	}
	var (
		best     geom.Point
		bestDist float64
		found    bool
	)
	// Seed from the first point: squared distances may overflow to +Inf.
	for p := range t.Points() {
		if d := p.DistanceSquaredTo(q); !found || d < bestDist {
			best, bestDist, found = p, d, true
		}
	}
	return best, found, nil
}
