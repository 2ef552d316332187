package kdtree

import (
	"iter"

	"github.com/hupe1980/kdpoint/geom"
	"github.com/hupe1980/kdpoint/internal/validate"
)

// ErrInvalidArgument is returned for a non-finite point, a malformed
// rectangle or a nil value.
var ErrInvalidArgument = geom.ErrInvalidArgument

// Tree is a 2d-tree mapping points to values of type V.
// The zero value is an empty tree ready for use.
type Tree[V any] struct {
	root *node[V]
	size int
}

// New returns an empty tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{}
}

// Len returns the number of distinct points in the tree.
func (t *Tree[V]) Len() int { return t.size }

// IsEmpty reports whether the tree holds no points.
func (t *Tree[V]) IsEmpty() bool { return t.size == 0 }

// Insert associates v with p. Inserting a point that is already present
// replaces its value and leaves Len unchanged.
func (t *Tree[V]) Insert(p geom.Point, v V) error {
	if err := geom.ValidatePoint("point", p); err != nil {
		return err
	}
	if validate.IsNil(v) {
		return &geom.InvalidArgumentError{Arg: "value", Reason: "must not be nil"}
	}
	t.root = t.insert(t.root, p, v, geom.Plane(), vertical)
	return nil
}

func (t *Tree[V]) insert(n *node[V], p geom.Point, v V, region geom.Rect, o orientation) *node[V] {
	if n == nil {
		t.size++
		return &node[V]{point: p, value: v, region: region}
	}
	if n.point == p {
		n.value = v
		return n
	}
	if o.goesBelow(p, n.point) {
		n.lb = t.insert(n.lb, p, v, o.below(region, n.point), o.next())
	} else {
		n.rt = t.insert(n.rt, p, v, o.above(region, n.point), o.next())
	}
	return n
}

// Get returns the value stored at p. The boolean is false if p is absent,
// which is not an error.
func (t *Tree[V]) Get(p geom.Point) (V, bool, error) {
	var zero V
	if err := geom.ValidatePoint("point", p); err != nil {
		return zero, false, err
	}
	if n := t.find(p); n != nil {
		return n.value, true, nil
	}
	return zero, false, nil
}

func (t *Tree[V]) find(p geom.Point) *node[V] {
	n, o := t.root, vertical
	for n != nil {
		if n.point == p {
			return n
		}
		if o.goesBelow(p, n.point) {
			n = n.lb
		} else {
			n = n.rt
		}
		o = o.next()
	}
	return nil
}

// Contains reports whether p is stored in the tree.
func (t *Tree[V]) Contains(p geom.Point) (bool, error) {
	_, ok, err := t.Get(p)
	return ok, err
}

// Points returns every stored point in pre-order. The order follows the tree
// structure and is not sorted. Each call starts a fresh walk.
func (t *Tree[V]) Points() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for p := range t.All() {
			if !yield(p) {
				return
			}
		}
	}
}

// All returns every stored point with its value in pre-order. Inserting the
// pairs into an empty tree in this order rebuilds a tree of identical shape.
func (t *Tree[V]) All() iter.Seq2[geom.Point, V] {
	return func(yield func(geom.Point, V) bool) {
		walk(t.root, yield)
	}
}

func walk[V any](n *node[V], yield func(geom.Point, V) bool) bool {
	if n == nil {
		return true
	}
	return yield(n.point, n.value) && walk(n.lb, yield) && walk(n.rt, yield)
}

// Height returns the number of nodes on the longest root-to-leaf path.
// It is 0 for an empty tree and equals Len for fully degenerate input.
func (t *Tree[V]) Height() int {
	return height(t.root)
}

func height[V any](n *node[V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.lb), height(n.rt))
}
