package kdtree

import "github.com/hupe1980/kdpoint/geom"

// Nearest returns a stored point closest to q. The boolean is false only when
// the tree is empty. When several points are equally close, any one of them
// may be returned.
func (t *Tree[V]) Nearest(q geom.Point) (geom.Point, bool, error) {
	if err := geom.ValidatePoint("query", q); err != nil {
		return geom.Point{}, false, err
	}
	if t.root == nil {
		return geom.Point{}, false, nil
	}
	s := nearestSearch[V]{
		query:    q,
		best:     t.root.point,
		bestDist: t.root.point.DistanceSquaredTo(q),
	}
	s.visit(t.root, vertical)
	return s.best, true, nil
}

// nearestSearch carries the running best across the recursion. bestDist only
// ever decreases.
type nearestSearch[V any] struct {
	query    geom.Point
	best     geom.Point
	bestDist float64

	// visited counts expanded nodes. It is instrumentation only and does not
	// influence the search.
	visited int
}

func (s *nearestSearch[V]) visit(n *node[V], o orientation) {
	if n == nil || n.region.DistanceSquaredTo(s.query) > s.bestDist {
		return
	}
	s.visited++

	if d := n.point.DistanceSquaredTo(s.query); d < s.bestDist {
		s.best, s.bestDist = n.point, d
	}

	// Descend into the side of the split that holds the query first; a close
	// candidate found there lets the region test prune the other side.
	near, far := n.rt, n.lb
	if o.goesBelow(s.query, n.point) {
		near, far = n.lb, n.rt
	}
	s.visit(near, o.next())
	s.visit(far, o.next())
}
