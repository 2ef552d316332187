package kdtree

import "github.com/hupe1980/kdpoint/geom"

// Range returns every stored point inside r, boundary included, in no
// particular order. An empty result is not an error.
func (t *Tree[V]) Range(r geom.Rect) ([]geom.Point, error) {
	if err := geom.ValidateRect("rect", r); err != nil {
		return nil, err
	}
	var out []geom.Point
	collectRange(t.root, r, &out)
	return out, nil
}

// collectRange skips any subtree whose region misses r: every point below a
// node lies inside that node's region.
func collectRange[V any](n *node[V], r geom.Rect, out *[]geom.Point) {
	if n == nil || !n.region.Intersects(r) {
		return
	}
	if r.Contains(n.point) {
		*out = append(*out, n.point)
	}
	collectRange(n.lb, r, out)
	collectRange(n.rt, r, out)
}
