package kdtree

import "github.com/hupe1980/kdpoint/geom"

// node is a single entry of the tree. Children are owned exclusively by their
// parent; there are no back references.
type node[V any] struct {
	point  geom.Point
	value  V
	region geom.Rect // fixed at creation
	lb     *node[V]  // below/left subtree
	rt     *node[V]  // above/right subtree
}

// orientation is the split axis at a given depth. It is never stored in a
// node: traversals start at the root with vertical and flip on every level.
type orientation bool

const (
	vertical   orientation = false // split on x
	horizontal orientation = true  // split on y
)

func (o orientation) next() orientation { return !o }

func (o orientation) coord(p geom.Point) float64 {
	if o == vertical {
		return p.X
	}
	return p.Y
}

// goesBelow reports whether p descends into the below/left child of a node
// holding split. Ties go above/right.
func (o orientation) goesBelow(p, split geom.Point) bool {
	return o.coord(p) < o.coord(split)
}

// below returns region clipped to the below/left side of split.
func (o orientation) below(region geom.Rect, split geom.Point) geom.Rect {
	if o == vertical {
		region.XMax = split.X
	} else {
		region.YMax = split.Y
	}
	return region
}

// above returns region clipped to the above/right side of split.
func (o orientation) above(region geom.Rect, split geom.Point) geom.Rect {
	if o == vertical {
		region.XMin = split.X
	} else {
		region.YMin = split.Y
	}
	return region
}

func (o orientation) String() string {
	if o == vertical {
		return "vertical"
	}
	return "horizontal"
}
