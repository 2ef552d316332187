package geom

import (
	"math"
	"strconv"
)

// Rect is an axis-aligned rectangle [XMin, XMax] x [YMin, YMax].
//
// Bounds may be infinite. A zero-width or zero-height rectangle is valid and
// degenerates to a segment or a single point.
type Rect struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// NewRect returns the rectangle with the given bounds, or an error satisfying
// errors.Is(err, ErrInvalidArgument) if the bounds are NaN or inverted.
func NewRect(xmin, ymin, xmax, ymax float64) (Rect, error) {
	r := Rect{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
	if err := ValidateRect("rect", r); err != nil {
		return Rect{}, err
	}
	return r, nil
}

// Plane returns the unbounded rectangle covering every finite point.
func Plane() Rect {
	return Rect{
		XMin: math.Inf(-1),
		YMin: math.Inf(-1),
		XMax: math.Inf(1),
		YMax: math.Inf(1),
	}
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.XMin && p.X <= r.XMax &&
		p.Y >= r.YMin && p.Y <= r.YMax
}

// Intersects reports whether r and o share at least one point.
// Rectangles that only touch along an edge or a corner intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.XMax >= o.XMin && r.YMax >= o.YMin &&
		o.XMax >= r.XMin && o.YMax >= r.YMin
}

// DistanceSquaredTo returns the squared Euclidean distance from p to the
// closest point of r. It is zero when r contains p.
func (r Rect) DistanceSquaredTo(p Point) float64 {
	var dx, dy float64
	switch {
	case p.X < r.XMin:
		dx = r.XMin - p.X
	case p.X > r.XMax:
		dx = p.X - r.XMax
	}
	switch {
	case p.Y < r.YMin:
		dy = r.YMin - p.Y
	case p.Y > r.YMax:
		dy = p.Y - r.YMax
	}
	return dx*dx + dy*dy
}

// DistanceTo returns the Euclidean distance from p to the closest point of r.
func (r Rect) DistanceTo(p Point) float64 {
	return math.Sqrt(r.DistanceSquaredTo(p))
}

func (r Rect) String() string {
	return "[" + formatBound(r.XMin) + ", " + formatBound(r.XMax) + "] x [" +
		formatBound(r.YMin) + ", " + formatBound(r.YMax) + "]"
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
