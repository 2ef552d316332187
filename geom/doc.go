// Package geom provides the planar value types shared by the point indexes:
// Point, an immutable coordinate pair, and Rect, an axis-aligned rectangle.
//
// Both types are plain values. Rect bounds may be infinite, which is how the
// unbounded plane (see Plane) is represented; Point coordinates must be finite
// to be accepted as index keys.
//
// # Usage
//
//	r := geom.Rect{XMin: 0, YMin: 0, XMax: 1.1, YMax: 1.1}
//	r.Contains(geom.Pt(1, 1))            // true, edges are inclusive
//	r.DistanceSquaredTo(geom.Pt(2, 1.1)) // 0.81
package geom
