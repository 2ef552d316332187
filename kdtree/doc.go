// Package kdtree implements a 2d-tree: a binary tree that maps planar points to
// values and recursively partitions the plane by alternating vertical and
// horizontal splits.
//
// Every node owns the rectangle implied by the splits of all its ancestors.
// The root owns the whole plane; a node splitting on x hands the part of its
// region left of its point to the below/left child and the rest to the
// above/right child, and the next level splits on y. Range and nearest
// neighbour queries use these regions to skip subtrees that cannot hold an
// answer.
//
// The tree is never rebalanced, so its shape depends only on insertion order.
// Sorted input degrades it to a list with O(n) depth.
//
// # Concurrency
//
// A Tree is not safe for concurrent use. Concurrent calls to Insert, or an
// Insert concurrent with any read, are undefined behaviour unless the caller
// serializes them (the kdpoint.Index facade does this with a RWMutex).
// Concurrent reads without writers are safe.
//
// # Usage
//
//	t := kdtree.New[string]()
//	_ = t.Insert(geom.Pt(0, 0), "A")
//	_ = t.Insert(geom.Pt(1, 1), "B")
//	p, ok, _ := t.Nearest(geom.Pt(0.1, 0.1)) // (0, 0), true
package kdtree
