// Package kdpoint provides an embeddable 2D point index for Go.
//
// An Index maps points in the plane to values and answers exact lookups,
// axis-aligned rectangle range queries and nearest-neighbour queries. The
// default backend is a 2d-tree (package kdtree); a brute-force backend
// (package brute) is available as a correctness and performance baseline.
//
// # Quick Start
//
//	ctx := context.Background()
//	idx, _ := kdpoint.New[string]()
//
//	_ = idx.Insert(ctx, geom.Pt(0.7, 0.2), "A")
//	_ = idx.Insert(ctx, geom.Pt(0.5, 0.4), "B")
//
//	inside, _ := idx.Range(ctx, geom.Rect{XMin: 0, YMin: 0, XMax: 0.6, YMax: 0.5})
//	best, found, _ := idx.Nearest(ctx, geom.Pt(0.6, 0.3))
//
// # Batches
//
// BatchInsert applies many inserts under one lock acquisition. BatchRange and
// BatchNearest fan read queries out over a bounded worker pool (see
// WithResourceConfig) and return results in input order.
//
// # Snapshots
//
// With a blob store configured, Save writes a checksummed, optionally
// compressed snapshot and moves the CURRENT pointer to it; Load restores the
// latest snapshot. Snapshots store entries in tree pre-order, so a reload
// rebuilds the same tree shape.
//
//	store := blobstore.NewLocalStore("./points")
//	idx, _ := kdpoint.New[string](
//	    kdpoint.WithBlobStore(store),
//	    kdpoint.WithCompression(persistence.CompressionZSTD),
//	)
//	name, _ := idx.Save(ctx)
//
// Remote stores live in blobstore/s3 (optionally with a DynamoDB commit log)
// and blobstore/minio.
//
// # Concurrency
//
// Index is safe for concurrent use: a single writer or many readers at a time.
// The underlying kdtree.Tree and brute.Table are not.
package kdpoint
