package kdpoint_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"slices"

	"github.com/hupe1980/kdpoint"
	"github.com/hupe1980/kdpoint/blobstore"
	"github.com/hupe1980/kdpoint/geom"
	"github.com/hupe1980/kdpoint/persistence"
)

// Example demonstrates inserts, a range query and a nearest-neighbour query.
func Example() {
	ctx := context.Background()

	idx, err := kdpoint.New[string]()
	if err != nil {
		log.Fatal(err)
	}
	defer idx.Close()

	_ = idx.Insert(ctx, geom.Pt(0, 0), "A")
	_ = idx.Insert(ctx, geom.Pt(1, 1), "B")
	_ = idx.Insert(ctx, geom.Pt(-1, -1), "C")

	inside, _ := idx.Range(ctx, geom.Rect{XMin: 0, YMin: 0, XMax: 1.1, YMax: 1.1})
	slices.SortFunc(inside, func(a, b geom.Point) int {
		if a.Less(b) {
			return -1
		}
		return 1
	})
	fmt.Println(idx.Len(), inside)

	best, _, _ := idx.Nearest(ctx, geom.Pt(-100, -100))
	v, _, _ := idx.Get(ctx, best)
	fmt.Println(best, v)
	// Output:
	// 3 [(0, 0) (1, 1)]
	// (-1, -1) C
}

// Example_bruteForce uses the linear-scan backend as a baseline.
func Example_bruteForce() {
	ctx := context.Background()

	idx, err := kdpoint.New[int](kdpoint.WithBackend(kdpoint.BackendBruteForce))
	if err != nil {
		log.Fatal(err)
	}

	created, _ := idx.BatchInsert(ctx,
		[]geom.Point{geom.Pt(3, 1), geom.Pt(1, 2), geom.Pt(2, 1)},
		[]int{1, 2, 3},
	)
	points, _ := idx.Points(ctx)
	fmt.Println(created, points)
	// Output: 3 [(2, 1) (3, 1) (1, 2)]
}

// Example_batchNearest answers several queries concurrently.
func Example_batchNearest() {
	ctx := context.Background()

	idx, _ := kdpoint.New[string]()
	_, _ = idx.BatchInsert(ctx,
		[]geom.Point{geom.Pt(0.7, 0.2), geom.Pt(0.5, 0.4), geom.Pt(0.2, 0.3), geom.Pt(0.4, 0.7), geom.Pt(0.9, 0.6)},
		[]string{"A", "B", "C", "D", "E"},
	)

	neighbors, _ := idx.BatchNearest(ctx, []geom.Point{geom.Pt(0.81, 0.3), geom.Pt(0.1, 0.1)})
	for _, n := range neighbors {
		fmt.Println(n.Point)
	}
	// Output:
	// (0.7, 0.2)
	// (0.2, 0.3)
}

// Example_snapshot saves an index to a local directory and restores it.
func Example_snapshot() {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "kdpoint-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	store := blobstore.NewLocalStore(dir)

	src, _ := kdpoint.New[string](
		kdpoint.WithBlobStore(store),
		kdpoint.WithCompression(persistence.CompressionZSTD),
	)
	_ = src.Insert(ctx, geom.Pt(0.7, 0.2), "A")
	_ = src.Insert(ctx, geom.Pt(0.5, 0.4), "B")

	name, err := src.Save(ctx)
	if err != nil {
		log.Fatal(err)
	}

	dst, _ := kdpoint.New[string](kdpoint.WithBlobStore(store))
	if err := dst.Load(ctx); err != nil {
		log.Fatal(err)
	}

	v, _, _ := dst.Get(ctx, geom.Pt(0.5, 0.4))
	fmt.Println(name, dst.Len(), v)
	// Output: snapshot-00000000000000000001.kdp 2 B
}
