package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/kdpoint/geom"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Point returns a point drawn uniformly from bounds. bounds must be finite.
func (r *RNG) Point(bounds geom.Rect) geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pointLocked(bounds)
}

func (r *RNG) pointLocked(bounds geom.Rect) geom.Point {
	return geom.Point{
		X: bounds.XMin + r.rand.Float64()*(bounds.XMax-bounds.XMin),
		Y: bounds.YMin + r.rand.Float64()*(bounds.YMax-bounds.YMin),
	}
}

// UniformPoints generates num points drawn uniformly from bounds.
func (r *RNG) UniformPoints(num int, bounds geom.Rect) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]geom.Point, num)
	for i := range points {
		points[i] = r.pointLocked(bounds)
	}
	return points
}

// GridPoints generates num points with integer coordinates in [0, size).
// With num close to or above size*size the result contains repeated points
// and many shared x or y coordinates, which exercises tie handling.
func (r *RNG) GridPoints(num, size int) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]geom.Point, num)
	for i := range points {
		points[i] = geom.Pt(float64(r.rand.Intn(size)), float64(r.rand.Intn(size)))
	}
	return points
}

// ClusteredPoints generates points around random centres in the unit square,
// with Gaussian noise of the given spread.
// Useful for testing pruning on non-uniform data.
func (r *RNG) ClusteredPoints(num, clusters int, spread float64) []geom.Point {
	centroids := r.UniformPoints(clusters, geom.Rect{XMax: 1, YMax: 1})

	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]geom.Point, num)
	for i := range points {
		c := centroids[i%clusters]
		points[i] = geom.Pt(
			c.X+r.rand.NormFloat64()*spread,
			c.Y+r.rand.NormFloat64()*spread,
		)
	}
	return points
}

// Rect returns a random rectangle whose corners lie inside bounds.
func (r *RNG) Rect(bounds geom.Rect) geom.Rect {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, b := r.pointLocked(bounds), r.pointLocked(bounds)
	return geom.Rect{
		XMin: math.Min(a.X, b.X),
		YMin: math.Min(a.Y, b.Y),
		XMax: math.Max(a.X, b.X),
		YMax: math.Max(a.Y, b.Y),
	}
}

// Distinct returns points with repeats removed, keeping first occurrences.
func Distinct(points []geom.Point) []geom.Point {
	seen := make(map[geom.Point]struct{}, len(points))
	out := make([]geom.Point, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// ExactRange returns the distinct points contained in rect.
func ExactRange(points []geom.Point, rect geom.Rect) []geom.Point {
	var out []geom.Point
	for _, p := range Distinct(points) {
		if rect.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// ExactNearest returns the first point at minimum squared distance from q and
// that distance. It returns +Inf as the distance for an empty input.
func ExactNearest(points []geom.Point, q geom.Point) (geom.Point, float64) {
	var best geom.Point
	bestDist := math.Inf(1)
	for _, p := range points {
		if d := p.DistanceSquaredTo(q); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, bestDist
}
