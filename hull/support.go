// Package hull provides the support point primitives used by incremental
// convex hull construction and other iterative geometric algorithms: the
// extremal point of a point cloud along a direction, over the full cloud or
// an index restricted subset, and a normalization pair to improve the
// numerical conditioning of a cloud before iterating on it.
package hull

import (
	"github.com/oliverbestmann/collide/gm"
	"github.com/oliverbestmann/collide/internal/assert"
)

// SupportPointID returns the index of the point with the largest dot
// product with dir. Ties keep the earliest point. The second return value
// is false if points is empty.
func SupportPointID(dir gm.Vec, points []gm.Vec) (int, bool) {
	var best int
	var bestDot float64
	found := false

	for id, point := range points {
		if dot := dir.Dot(point); !found || dot > bestDot {
			best, bestDot, found = id, dot, true
		}
	}

	return best, found
}

// IndexedSupportPointID returns the index of the point with the largest dot
// product with dir, scanning only the points selected by idx. The returned
// value is an index into points. The second return value is false if idx is
// empty.
func IndexedSupportPointID(dir gm.Vec, points []gm.Vec, idx []int) (int, bool) {
	var best int
	var bestDot float64
	found := false

	for _, id := range idx {
		if dot := dir.Dot(points[id]); !found || dot > bestDot {
			best, bestDot, found = id, dot, true
		}
	}

	return best, found
}

// IndexedSupportPointNth works like IndexedSupportPointID but returns the
// position of the winner within idx instead of its index into points. Use
// this when the winning entry must afterwards be removed or reordered
// within the caller's own index list.
func IndexedSupportPointNth(dir gm.Vec, points []gm.Vec, idx []int) (int, bool) {
	var best int
	var bestDot float64
	found := false

	for nth, id := range idx {
		if dot := dir.Dot(points[id]); !found || dot > bestDot {
			best, bestDot, found = nth, dot, true
		}
	}

	return best, found
}

// Normalize translates and scales the points in place so that they are
// centered around the origin and fit within the unit cube: every point is
// shifted by the negated center of the cloud's bounding box and divided by
// the length of the box diagonal.
//
// It returns the center and the diagonal so the transformation can be
// undone with Denormalize. The cloud must contain at least two distinct
// points.
func Normalize(points []gm.Vec) (center gm.Vec, diagonal float64) {
	assert.That(len(points) > 0, "can not normalize an empty point cloud")

	aabb := gm.AabbOfPoints(points)
	center = aabb.Center()
	diagonal = aabb.Max.Sub(aabb.Min).Length()
	assert.Positive(diagonal, "point cloud diagonal")

	for idx := range points {
		points[idx] = points[idx].Sub(center).Mul(1 / diagonal)
	}

	return center, diagonal
}

// Denormalize undoes a previous Normalize with the returned center and
// diagonal, scaling and translating the points in place.
func Denormalize(points []gm.Vec, center gm.Vec, diagonal float64) {
	for idx := range points {
		points[idx] = points[idx].Mul(diagonal).Add(center)
	}
}
