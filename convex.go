package collide

import (
	"github.com/oliverbestmann/collide/gm"
	"github.com/oliverbestmann/collide/hull"
	"github.com/oliverbestmann/collide/internal/assert"
)

// ConvexPolyhedron is a convex solid described by its vertices and faces.
type ConvexPolyhedron struct {
	shapeDefaults
	points    []gm.Vec
	faces     [][]uint32
	normals   []gm.Vec
	localAabb gm.Aabb
}

// NewConvexPolyhedron returns the convex polyhedron with the given vertices
// and faces. Each face lists the indices of its vertices with outward,
// counter clockwise winding. Convexity is the caller's responsibility, it
// is not verified here.
func NewConvexPolyhedron(points []gm.Vec, faces [][]uint32) *ConvexPolyhedron {
	assert.That(len(points) >= 4, "a convex polyhedron needs at least 4 vertices, got %d", len(points))
	assert.That(len(faces) >= 4, "a convex polyhedron needs at least 4 faces, got %d", len(faces))

	normals := make([]gm.Vec, len(faces))

	for idx, face := range faces {
		assert.That(len(face) >= 3, "face %d has only %d vertices", idx, len(face))

		// Newell's method handles faces with more than three vertices
		var normal gm.Vec
		for k, index := range face {
			assert.That(int(index) < len(points), "face %d references vertex %d out of range", idx, index)

			current := points[index]
			next := points[face[(k+1)%len(face)]]
			normal = normal.Add(current.Cross(next))
		}

		unit, ok := normal.TryNormalized()
		assert.That(ok, "face %d is degenerate", idx)
		normals[idx] = unit
	}

	return &ConvexPolyhedron{
		points:    append([]gm.Vec(nil), points...),
		faces:     append([][]uint32(nil), faces...),
		normals:   normals,
		localAabb: gm.AabbOfPoints(points),
	}
}

// Points returns the vertices of the polyhedron. The returned slice is
// shared and must not be modified.
func (c *ConvexPolyhedron) Points() []gm.Vec {
	return c.points
}

// Faces returns the faces of the polyhedron as vertex index lists. The
// returned slices are shared and must not be modified.
func (c *ConvexPolyhedron) Faces() [][]uint32 {
	return c.faces
}

// FaceNormal returns the outward unit normal of the given face.
func (c *ConvexPolyhedron) FaceNormal(face int) gm.Vec {
	return c.normals[face]
}

func (c *ConvexPolyhedron) ComputeLocalAabb() gm.Aabb {
	return c.localAabb
}

func (c *ConvexPolyhedron) ComputeAabb(pose gm.Iso) gm.Aabb {
	return c.localAabb.TransformedBy(pose)
}

func (c *ConvexPolyhedron) MassProperties(density float64) MassProperties {
	return MassPropertiesOfConvexPolyhedron(density, c.points, c.faces)
}

func (c *ConvexPolyhedron) ShapeType() ShapeType {
	return TypeConvexPolyhedron
}

func (c *ConvexPolyhedron) CcdThickness() float64 {
	return c.localAabb.HalfExtents().MinComponent()
}

func (c *ConvexPolyhedron) IsConvex() bool {
	return true
}

func (c *ConvexPolyhedron) AsSupportMap() (SupportMap, bool) {
	return c, true
}

func (c *ConvexPolyhedron) AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool) {
	return c, 0, true
}

func (c *ConvexPolyhedron) FeatureNormalAtPoint(feature FeatureID, _ gm.Vec) (gm.Vec, bool) {
	if feature.Kind != FeatureFace || int(feature.Index) >= len(c.normals) {
		return gm.Vec{}, false
	}

	return c.normals[feature.Index], true
}

func (c *ConvexPolyhedron) LocalSupportPoint(dir gm.Vec) gm.Vec {
	id, _ := hull.SupportPointID(dir, c.points)
	return c.points[id]
}

// LocalSupportFeature selects the face whose outward normal is most
// aligned with dir. Faces with more than four vertices are truncated to
// their first four.
func (c *ConvexPolyhedron) LocalSupportFeature(dir gm.Vec, out *PolygonalFeature) {
	best := 0
	bestDot := c.normals[0].Dot(dir)

	for idx, normal := range c.normals[1:] {
		if dot := normal.Dot(dir); dot > bestDot {
			best, bestDot = idx+1, dot
		}
	}

	face := c.faces[best]
	out.NumVertices = min(len(face), 4)
	for k := range out.NumVertices {
		out.Vertices[k] = c.points[face[k]]
	}
	out.Feature = FaceFeature(uint32(best))
}
