package collide

import (
	"github.com/oliverbestmann/collide/gm"
	"github.com/oliverbestmann/collide/internal/assert"
)

// TriMesh is a triangle mesh over a shared vertex buffer.
type TriMesh struct {
	shapeDefaults
	vertices  []gm.Vec
	indices   [][3]uint32
	localAabb gm.Aabb
}

// NewTriMesh returns the mesh with the given vertices and triangles. Each
// index triple selects the corners of one triangle.
func NewTriMesh(vertices []gm.Vec, indices [][3]uint32) *TriMesh {
	assert.That(len(vertices) >= 3, "a mesh needs at least 3 vertices, got %d", len(vertices))
	assert.That(len(indices) > 0, "a mesh needs at least one triangle")

	for _, triangle := range indices {
		assert.That(int(triangle[0]) < len(vertices) &&
			int(triangle[1]) < len(vertices) &&
			int(triangle[2]) < len(vertices),
			"triangle %v references a vertex out of range", triangle)
	}

	return &TriMesh{
		vertices:  append([]gm.Vec(nil), vertices...),
		indices:   append([][3]uint32(nil), indices...),
		localAabb: gm.AabbOfPoints(vertices),
	}
}

// Vertices returns the vertex buffer. The returned slice is shared and must
// not be modified.
func (m *TriMesh) Vertices() []gm.Vec {
	return m.vertices
}

// Indices returns the vertex index triples of the triangles. The returned
// slice is shared and must not be modified.
func (m *TriMesh) Indices() [][3]uint32 {
	return m.indices
}

// TriangleAt returns the triangle with the given index.
func (m *TriMesh) TriangleAt(index int) Triangle {
	triangle := m.indices[index]
	return Triangle{
		A: m.vertices[triangle[0]],
		B: m.vertices[triangle[1]],
		C: m.vertices[triangle[2]],
	}
}

func (m *TriMesh) ComputeLocalAabb() gm.Aabb {
	return m.localAabb
}

func (m *TriMesh) ComputeAabb(pose gm.Iso) gm.Aabb {
	return m.localAabb.TransformedBy(pose)
}

// MassProperties of a mesh are zero, the mesh is treated as a hollow
// boundary without volume.
func (m *TriMesh) MassProperties(float64) MassProperties {
	return MassProperties{}
}

func (m *TriMesh) ShapeType() ShapeType {
	return TypeTriMesh
}

// CcdThickness is zero for meshes. This is a conservative placeholder, any
// non negative lower bound on the thickness would do.
func (m *TriMesh) CcdThickness() float64 {
	return 0
}

func (m *TriMesh) AsCompositeShape() (CompositeShape, bool) {
	return m, true
}

func (m *TriMesh) NumChildren() int {
	return len(m.indices)
}

func (m *TriMesh) ForEachChild(f func(childIndex uint32, pose gm.Iso, child Shape)) {
	identity := gm.IdentityIso()

	for idx := range m.indices {
		triangle := m.TriangleAt(idx)
		f(uint32(idx), identity, &triangle)
	}
}
