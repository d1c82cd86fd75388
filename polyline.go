package collide

import (
	"github.com/oliverbestmann/collide/gm"
	"github.com/oliverbestmann/collide/internal/assert"
)

// Polyline is a set of line segments over a shared vertex buffer.
type Polyline struct {
	shapeDefaults
	vertices  []gm.Vec
	indices   [][2]uint32
	localAabb gm.Aabb
}

// NewPolyline returns the polyline over the given vertices. indices selects
// the vertex pair of each segment; passing nil connects the vertices in
// order into a single open chain.
func NewPolyline(vertices []gm.Vec, indices [][2]uint32) *Polyline {
	assert.That(len(vertices) >= 2, "a polyline needs at least 2 vertices, got %d", len(vertices))

	if indices == nil {
		indices = make([][2]uint32, len(vertices)-1)
		for idx := range indices {
			indices[idx] = [2]uint32{uint32(idx), uint32(idx + 1)}
		}
	}

	assert.That(len(indices) > 0, "a polyline needs at least one segment")

	for _, segment := range indices {
		assert.That(int(segment[0]) < len(vertices) && int(segment[1]) < len(vertices),
			"segment %v references a vertex out of range", segment)
	}

	return &Polyline{
		vertices:  append([]gm.Vec(nil), vertices...),
		indices:   append([][2]uint32(nil), indices...),
		localAabb: gm.AabbOfPoints(vertices),
	}
}

// Vertices returns the vertex buffer. The returned slice is shared and must
// not be modified.
func (p *Polyline) Vertices() []gm.Vec {
	return p.vertices
}

// Indices returns the vertex index pairs of the segments. The returned
// slice is shared and must not be modified.
func (p *Polyline) Indices() [][2]uint32 {
	return p.indices
}

// SegmentAt returns the segment with the given index.
func (p *Polyline) SegmentAt(index int) Segment {
	segment := p.indices[index]
	return Segment{
		A: p.vertices[segment[0]],
		B: p.vertices[segment[1]],
	}
}

func (p *Polyline) ComputeLocalAabb() gm.Aabb {
	return p.localAabb
}

func (p *Polyline) ComputeAabb(pose gm.Iso) gm.Aabb {
	return p.localAabb.TransformedBy(pose)
}

// MassProperties of a polyline are zero, a polyline has no volume.
func (p *Polyline) MassProperties(float64) MassProperties {
	return MassProperties{}
}

func (p *Polyline) ShapeType() ShapeType {
	return TypePolyline
}

// CcdThickness is zero for polylines. This is a conservative placeholder,
// any non negative lower bound on the thickness would do.
func (p *Polyline) CcdThickness() float64 {
	return 0
}

func (p *Polyline) AsCompositeShape() (CompositeShape, bool) {
	return p, true
}

func (p *Polyline) NumChildren() int {
	return len(p.indices)
}

func (p *Polyline) ForEachChild(f func(childIndex uint32, pose gm.Iso, child Shape)) {
	identity := gm.IdentityIso()

	for idx := range p.indices {
		segment := p.SegmentAt(idx)
		f(uint32(idx), identity, &segment)
	}
}
