package collide

import (
	"testing"

	"github.com/oliverbestmann/collide/gm"
	"github.com/stretchr/testify/require"
)

func TestCompound_AggregateAabb(t *testing.T) {
	compound := NewCompound([]ChildShape{
		{Pose: gm.IdentityIso().Translate(gm.Vec{X: -2}), Shape: &Ball{Radius: 1}},
		{Pose: gm.IdentityIso().Translate(gm.Vec{X: 2}), Shape: &Ball{Radius: 1}},
	})

	aabb := compound.ComputeLocalAabb()
	requireVecInDelta(t, gm.Vec{X: -3, Y: -1, Z: -1}, aabb.Min)
	requireVecInDelta(t, gm.Vec{X: 3, Y: 1, Z: 1}, aabb.Max)

	// the aggregate box moves rigidly with the compound
	moved := compound.ComputeAabb(gm.IdentityIso().Translate(gm.Vec{Y: 5}))
	requireVecInDelta(t, gm.Vec{X: -3, Y: 4, Z: -1}, moved.Min)
}

func TestCompound_ForEachChild(t *testing.T) {
	children := []ChildShape{
		{Pose: gm.IdentityIso().Translate(gm.Vec{X: -2}), Shape: &Ball{Radius: 1}},
		{Pose: gm.IdentityIso().Translate(gm.Vec{X: 2}), Shape: &Cuboid{HalfExtents: gm.VecOne}},
	}

	compound := NewCompound(children)

	composite, ok := compound.AsCompositeShape()
	require.True(t, ok)
	require.Equal(t, 2, composite.NumChildren())

	var visited []uint32
	composite.ForEachChild(func(childIndex uint32, pose gm.Iso, child Shape) {
		visited = append(visited, childIndex)
		require.Same(t, children[childIndex].Shape, child)
		requireVecInDelta(t, children[childIndex].Pose.Translation, pose.Translation)
	})

	require.Equal(t, []uint32{0, 1}, visited)
}

func TestPolyline_ConsecutiveChain(t *testing.T) {
	vertices := []gm.Vec{{X: 0}, {X: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	polyline := NewPolyline(vertices, nil)

	require.Equal(t, 3, polyline.NumChildren())

	first := polyline.SegmentAt(0)
	requireVecInDelta(t, vertices[0], first.A)
	requireVecInDelta(t, vertices[1], first.B)

	last := polyline.SegmentAt(2)
	requireVecInDelta(t, vertices[2], last.A)
	requireVecInDelta(t, vertices[3], last.B)
}

func TestPolyline_ExplicitIndices(t *testing.T) {
	vertices := []gm.Vec{{X: 0}, {X: 1}, {X: 2}}
	polyline := NewPolyline(vertices, [][2]uint32{{2, 0}})

	require.Equal(t, 1, polyline.NumChildren())

	segment := polyline.SegmentAt(0)
	requireVecInDelta(t, vertices[2], segment.A)
	requireVecInDelta(t, vertices[0], segment.B)
}

func TestPolyline_RejectsAnEmptySegmentList(t *testing.T) {
	require.Panics(t, func() {
		NewPolyline([]gm.Vec{{X: 0}, {X: 1}}, [][2]uint32{})
	})
}

func TestPolyline_ChildrenArePosedAtIdentity(t *testing.T) {
	polyline := NewPolyline([]gm.Vec{{X: 0}, {X: 1}, {X: 2}}, nil)

	polyline.ForEachChild(func(childIndex uint32, pose gm.Iso, child Shape) {
		requireVecInDelta(t, gm.VecZero, pose.Translation)

		segment, ok := AsSegment(child)
		require.True(t, ok)
		requireVecInDelta(t, polyline.SegmentAt(int(childIndex)).A, segment.A)
	})
}

func TestTriMesh_Children(t *testing.T) {
	mesh := testTriMesh()

	require.Equal(t, 4, mesh.NumChildren())

	triangle := mesh.TriangleAt(0)
	requireVecInDelta(t, gm.VecZero, triangle.A)
	requireVecInDelta(t, gm.VecX, triangle.B)
	requireVecInDelta(t, gm.VecY, triangle.C)

	count := 0
	mesh.ForEachChild(func(childIndex uint32, pose gm.Iso, child Shape) {
		count++
		_, ok := AsTriangle(child)
		require.True(t, ok)
	})
	require.Equal(t, 4, count)

	aabb := mesh.ComputeLocalAabb()
	requireVecInDelta(t, gm.VecZero, aabb.Min)
	requireVecInDelta(t, gm.VecOne, aabb.Max)
}

func TestHeightField_Geometry(t *testing.T) {
	field := NewHeightField([][]float64{
		{0, 1},
		{0, 0},
	}, gm.Vec{X: 2, Y: 3, Z: 2})

	require.Equal(t, 1, field.NumRows())
	require.Equal(t, 1, field.NumCols())

	// vertices span the scaled footprint centered at the origin
	requireVecInDelta(t, gm.Vec{X: -1, Y: 0, Z: -1}, field.VertexAt(0, 0))
	requireVecInDelta(t, gm.Vec{X: 1, Y: 3, Z: -1}, field.VertexAt(0, 1))

	a, b := field.CellTriangles(0, 0)

	// the two triangles tile the cell and face upward
	for _, triangle := range []Triangle{a, b} {
		normal, ok := triangle.Normal()
		require.True(t, ok)
		require.Greater(t, normal.Y, 0.0)
	}

	aabb := field.ComputeLocalAabb()
	require.InDelta(t, 0.0, aabb.Min.Y, 1e-9)
	require.InDelta(t, 3.0, aabb.Max.Y, 1e-9)
}
