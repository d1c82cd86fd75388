package collide

import (
	"testing"

	"github.com/oliverbestmann/collide/gm"
	"github.com/stretchr/testify/require"
)

// testCube returns a convex polyhedron describing the cube with the given
// half extent, with outward counter clockwise faces.
func testCube(halfExtent float64) *ConvexPolyhedron {
	h := halfExtent

	points := []gm.Vec{
		{X: -h, Y: -h, Z: -h},
		{X: h, Y: -h, Z: -h},
		{X: h, Y: h, Z: -h},
		{X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h},
		{X: h, Y: -h, Z: h},
		{X: h, Y: h, Z: h},
		{X: -h, Y: h, Z: h},
	}

	faces := [][]uint32{
		{4, 5, 6, 7},
		{1, 0, 3, 2},
		{1, 2, 6, 5},
		{0, 4, 7, 3},
		{2, 3, 7, 6},
		{0, 1, 5, 4},
	}

	return NewConvexPolyhedron(points, faces)
}

func testTriMesh() *TriMesh {
	return NewTriMesh(
		[]gm.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
		[][3]uint32{{0, 1, 2}, {0, 2, 3}, {0, 3, 1}, {1, 3, 2}},
	)
}

func testHeightField() *HeightField {
	return NewHeightField([][]float64{
		{0, 0.5, 0.2},
		{0.1, 1, 0},
		{0, 0.25, -0.5},
	}, gm.Vec{X: 4, Y: 2, Z: 4})
}

// allTestShapes returns one instance of every concrete shape variant.
func allTestShapes() []Shape {
	return []Shape{
		&Ball{Radius: 1.5},
		&Cuboid{HalfExtents: gm.Vec{X: 1, Y: 2, Z: 0.5}},
		CapsuleY(1, 0.5),
		&Segment{A: gm.Vec{X: -1}, B: gm.Vec{X: 1, Y: 1}},
		&Triangle{A: gm.Vec{X: 1}, B: gm.Vec{Y: 1}, C: gm.Vec{Z: 1}},
		testTriMesh(),
		NewPolyline([]gm.Vec{{X: 0}, {X: 1}, {X: 1, Y: 1}}, nil),
		NewHalfSpace(gm.VecY),
		testHeightField(),
		NewCompound([]ChildShape{
			{Pose: gm.IdentityIso().Translate(gm.Vec{X: -2}), Shape: &Ball{Radius: 1}},
			{Pose: gm.IdentityIso().Translate(gm.Vec{X: 2}), Shape: &Ball{Radius: 1}},
		}),
		testCube(1),
		&Cylinder{HalfHeight: 1, Radius: 0.5},
		&Cone{HalfHeight: 1, Radius: 0.5},
		Rounded(&Cuboid{HalfExtents: gm.VecOne}, 0.1),
		Rounded(&Triangle{A: gm.Vec{X: 1}, B: gm.Vec{Y: 1}, C: gm.Vec{Z: 1}}, 0.1),
		Rounded(&Cylinder{HalfHeight: 1, Radius: 0.5}, 0.1),
		Rounded(&Cone{HalfHeight: 1, Radius: 0.5}, 0.1),
		Rounded(testCube(1), 0.1),
	}
}

func TestShape_LocalAabbMatchesIdentityPose(t *testing.T) {
	for _, shape := range allTestShapes() {
		t.Run(shape.ShapeType().String(), func(t *testing.T) {
			local := shape.ComputeLocalAabb()
			posed := shape.ComputeAabb(gm.IdentityIso())

			requireVecInDelta(t, local.Min, posed.Min)
			requireVecInDelta(t, local.Max, posed.Max)
		})
	}
}

func TestShape_CcdThicknessIsNonNegative(t *testing.T) {
	for _, shape := range allTestShapes() {
		t.Run(shape.ShapeType().String(), func(t *testing.T) {
			require.GreaterOrEqual(t, shape.CcdThickness(), 0.0)
		})
	}
}

func TestShape_CcdThickness(t *testing.T) {
	require.Equal(t, 1.5, (&Ball{Radius: 1.5}).CcdThickness())
	require.Equal(t, 0.5, (&Cuboid{HalfExtents: gm.Vec{X: 1, Y: 2, Z: 0.5}}).CcdThickness())
	require.Equal(t, 0.25, CapsuleY(1, 0.25).CcdThickness())
	require.Equal(t, 0.5, (&Cylinder{HalfHeight: 1, Radius: 0.5}).CcdThickness())
	require.Equal(t, 0.5, (&Cone{HalfHeight: 1, Radius: 0.5}).CcdThickness())

	// a compound is as thin as its thinnest child
	compound := NewCompound([]ChildShape{
		{Pose: gm.IdentityIso(), Shape: &Ball{Radius: 2}},
		{Pose: gm.IdentityIso(), Shape: &Ball{Radius: 0.5}},
	})
	require.Equal(t, 0.5, compound.CcdThickness())
}

func TestShape_Convexity(t *testing.T) {
	convex := map[ShapeType]bool{
		TypeBall:                  true,
		TypeCuboid:                true,
		TypeCapsule:               true,
		TypeSegment:               true,
		TypeTriangle:              true,
		TypeHalfSpace:             true,
		TypeConvexPolyhedron:      true,
		TypeCylinder:              true,
		TypeCone:                  true,
		TypeRoundCuboid:           true,
		TypeRoundTriangle:         true,
		TypeRoundCylinder:         true,
		TypeRoundCone:             true,
		TypeRoundConvexPolyhedron: true,
	}

	for _, shape := range allTestShapes() {
		t.Run(shape.ShapeType().String(), func(t *testing.T) {
			require.Equal(t, convex[shape.ShapeType()], shape.IsConvex())
		})
	}
}

func TestShape_Capabilities(t *testing.T) {
	type capabilities struct {
		supportMap bool
		composite  bool
		featureMap bool
	}

	expected := map[ShapeType]capabilities{
		TypeBall:                  {supportMap: true},
		TypeCuboid:                {supportMap: true, featureMap: true},
		TypeCapsule:               {supportMap: true, featureMap: true},
		TypeSegment:               {supportMap: true, featureMap: true},
		TypeTriangle:              {supportMap: true, featureMap: true},
		TypeTriMesh:               {composite: true},
		TypePolyline:              {composite: true},
		TypeHalfSpace:             {},
		TypeHeightField:           {},
		TypeCompound:              {composite: true},
		TypeConvexPolyhedron:      {supportMap: true, featureMap: true},
		TypeCylinder:              {supportMap: true, featureMap: true},
		TypeCone:                  {supportMap: true, featureMap: true},
		TypeRoundCuboid:           {supportMap: true, featureMap: true},
		TypeRoundTriangle:         {supportMap: true, featureMap: true},
		TypeRoundCylinder:         {supportMap: true, featureMap: true},
		TypeRoundCone:             {supportMap: true, featureMap: true},
		TypeRoundConvexPolyhedron: {supportMap: true, featureMap: true},
	}

	for _, shape := range allTestShapes() {
		t.Run(shape.ShapeType().String(), func(t *testing.T) {
			_, hasSupportMap := shape.AsSupportMap()
			_, hasComposite := shape.AsCompositeShape()
			_, _, hasFeatureMap := shape.AsPolygonalFeatureMap()

			require.Equal(t, expected[shape.ShapeType()], capabilities{
				supportMap: hasSupportMap,
				composite:  hasComposite,
				featureMap: hasFeatureMap,
			})
		})
	}
}

func TestShape_Downcast(t *testing.T) {
	ball := &Ball{Radius: 2}
	cuboid := &Cuboid{HalfExtents: gm.VecOne}

	t.Run("matching type returns the original value", func(t *testing.T) {
		recovered, ok := AsBall(ball)
		require.True(t, ok)
		require.Same(t, ball, recovered)
	})

	t.Run("mismatched type fails", func(t *testing.T) {
		// both expose a support map, downcasting still distinguishes them
		_, ok := AsBall(cuboid)
		require.False(t, ok)

		_, ok = AsCuboid(ball)
		require.False(t, ok)
	})

	t.Run("generic As", func(t *testing.T) {
		recovered, ok := As[*Cuboid](cuboid)
		require.True(t, ok)
		require.Same(t, cuboid, recovered)

		_, ok = As[*Capsule](cuboid)
		require.False(t, ok)
	})

	t.Run("round shapes are distinct from their inner shape", func(t *testing.T) {
		round := Rounded(cuboid, 0.1)

		_, ok := AsCuboid(round)
		require.False(t, ok)

		recovered, ok := AsRoundCuboid(round)
		require.True(t, ok)
		require.Same(t, round, recovered)

		_, ok = AsRoundTriangle(round)
		require.False(t, ok)
	})
}

func TestShape_TypeTags(t *testing.T) {
	seen := map[ShapeType]bool{}

	for _, shape := range allTestShapes() {
		require.False(t, seen[shape.ShapeType()], "duplicate tag %s", shape.ShapeType())
		seen[shape.ShapeType()] = true
	}

	require.Len(t, seen, 18)
}

func TestShape_FeatureNormalAtPoint(t *testing.T) {
	t.Run("triangle reports its plane normal", func(t *testing.T) {
		triangle := &Triangle{A: gm.VecZero, B: gm.VecX, C: gm.VecY}

		normal, ok := triangle.FeatureNormalAtPoint(FaceFeature(0), gm.VecZero)
		require.True(t, ok)
		requireVecInDelta(t, gm.VecZ, normal)
	})

	t.Run("half space reports its normal", func(t *testing.T) {
		halfSpace := NewHalfSpace(gm.Vec{Y: 3})

		normal, ok := halfSpace.FeatureNormalAtPoint(UnknownFeature, gm.VecZero)
		require.True(t, ok)
		requireVecInDelta(t, gm.VecY, normal)
	})

	t.Run("cuboid reports face normals", func(t *testing.T) {
		cuboid := &Cuboid{HalfExtents: gm.VecOne}

		normal, ok := cuboid.FeatureNormalAtPoint(FaceFeature(3), gm.VecZero)
		require.True(t, ok)
		requireVecInDelta(t, gm.VecY.Neg(), normal)

		_, ok = cuboid.FeatureNormalAtPoint(VertexFeature(0), gm.VecZero)
		require.False(t, ok)
	})

	t.Run("default is none", func(t *testing.T) {
		_, ok := (&Ball{Radius: 1}).FeatureNormalAtPoint(FaceFeature(0), gm.VecZero)
		require.False(t, ok)
	})
}

func requireVecInDelta(t *testing.T, expected, actual gm.Vec) {
	t.Helper()

	require.InDelta(t, expected.X, actual.X, 1e-9)
	require.InDelta(t, expected.Y, actual.Y, 1e-9)
	require.InDelta(t, expected.Z, actual.Z, 1e-9)
}

func requireMatInDelta(t *testing.T, expected, actual gm.Mat) {
	t.Helper()

	requireVecInDelta(t, expected.XAxis, actual.XAxis)
	requireVecInDelta(t, expected.YAxis, actual.YAxis)
	requireVecInDelta(t, expected.ZAxis, actual.ZAxis)
}
