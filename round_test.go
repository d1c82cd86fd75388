package collide

import (
	"testing"

	"github.com/oliverbestmann/collide/gm"
	"github.com/stretchr/testify/require"
)

func TestRoundShape_LoosenedAabb(t *testing.T) {
	cuboid := &Cuboid{HalfExtents: gm.Vec{X: 1, Y: 2, Z: 3}}
	round := Rounded(cuboid, 0.25)

	inner := cuboid.ComputeLocalAabb()
	outer := round.ComputeLocalAabb()

	requireVecInDelta(t, inner.Min.Sub(gm.VecSplat(0.25)), outer.Min)
	requireVecInDelta(t, inner.Max.Add(gm.VecSplat(0.25)), outer.Max)

	pose := gm.IdentityIso().Translate(gm.Vec{X: 7})
	posed := round.ComputeAabb(pose)
	requireVecInDelta(t, cuboid.ComputeAabb(pose).Min.Sub(gm.VecSplat(0.25)), posed.Min)
}

func TestRoundShape_CcdThicknessAddsTheBorderRadius(t *testing.T) {
	cylinder := &Cylinder{HalfHeight: 1, Radius: 0.5}
	round := Rounded(cylinder, 0.1)

	require.InDelta(t, cylinder.CcdThickness()+0.1, round.CcdThickness(), 1e-9)

	// a rounded triangle has thickness even though the sharp one has none
	triangle := &Triangle{A: gm.VecX, B: gm.VecY, C: gm.VecZ}
	require.Equal(t, 0.1, Rounded(triangle, 0.1).CcdThickness())
}

func TestRoundShape_TypeTagFollowsTheInnerShape(t *testing.T) {
	require.Equal(t, TypeRoundCuboid, Rounded(&Cuboid{HalfExtents: gm.VecOne}, 0.1).ShapeType())
	require.Equal(t, TypeRoundTriangle, Rounded(&Triangle{A: gm.VecX, B: gm.VecY, C: gm.VecZ}, 0.1).ShapeType())
	require.Equal(t, TypeRoundCylinder, Rounded(&Cylinder{HalfHeight: 1, Radius: 0.5}, 0.1).ShapeType())
	require.Equal(t, TypeRoundCone, Rounded(&Cone{HalfHeight: 1, Radius: 0.5}, 0.1).ShapeType())
	require.Equal(t, TypeRoundConvexPolyhedron, Rounded(testCube(1), 0.1).ShapeType())
}

func TestRoundShape_ZeroBorderRadiusBehavesLikeTheInnerShape(t *testing.T) {
	cuboid := &Cuboid{HalfExtents: gm.VecOne}
	round := Rounded(cuboid, 0)

	inner := cuboid.ComputeLocalAabb()
	outer := round.ComputeLocalAabb()
	requireVecInDelta(t, inner.Min, outer.Min)
	requireVecInDelta(t, inner.Max, outer.Max)

	requireVecInDelta(t, cuboid.LocalSupportPoint(gm.VecOne), round.LocalSupportPoint(gm.VecOne))
	require.Equal(t, cuboid.CcdThickness(), round.CcdThickness())
}

func TestRoundShape_RejectsNegativeBorderRadius(t *testing.T) {
	require.Panics(t, func() {
		Rounded(&Cuboid{HalfExtents: gm.VecOne}, -0.1)
	})
}
