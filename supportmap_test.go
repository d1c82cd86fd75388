package collide

import (
	"math"
	"testing"

	"github.com/oliverbestmann/collide/gm"
	"github.com/stretchr/testify/require"
)

func TestSupportMap_Ball(t *testing.T) {
	ball := &Ball{Radius: 2}

	requireVecInDelta(t, gm.Vec{X: 2}, ball.LocalSupportPoint(gm.Vec{X: 10}))

	// the support point always sits on the surface
	dir := gm.Vec{X: 1, Y: 2, Z: -3}
	require.InDelta(t, 2, ball.LocalSupportPoint(dir).Length(), 1e-9)
}

func TestSupportMap_Cuboid(t *testing.T) {
	cuboid := &Cuboid{HalfExtents: gm.Vec{X: 1, Y: 2, Z: 3}}

	requireVecInDelta(t, gm.Vec{X: 1, Y: -2, Z: 3}, cuboid.LocalSupportPoint(gm.Vec{X: 0.5, Y: -1, Z: 2}))

	// a zero component still picks a corner
	support := cuboid.LocalSupportPoint(gm.Vec{X: 1})
	require.Equal(t, 1.0, support.X)
}

func TestSupportMap_Segment(t *testing.T) {
	segment := &Segment{A: gm.Vec{X: -1}, B: gm.Vec{X: 1}}

	requireVecInDelta(t, segment.B, segment.LocalSupportPoint(gm.Vec{X: 1}))
	requireVecInDelta(t, segment.A, segment.LocalSupportPoint(gm.Vec{X: -1}))

	// ties keep the first endpoint
	requireVecInDelta(t, segment.A, segment.LocalSupportPoint(gm.Vec{Y: 1}))
}

func TestSupportMap_Capsule(t *testing.T) {
	capsule := CapsuleY(1, 0.5)

	requireVecInDelta(t, gm.Vec{Y: 1.5}, capsule.LocalSupportPoint(gm.Vec{Y: 3}))
	requireVecInDelta(t, gm.Vec{Y: -1.5}, capsule.LocalSupportPoint(gm.Vec{Y: -3}))

	// a sideways direction ties on the segment and keeps its first endpoint
	requireVecInDelta(t, gm.Vec{X: 0.5, Y: -1}, capsule.LocalSupportPoint(gm.Vec{X: 1}))
}

func TestSupportMap_Cylinder(t *testing.T) {
	cylinder := &Cylinder{HalfHeight: 1, Radius: 0.5}

	requireVecInDelta(t, gm.Vec{X: 0.5, Y: 1}, cylinder.LocalSupportPoint(gm.Vec{X: 2, Y: 0.1}))
	requireVecInDelta(t, gm.Vec{X: 0.5, Y: -1}, cylinder.LocalSupportPoint(gm.Vec{X: 2, Y: -0.1}))

	// a purely axial direction lands on a cap center
	requireVecInDelta(t, gm.Vec{Y: 1}, cylinder.LocalSupportPoint(gm.VecY))
}

func TestSupportMap_Cone(t *testing.T) {
	cone := &Cone{HalfHeight: 1, Radius: 0.5}

	requireVecInDelta(t, gm.Vec{Y: 1}, cone.LocalSupportPoint(gm.VecY))
	requireVecInDelta(t, gm.Vec{X: 0.5, Y: -1}, cone.LocalSupportPoint(gm.Vec{X: 1, Y: -0.2}))
}

func TestSupportMap_ConvexPolyhedron(t *testing.T) {
	cube := testCube(1)

	support := cube.LocalSupportPoint(gm.Vec{X: 1, Y: 1, Z: 1})
	requireVecInDelta(t, gm.VecOne, support)
}

func TestSupportMap_RoundShapeAddsTheBorderRadius(t *testing.T) {
	round := Rounded(&Cuboid{HalfExtents: gm.VecOne}, 0.25)

	requireVecInDelta(t, gm.Vec{X: 1.25, Y: 1, Z: 1}, round.LocalSupportPoint(gm.VecX))

	diag := gm.VecOne.Normalized()
	expected := gm.VecOne.Add(diag.Mul(0.25))
	requireVecInDelta(t, expected, round.LocalSupportPoint(gm.VecOne))
}

func TestSupportPointAt(t *testing.T) {
	ball := &Ball{Radius: 1}
	pose := gm.IdentityIso().Translate(gm.Vec{X: 10})

	requireVecInDelta(t, gm.Vec{X: 11}, SupportPointAt(ball, pose, gm.VecX))
	requireVecInDelta(t, gm.Vec{X: 9}, SupportPointAt(ball, pose, gm.VecX.Neg()))

	// a rotated pose transforms the query direction into the shape frame
	cuboid := &Cuboid{HalfExtents: gm.Vec{X: 2, Y: 1, Z: 1}}
	rotated := gm.IdentityIso().RotateZ(gm.Rad(math.Pi / 2))

	support := SupportPointAt(cuboid, rotated, gm.VecY)
	require.InDelta(t, 2, support.Y, 1e-9)
}
