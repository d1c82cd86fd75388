package collide

import (
	"math"

	"github.com/oliverbestmann/collide/gm"
	"github.com/oliverbestmann/collide/internal/assert"
)

// MassProperties bundles the mass, center of mass and inertia tensor of a
// shape at a given uniform density, all in the shape's local frame. The
// inertia tensor is taken about the center of mass.
//
// The zero value is the additive identity used for shapes without volume.
type MassProperties struct {
	Mass     float64
	LocalCom gm.Vec
	Inertia  gm.Mat
}

// MassPropertiesOfBall returns the mass properties of a solid ball.
func MassPropertiesOfBall(density, radius float64) MassProperties {
	assert.Positive(density, "density")

	mass := density * 4.0 / 3.0 * math.Pi * radius * radius * radius
	angular := 2.0 / 5.0 * mass * radius * radius

	return MassProperties{
		Mass:    mass,
		Inertia: gm.ScaleMat(gm.VecSplat(angular)),
	}
}

// MassPropertiesOfCuboid returns the mass properties of a solid box with
// the given half extents.
func MassPropertiesOfCuboid(density float64, halfExtents gm.Vec) MassProperties {
	assert.Positive(density, "density")

	mass := density * 8 * halfExtents.X * halfExtents.Y * halfExtents.Z
	sq := halfExtents.MulEach(halfExtents)

	return MassProperties{
		Mass: mass,
		Inertia: gm.ScaleMat(gm.Vec{
			X: mass / 3 * (sq.Y + sq.Z),
			Y: mass / 3 * (sq.X + sq.Z),
			Z: mass / 3 * (sq.X + sq.Y),
		}),
	}
}

// MassPropertiesOfCylinder returns the mass properties of a solid cylinder
// aligned with the y axis.
func MassPropertiesOfCylinder(density, halfHeight, radius float64) MassProperties {
	assert.Positive(density, "density")

	mass := density * math.Pi * radius * radius * 2 * halfHeight
	axial := mass * radius * radius / 2
	transverse := mass * (3*radius*radius + 4*halfHeight*halfHeight) / 12

	return MassProperties{
		Mass:    mass,
		Inertia: gm.ScaleMat(gm.Vec{X: transverse, Y: axial, Z: transverse}),
	}
}

// MassPropertiesOfCone returns the mass properties of a solid cone aligned
// with the y axis, its apex at +halfHeight and its base at -halfHeight.
func MassPropertiesOfCone(density, halfHeight, radius float64) MassProperties {
	assert.Positive(density, "density")

	mass := density * math.Pi * radius * radius * 2 * halfHeight / 3
	axial := 3.0 / 10.0 * mass * radius * radius
	transverse := 3.0 / 20.0 * mass * (radius*radius + halfHeight*halfHeight)

	return MassProperties{
		Mass: mass,
		// the centroid sits a quarter of the height above the base
		LocalCom: gm.Vec{Y: -halfHeight / 2},
		Inertia:  gm.ScaleMat(gm.Vec{X: transverse, Y: axial, Z: transverse}),
	}
}

// MassPropertiesOfCapsule returns the mass properties of a solid capsule,
// the union of a cylinder from a to b and two half balls capping it.
func MassPropertiesOfCapsule(density float64, a, b gm.Vec, radius float64) MassProperties {
	assert.Positive(density, "density")

	com := a.Add(b).Mul(0.5)
	halfHeight := b.Sub(a).Length() / 2

	if halfHeight == 0 {
		props := MassPropertiesOfBall(density, radius)
		props.LocalCom = com
		return props
	}

	cylinderMass := density * math.Pi * radius * radius * 2 * halfHeight
	capMass := density * 2.0 / 3.0 * math.Pi * radius * radius * radius

	axial := cylinderMass*radius*radius/2 +
		2*capMass*2.0/5.0*radius*radius
	transverse := cylinderMass*(3*radius*radius+4*halfHeight*halfHeight)/12 +
		2*capMass*(2.0/5.0*radius*radius+halfHeight*halfHeight+3.0/4.0*halfHeight*radius)

	// inertia about the capsule's own axis frame, rotated onto the actual
	// segment direction
	local := gm.ScaleMat(gm.Vec{X: transverse, Y: axial, Z: transverse})
	rotation := gm.RotationBetween(gm.VecY, b.Sub(a))

	return MassProperties{
		Mass:     cylinderMass + 2*capMass,
		LocalCom: com,
		Inertia:  rotation.Mul(local).Mul(rotation.Transposed()),
	}
}

// canonical covariance of the unit tetrahedron (0, e1, e2, e3)
var tetCovariance = gm.Mat{
	XAxis: gm.Vec{X: 1.0 / 60.0, Y: 1.0 / 120.0, Z: 1.0 / 120.0},
	YAxis: gm.Vec{X: 1.0 / 120.0, Y: 1.0 / 60.0, Z: 1.0 / 120.0},
	ZAxis: gm.Vec{X: 1.0 / 120.0, Y: 1.0 / 120.0, Z: 1.0 / 60.0},
}

// MassPropertiesOfConvexPolyhedron returns the mass properties of a solid
// convex polyhedron given by its vertices and its faces as lists of vertex
// indices with outward, counter clockwise winding.
//
// Each face is triangulated into a fan and every triangle contributes the
// signed tetrahedron it spans with the origin; the second moments are
// accumulated as a covariance matrix and converted to the inertia tensor
// at the end.
func MassPropertiesOfConvexPolyhedron(density float64, points []gm.Vec, faces [][]uint32) MassProperties {
	assert.Positive(density, "density")

	var covariance gm.Mat
	var volume float64
	var weightedCom gm.Vec

	for _, face := range faces {
		for k := 1; k+1 < len(face); k++ {
			p0 := points[face[0]]
			p1 := points[face[k]]
			p2 := points[face[k+1]]

			// columns of the tetrahedron basis
			basis := gm.Mat{
				XAxis: gm.Vec{X: p0.X, Y: p1.X, Z: p2.X},
				YAxis: gm.Vec{X: p0.Y, Y: p1.Y, Z: p2.Y},
				ZAxis: gm.Vec{X: p0.Z, Y: p1.Z, Z: p2.Z},
			}

			det := basis.Determinant()
			covariance = covariance.Add(basis.Mul(tetCovariance).Mul(basis.Transposed()).MulScalar(det))

			tetVolume := det / 6
			volume += tetVolume
			weightedCom = weightedCom.Add(p0.Add(p1).Add(p2).Mul(tetVolume / 4))
		}
	}

	if volume == 0 {
		return MassProperties{}
	}

	com := weightedCom.Mul(1 / volume)
	covariance = covariance.Sub(gm.OuterProduct(com, com).MulScalar(volume))
	inertia := gm.IdentityMat().MulScalar(covariance.Trace()).Sub(covariance).MulScalar(density)

	return MassProperties{
		Mass:     density * volume,
		LocalCom: com,
		Inertia:  inertia,
	}
}

// MassPropertiesOfCompound returns the combined mass properties of posed
// child shapes at the given density.
func MassPropertiesOfCompound(density float64, children []ChildShape) MassProperties {
	var sum MassProperties

	for _, child := range children {
		sum = sum.Add(child.Shape.MassProperties(density).Transformed(child.Pose))
	}

	return sum
}

// Add combines two mass properties into the mass properties of the union,
// with the parallel axis correction applied to both inertia tensors.
func (mp MassProperties) Add(other MassProperties) MassProperties {
	if mp.Mass == 0 {
		return other
	}
	if other.Mass == 0 {
		return mp
	}

	mass := mp.Mass + other.Mass
	com := mp.LocalCom.Mul(mp.Mass).Add(other.LocalCom.Mul(other.Mass)).Mul(1 / mass)

	inertia := mp.Inertia.
		Add(shiftInertia(mp.Mass, mp.LocalCom.Sub(com))).
		Add(other.Inertia).
		Add(shiftInertia(other.Mass, other.LocalCom.Sub(com)))

	return MassProperties{
		Mass:     mass,
		LocalCom: com,
		Inertia:  inertia,
	}
}

// Transformed returns the mass properties expressed in the frame the given
// pose maps into. The inertia tensor, taken about the center of mass, only
// rotates.
func (mp MassProperties) Transformed(pose gm.Iso) MassProperties {
	rotation := pose.Rotation

	return MassProperties{
		Mass:     mp.Mass,
		LocalCom: pose.Transform(mp.LocalCom),
		Inertia:  rotation.Mul(mp.Inertia).Mul(rotation.Transposed()),
	}
}

// shiftInertia returns the parallel axis term for moving an inertia tensor
// taken about the center of mass by the given offset.
func shiftInertia(mass float64, offset gm.Vec) gm.Mat {
	return gm.IdentityMat().
		MulScalar(offset.LengthSqr()).
		Sub(gm.OuterProduct(offset, offset)).
		MulScalar(mass)
}
