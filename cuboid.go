package collide

import (
	"math"

	"github.com/oliverbestmann/collide/gm"
)

// Cuboid is an axis aligned box centered at the origin, described by its
// half extents along each axis.
type Cuboid struct {
	shapeDefaults
	HalfExtents gm.Vec
}

func (c *Cuboid) ComputeLocalAabb() gm.Aabb {
	return gm.Aabb{
		Min: c.HalfExtents.Neg(),
		Max: c.HalfExtents,
	}
}

func (c *Cuboid) ComputeAabb(pose gm.Iso) gm.Aabb {
	return c.ComputeLocalAabb().TransformedBy(pose)
}

func (c *Cuboid) MassProperties(density float64) MassProperties {
	return MassPropertiesOfCuboid(density, c.HalfExtents)
}

func (c *Cuboid) ShapeType() ShapeType {
	return TypeCuboid
}

func (c *Cuboid) CcdThickness() float64 {
	return c.HalfExtents.MinComponent()
}

func (c *Cuboid) IsConvex() bool {
	return true
}

func (c *Cuboid) AsSupportMap() (SupportMap, bool) {
	return c, true
}

func (c *Cuboid) AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool) {
	return c, 0, true
}

func (c *Cuboid) LocalSupportPoint(dir gm.Vec) gm.Vec {
	return gm.Vec{
		X: math.Copysign(c.HalfExtents.X, dir.X),
		Y: math.Copysign(c.HalfExtents.Y, dir.Y),
		Z: math.Copysign(c.HalfExtents.Z, dir.Z),
	}
}

// LocalSupportFeature selects the face of the box whose normal is most
// aligned with dir. Face indices are 2*axis for the positive and 2*axis+1
// for the negative face of each axis.
func (c *Cuboid) LocalSupportFeature(dir gm.Vec, out *PolygonalFeature) {
	abs := dir.Abs()

	axis := 0
	sign := math.Copysign(1, dir.X)
	var normal, u, v gm.Vec

	switch {
	case abs.X >= abs.Y && abs.X >= abs.Z:
		normal, u, v = gm.VecX, gm.VecY, gm.VecZ.Mul(sign)
	case abs.Y >= abs.Z:
		axis, sign = 1, math.Copysign(1, dir.Y)
		normal, u, v = gm.VecY, gm.VecZ, gm.VecX.Mul(sign)
	default:
		axis, sign = 2, math.Copysign(1, dir.Z)
		normal, u, v = gm.VecZ, gm.VecX, gm.VecY.Mul(sign)
	}

	// u cross v equals the outward normal, so the corners below wind
	// counter clockwise seen from outside
	center := normal.Mul(sign).MulEach(c.HalfExtents)
	du := u.MulEach(c.HalfExtents)
	dv := v.MulEach(c.HalfExtents)

	out.Vertices[0] = center.Sub(du).Sub(dv)
	out.Vertices[1] = center.Add(du).Sub(dv)
	out.Vertices[2] = center.Add(du).Add(dv)
	out.Vertices[3] = center.Sub(du).Add(dv)
	out.NumVertices = 4

	faceIndex := uint32(2 * axis)
	if sign < 0 {
		faceIndex++
	}
	out.Feature = FaceFeature(faceIndex)
}

func (c *Cuboid) FeatureNormalAtPoint(feature FeatureID, _ gm.Vec) (gm.Vec, bool) {
	if feature.Kind != FeatureFace || feature.Index >= 6 {
		return gm.Vec{}, false
	}

	sign := 1.0
	if feature.Index%2 == 1 {
		sign = -1
	}

	switch feature.Index / 2 {
	case 0:
		return gm.VecX.Mul(sign), true
	case 1:
		return gm.VecY.Mul(sign), true
	default:
		return gm.VecZ.Mul(sign), true
	}
}
