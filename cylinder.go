package collide

import (
	"math"

	"github.com/oliverbestmann/collide/gm"
)

// Cylinder is a cylinder aligned with the y axis, centered at the origin.
type Cylinder struct {
	shapeDefaults
	HalfHeight float64
	Radius     float64
}

func (c *Cylinder) ComputeLocalAabb() gm.Aabb {
	return gm.Aabb{
		Min: gm.Vec{X: -c.Radius, Y: -c.HalfHeight, Z: -c.Radius},
		Max: gm.Vec{X: c.Radius, Y: c.HalfHeight, Z: c.Radius},
	}
}

func (c *Cylinder) ComputeAabb(pose gm.Iso) gm.Aabb {
	return c.ComputeLocalAabb().TransformedBy(pose)
}

func (c *Cylinder) MassProperties(density float64) MassProperties {
	return MassPropertiesOfCylinder(density, c.HalfHeight, c.Radius)
}

func (c *Cylinder) ShapeType() ShapeType {
	return TypeCylinder
}

func (c *Cylinder) CcdThickness() float64 {
	return c.Radius
}

func (c *Cylinder) IsConvex() bool {
	return true
}

func (c *Cylinder) AsSupportMap() (SupportMap, bool) {
	return c, true
}

func (c *Cylinder) AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool) {
	return c, 0, true
}

func (c *Cylinder) LocalSupportPoint(dir gm.Vec) gm.Vec {
	support := gm.Vec{Y: math.Copysign(c.HalfHeight, dir.Y)}

	if radial, ok := (gm.Vec{X: dir.X, Z: dir.Z}).TryNormalized(); ok {
		support.X = radial.X * c.Radius
		support.Z = radial.Z * c.Radius
	}

	return support
}

// LocalSupportFeature approximates the curved boundary with discrete
// features: one of the two cap faces, sampled by four rim points, or a
// lateral edge between the rims. Face 0 is the +y cap, face 1 the -y cap
// and edge 2 the lateral boundary.
func (c *Cylinder) LocalSupportFeature(dir gm.Vec, out *PolygonalFeature) {
	radialLen := math.Hypot(dir.X, dir.Z)

	if math.Abs(dir.Y) > radialLen {
		cylinderCapFeature(c.HalfHeight, c.Radius, dir.Y > 0, out)
		return
	}

	radial := gm.Vec{X: dir.X / radialLen, Z: dir.Z / radialLen}.Mul(c.Radius)
	out.Vertices[0] = gm.Vec{X: radial.X, Y: -c.HalfHeight, Z: radial.Z}
	out.Vertices[1] = gm.Vec{X: radial.X, Y: c.HalfHeight, Z: radial.Z}
	out.NumVertices = 2
	out.Feature = EdgeFeature(2)
}

// cylinderCapFeature writes the cap face of a y axis aligned cylinder or
// cone rim at the given height, wound counter clockwise seen from outside.
func cylinderCapFeature(halfHeight, radius float64, top bool, out *PolygonalFeature) {
	y := halfHeight
	z := radius
	index := uint32(0)

	if !top {
		y = -halfHeight
		z = -radius
		index = 1
	}

	out.Vertices[0] = gm.Vec{X: radius, Y: y}
	out.Vertices[1] = gm.Vec{Y: y, Z: -z}
	out.Vertices[2] = gm.Vec{X: -radius, Y: y}
	out.Vertices[3] = gm.Vec{Y: y, Z: z}
	out.NumVertices = 4
	out.Feature = FaceFeature(index)
}
