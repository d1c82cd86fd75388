package collide

import (
	"math"

	"github.com/oliverbestmann/collide/gm"
)

// Cone is a cone aligned with the y axis, centered at the origin, with its
// apex at +HalfHeight and its circular base at -HalfHeight.
type Cone struct {
	shapeDefaults
	HalfHeight float64
	Radius     float64
}

func (c *Cone) ComputeLocalAabb() gm.Aabb {
	return gm.Aabb{
		Min: gm.Vec{X: -c.Radius, Y: -c.HalfHeight, Z: -c.Radius},
		Max: gm.Vec{X: c.Radius, Y: c.HalfHeight, Z: c.Radius},
	}
}

func (c *Cone) ComputeAabb(pose gm.Iso) gm.Aabb {
	return c.ComputeLocalAabb().TransformedBy(pose)
}

func (c *Cone) MassProperties(density float64) MassProperties {
	return MassPropertiesOfCone(density, c.HalfHeight, c.Radius)
}

func (c *Cone) ShapeType() ShapeType {
	return TypeCone
}

func (c *Cone) CcdThickness() float64 {
	return c.Radius
}

func (c *Cone) IsConvex() bool {
	return true
}

func (c *Cone) AsSupportMap() (SupportMap, bool) {
	return c, true
}

func (c *Cone) AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool) {
	return c, 0, true
}

func (c *Cone) LocalSupportPoint(dir gm.Vec) gm.Vec {
	apex := gm.Vec{Y: c.HalfHeight}

	base := gm.Vec{Y: -c.HalfHeight}
	if radial, ok := (gm.Vec{X: dir.X, Z: dir.Z}).TryNormalized(); ok {
		base.X = radial.X * c.Radius
		base.Z = radial.Z * c.Radius
	}

	if apex.Dot(dir) >= base.Dot(dir) {
		return apex
	}

	return base
}

// LocalSupportFeature approximates the cone boundary with discrete
// features: the base face sampled by four rim points (face 1, matching the
// cylinder cap numbering), a lateral edge from the apex to the rim
// (edge 2), or the apex vertex.
func (c *Cone) LocalSupportFeature(dir gm.Vec, out *PolygonalFeature) {
	radialLen := math.Hypot(dir.X, dir.Z)

	if -dir.Y > radialLen {
		cylinderCapFeature(c.HalfHeight, c.Radius, false, out)
		return
	}

	apex := gm.Vec{Y: c.HalfHeight}

	if radialLen == 0 {
		out.Vertices[0] = apex
		out.NumVertices = 1
		out.Feature = VertexFeature(0)
		return
	}

	radial := gm.Vec{X: dir.X / radialLen, Z: dir.Z / radialLen}.Mul(c.Radius)
	out.Vertices[0] = gm.Vec{X: radial.X, Y: -c.HalfHeight, Z: radial.Z}
	out.Vertices[1] = apex
	out.NumVertices = 2
	out.Feature = EdgeFeature(2)
}
