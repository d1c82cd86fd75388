package collide

import (
	"github.com/oliverbestmann/collide/gm"
	"github.com/oliverbestmann/collide/internal/assert"
)

// Capsule is the volume spanned by a ball of the given radius sweeping
// along the inner segment.
type Capsule struct {
	shapeDefaults
	Segment Segment
	Radius  float64
}

// NewCapsule returns the capsule around the segment from a to b with the
// given radius.
func NewCapsule(a, b gm.Vec, radius float64) *Capsule {
	assert.Positive(radius, "capsule radius")

	return &Capsule{
		Segment: Segment{A: a, B: b},
		Radius:  radius,
	}
}

// CapsuleX returns a capsule centered at the origin and aligned with the x axis.
func CapsuleX(halfHeight, radius float64) *Capsule {
	axis := gm.VecX.Mul(halfHeight)
	return NewCapsule(axis.Neg(), axis, radius)
}

// CapsuleY returns a capsule centered at the origin and aligned with the y axis.
func CapsuleY(halfHeight, radius float64) *Capsule {
	axis := gm.VecY.Mul(halfHeight)
	return NewCapsule(axis.Neg(), axis, radius)
}

// CapsuleZ returns a capsule centered at the origin and aligned with the z axis.
func CapsuleZ(halfHeight, radius float64) *Capsule {
	axis := gm.VecZ.Mul(halfHeight)
	return NewCapsule(axis.Neg(), axis, radius)
}

func (c *Capsule) ComputeLocalAabb() gm.Aabb {
	return c.Segment.ComputeLocalAabb().Loosened(c.Radius)
}

func (c *Capsule) ComputeAabb(pose gm.Iso) gm.Aabb {
	return c.Segment.ComputeAabb(pose).Loosened(c.Radius)
}

func (c *Capsule) MassProperties(density float64) MassProperties {
	return MassPropertiesOfCapsule(density, c.Segment.A, c.Segment.B, c.Radius)
}

func (c *Capsule) ShapeType() ShapeType {
	return TypeCapsule
}

func (c *Capsule) CcdThickness() float64 {
	return c.Radius
}

func (c *Capsule) IsConvex() bool {
	return true
}

func (c *Capsule) AsSupportMap() (SupportMap, bool) {
	return c, true
}

// AsPolygonalFeatureMap exposes the features of the inner segment with the
// capsule radius as the rounding margin.
func (c *Capsule) AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool) {
	return &c.Segment, c.Radius, true
}

func (c *Capsule) LocalSupportPoint(dir gm.Vec) gm.Vec {
	return c.Segment.LocalSupportPoint(dir).Add(dir.Normalized().Mul(c.Radius))
}
