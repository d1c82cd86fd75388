package collide

import (
	"github.com/oliverbestmann/collide/gm"
	"github.com/oliverbestmann/collide/internal/assert"
)

// Roundable is the closed set of shapes that a RoundShape can wrap: convex
// shapes with both a support mapping and a polygonal feature map.
type Roundable interface {
	Shape
	SupportMap
	PolygonalFeatureMap

	// roundTag returns the ShapeType of the rounded variant of the shape.
	roundTag() ShapeType
}

func (*Cuboid) roundTag() ShapeType           { return TypeRoundCuboid }
func (*Triangle) roundTag() ShapeType         { return TypeRoundTriangle }
func (*Cylinder) roundTag() ShapeType         { return TypeRoundCylinder }
func (*Cone) roundTag() ShapeType             { return TypeRoundCone }
func (*ConvexPolyhedron) roundTag() ShapeType { return TypeRoundConvexPolyhedron }

// RoundShape is the Minkowski sum of an inner shape with a ball of radius
// BorderRadius: the inner shape inflated by the border radius in every
// direction. All derived quantities delegate to the inner shape.
type RoundShape[S Roundable] struct {
	shapeDefaults
	InnerShape   S
	BorderRadius float64
}

type RoundCuboid = RoundShape[*Cuboid]
type RoundTriangle = RoundShape[*Triangle]
type RoundCylinder = RoundShape[*Cylinder]
type RoundCone = RoundShape[*Cone]
type RoundConvexPolyhedron = RoundShape[*ConvexPolyhedron]

// Rounded wraps the inner shape into a RoundShape with the given border
// radius. The radius must not be negative.
func Rounded[S Roundable](inner S, borderRadius float64) *RoundShape[S] {
	assert.NonNegative(borderRadius, "border radius")

	return &RoundShape[S]{
		InnerShape:   inner,
		BorderRadius: borderRadius,
	}
}

func (rs *RoundShape[S]) ComputeLocalAabb() gm.Aabb {
	return rs.InnerShape.ComputeLocalAabb().Loosened(rs.BorderRadius)
}

func (rs *RoundShape[S]) ComputeAabb(pose gm.Iso) gm.Aabb {
	return rs.InnerShape.ComputeAabb(pose).Loosened(rs.BorderRadius)
}

// MassProperties of a round shape are the mass properties of the inner
// shape, the contribution of the border is ignored.
func (rs *RoundShape[S]) MassProperties(density float64) MassProperties {
	return rs.InnerShape.MassProperties(density)
}

func (rs *RoundShape[S]) ShapeType() ShapeType {
	return rs.InnerShape.roundTag()
}

func (rs *RoundShape[S]) CcdThickness() float64 {
	return rs.InnerShape.CcdThickness() + rs.BorderRadius
}

func (rs *RoundShape[S]) IsConvex() bool {
	return rs.InnerShape.IsConvex()
}

func (rs *RoundShape[S]) AsSupportMap() (SupportMap, bool) {
	return rs, true
}

// AsPolygonalFeatureMap exposes the features of the inner shape with the
// border radius as the rounding margin.
func (rs *RoundShape[S]) AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool) {
	return rs.InnerShape, rs.BorderRadius, true
}

func (rs *RoundShape[S]) LocalSupportPoint(dir gm.Vec) gm.Vec {
	inner := rs.InnerShape.LocalSupportPoint(dir)
	return inner.Add(dir.Normalized().Mul(rs.BorderRadius))
}
