package collide

import (
	"github.com/oliverbestmann/collide/gm"
)

// ShapeType is a tag identifying the concrete variant behind a Shape. It
// allows cheap branching and serialization, but it is not the authority for
// downcasting: use As and its named shortcuts for that.
type ShapeType uint8

const (
	TypeBall ShapeType = iota
	TypeCuboid
	TypeCapsule
	TypeSegment
	TypeTriangle
	TypeTriMesh
	TypePolyline
	TypeHalfSpace
	TypeHeightField
	TypeCompound
	TypeConvexPolyhedron
	TypeCylinder
	TypeCone
	TypeRoundCuboid
	TypeRoundTriangle
	TypeRoundCylinder
	TypeRoundCone
	TypeRoundConvexPolyhedron
)

func (t ShapeType) String() string {
	switch t {
	case TypeBall:
		return "Ball"
	case TypeCuboid:
		return "Cuboid"
	case TypeCapsule:
		return "Capsule"
	case TypeSegment:
		return "Segment"
	case TypeTriangle:
		return "Triangle"
	case TypeTriMesh:
		return "TriMesh"
	case TypePolyline:
		return "Polyline"
	case TypeHalfSpace:
		return "HalfSpace"
	case TypeHeightField:
		return "HeightField"
	case TypeCompound:
		return "Compound"
	case TypeConvexPolyhedron:
		return "ConvexPolyhedron"
	case TypeCylinder:
		return "Cylinder"
	case TypeCone:
		return "Cone"
	case TypeRoundCuboid:
		return "RoundCuboid"
	case TypeRoundTriangle:
		return "RoundTriangle"
	case TypeRoundCylinder:
		return "RoundCylinder"
	case TypeRoundCone:
		return "RoundCone"
	case TypeRoundConvexPolyhedron:
		return "RoundConvexPolyhedron"
	}

	return "Unknown"
}

// Shape is the capability interface implemented by every concrete shape
// variant. All operations are read only; a missing capability is reported
// through a false ok value, never through an error.
type Shape interface {
	// ComputeLocalAabb returns the axis aligned bounding box of the shape
	// in its own frame.
	ComputeLocalAabb() gm.Aabb

	// ComputeAabb returns the axis aligned bounding box of the shape
	// placed at the given pose.
	ComputeAabb(pose gm.Iso) gm.Aabb

	// MassProperties returns the mass, center of mass and inertia tensor of
	// the shape for the given uniform density. The density must be positive.
	MassProperties(density float64) MassProperties

	// ShapeType returns the tag of the concrete variant.
	ShapeType() ShapeType

	// CcdThickness returns a conservative, non negative lower bound on the
	// thickness of the shape, used by continuous collision detection to
	// avoid tunneling through thin shapes.
	CcdThickness() float64

	// IsConvex reports whether the shape is known to be convex. A false
	// result means "unknown", not "concave".
	IsConvex() bool

	// AsSupportMap returns the support mapping of the shape, if it has one.
	AsSupportMap() (SupportMap, bool)

	// AsCompositeShape returns the composite view of the shape, if it is an
	// aggregate of sub shapes.
	AsCompositeShape() (CompositeShape, bool)

	// AsPolygonalFeatureMap returns the polygonal feature map of the shape
	// together with the rounding margin to apply to its features, if the
	// shape has discrete polygonal features.
	AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool)

	// FeatureNormalAtPoint returns the surface normal of the shape at the
	// given point assumed to lie on the given feature, if the shape can
	// report one.
	FeatureNormalAtPoint(feature FeatureID, point gm.Vec) (gm.Vec, bool)
}

// shapeDefaults carries the default implementations of the optional parts
// of the Shape interface. Every concrete variant embeds it and overrides
// the capabilities it actually provides.
type shapeDefaults struct{}

func (shapeDefaults) IsConvex() bool {
	return false
}

func (shapeDefaults) AsSupportMap() (SupportMap, bool) {
	return nil, false
}

func (shapeDefaults) AsCompositeShape() (CompositeShape, bool) {
	return nil, false
}

func (shapeDefaults) AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool) {
	return nil, 0, false
}

func (shapeDefaults) FeatureNormalAtPoint(FeatureID, gm.Vec) (gm.Vec, bool) {
	return gm.Vec{}, false
}

// As converts the abstract shape to the concrete type T, if it is one.
// The conversion is based on the true runtime type of the shape, not on its
// ShapeType tag, so a *RoundCuboid is never converted to a *Cuboid.
func As[T Shape](shape Shape) (T, bool) {
	concrete, ok := shape.(T)
	return concrete, ok
}

// AsBall converts the abstract shape to a ball, if it is one.
func AsBall(shape Shape) (*Ball, bool) { return As[*Ball](shape) }

// AsCuboid converts the abstract shape to a cuboid, if it is one.
func AsCuboid(shape Shape) (*Cuboid, bool) { return As[*Cuboid](shape) }

// AsCapsule converts the abstract shape to a capsule, if it is one.
func AsCapsule(shape Shape) (*Capsule, bool) { return As[*Capsule](shape) }

// AsSegment converts the abstract shape to a segment, if it is one.
func AsSegment(shape Shape) (*Segment, bool) { return As[*Segment](shape) }

// AsTriangle converts the abstract shape to a triangle, if it is one.
func AsTriangle(shape Shape) (*Triangle, bool) { return As[*Triangle](shape) }

// AsTriMesh converts the abstract shape to a triangle mesh, if it is one.
func AsTriMesh(shape Shape) (*TriMesh, bool) { return As[*TriMesh](shape) }

// AsPolyline converts the abstract shape to a polyline, if it is one.
func AsPolyline(shape Shape) (*Polyline, bool) { return As[*Polyline](shape) }

// AsHalfSpace converts the abstract shape to a half space, if it is one.
func AsHalfSpace(shape Shape) (*HalfSpace, bool) { return As[*HalfSpace](shape) }

// AsHeightField converts the abstract shape to a heightfield, if it is one.
func AsHeightField(shape Shape) (*HeightField, bool) { return As[*HeightField](shape) }

// AsCompound converts the abstract shape to a compound, if it is one.
func AsCompound(shape Shape) (*Compound, bool) { return As[*Compound](shape) }

// AsConvexPolyhedron converts the abstract shape to a convex polyhedron, if it is one.
func AsConvexPolyhedron(shape Shape) (*ConvexPolyhedron, bool) { return As[*ConvexPolyhedron](shape) }

// AsCylinder converts the abstract shape to a cylinder, if it is one.
func AsCylinder(shape Shape) (*Cylinder, bool) { return As[*Cylinder](shape) }

// AsCone converts the abstract shape to a cone, if it is one.
func AsCone(shape Shape) (*Cone, bool) { return As[*Cone](shape) }

// AsRoundCuboid converts the abstract shape to a round cuboid, if it is one.
func AsRoundCuboid(shape Shape) (*RoundCuboid, bool) { return As[*RoundCuboid](shape) }

// AsRoundTriangle converts the abstract shape to a round triangle, if it is one.
func AsRoundTriangle(shape Shape) (*RoundTriangle, bool) { return As[*RoundTriangle](shape) }

// AsRoundCylinder converts the abstract shape to a round cylinder, if it is one.
func AsRoundCylinder(shape Shape) (*RoundCylinder, bool) { return As[*RoundCylinder](shape) }

// AsRoundCone converts the abstract shape to a round cone, if it is one.
func AsRoundCone(shape Shape) (*RoundCone, bool) { return As[*RoundCone](shape) }

// AsRoundConvexPolyhedron converts the abstract shape to a round convex
// polyhedron, if it is one.
func AsRoundConvexPolyhedron(shape Shape) (*RoundConvexPolyhedron, bool) {
	return As[*RoundConvexPolyhedron](shape)
}
