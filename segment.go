package collide

import "github.com/oliverbestmann/collide/gm"

// Segment is a straight line segment between the two points A and B.
type Segment struct {
	shapeDefaults
	A, B gm.Vec
}

func (s *Segment) Length() float64 {
	return s.B.Sub(s.A).Length()
}

// Direction returns the normalized direction from A to B, or false if the
// segment is degenerate.
func (s *Segment) Direction() (gm.Vec, bool) {
	return s.B.Sub(s.A).TryNormalized()
}

func (s *Segment) ComputeLocalAabb() gm.Aabb {
	return gm.AabbWithPoints(s.A, s.B)
}

func (s *Segment) ComputeAabb(pose gm.Iso) gm.Aabb {
	return gm.AabbWithPoints(pose.Transform(s.A), pose.Transform(s.B))
}

// MassProperties of a segment are zero, a segment has no volume.
func (s *Segment) MassProperties(float64) MassProperties {
	return MassProperties{}
}

func (s *Segment) ShapeType() ShapeType {
	return TypeSegment
}

// CcdThickness is zero for segments. This is a conservative placeholder,
// any non negative lower bound on the thickness would do.
func (s *Segment) CcdThickness() float64 {
	return 0
}

func (s *Segment) IsConvex() bool {
	return true
}

func (s *Segment) AsSupportMap() (SupportMap, bool) {
	return s, true
}

func (s *Segment) AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool) {
	return s, 0, true
}

func (s *Segment) LocalSupportPoint(dir gm.Vec) gm.Vec {
	if s.A.Dot(dir) >= s.B.Dot(dir) {
		return s.A
	}

	return s.B
}

func (s *Segment) LocalSupportFeature(_ gm.Vec, out *PolygonalFeature) {
	out.Vertices[0] = s.A
	out.Vertices[1] = s.B
	out.NumVertices = 2
	out.Feature = EdgeFeature(0)
}
