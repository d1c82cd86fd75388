package collide

import "github.com/oliverbestmann/collide/gm"

// Triangle is a triangle with the three corners A, B and C.
type Triangle struct {
	shapeDefaults
	A, B, C gm.Vec
}

// Normal returns the unit normal of the triangle plane following the
// counter clockwise winding of A, B, C, or false if the triangle is
// degenerate.
func (t *Triangle) Normal() (gm.Vec, bool) {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).TryNormalized()
}

func (t *Triangle) ComputeLocalAabb() gm.Aabb {
	return gm.AabbOfPoints([]gm.Vec{t.A, t.B, t.C})
}

func (t *Triangle) ComputeAabb(pose gm.Iso) gm.Aabb {
	return gm.AabbOfPoints([]gm.Vec{
		pose.Transform(t.A),
		pose.Transform(t.B),
		pose.Transform(t.C),
	})
}

// MassProperties of a triangle are zero, a triangle has no volume.
func (t *Triangle) MassProperties(float64) MassProperties {
	return MassProperties{}
}

func (t *Triangle) ShapeType() ShapeType {
	return TypeTriangle
}

// CcdThickness is zero for triangles. This is a conservative placeholder,
// any non negative lower bound on the thickness would do.
func (t *Triangle) CcdThickness() float64 {
	return 0
}

func (t *Triangle) IsConvex() bool {
	return true
}

func (t *Triangle) AsSupportMap() (SupportMap, bool) {
	return t, true
}

func (t *Triangle) AsPolygonalFeatureMap() (PolygonalFeatureMap, float64, bool) {
	return t, 0, true
}

func (t *Triangle) FeatureNormalAtPoint(_ FeatureID, _ gm.Vec) (gm.Vec, bool) {
	// every feature of a triangle lies on its plane
	return t.Normal()
}

func (t *Triangle) LocalSupportPoint(dir gm.Vec) gm.Vec {
	best := t.A
	bestDot := t.A.Dot(dir)

	if dot := t.B.Dot(dir); dot > bestDot {
		best, bestDot = t.B, dot
	}
	if dot := t.C.Dot(dir); dot > bestDot {
		best = t.C
	}

	return best
}

func (t *Triangle) LocalSupportFeature(_ gm.Vec, out *PolygonalFeature) {
	out.Vertices[0] = t.A
	out.Vertices[1] = t.B
	out.Vertices[2] = t.C
	out.NumVertices = 3
	out.Feature = FaceFeature(0)
}
