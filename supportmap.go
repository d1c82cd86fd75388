package collide

import "github.com/oliverbestmann/collide/gm"

// SupportMap is implemented by convex shapes that can report the point of
// the shape farthest along a given direction in constant or near constant
// time. It is the primitive driving GJK style distance and intersection
// algorithms.
type SupportMap interface {
	// LocalSupportPoint returns the point of the shape with the largest dot
	// product with dir, in the local frame of the shape. The direction must
	// be finite and non zero; it does not need to be normalized.
	LocalSupportPoint(dir gm.Vec) gm.Vec
}

// SupportPointAt returns the world space support point of the shape placed
// at the given pose.
func SupportPointAt(sm SupportMap, pose gm.Iso, dir gm.Vec) gm.Vec {
	localDir := pose.InverseTransformVec(dir)
	return pose.Transform(sm.LocalSupportPoint(localDir))
}
