package collide

import "github.com/oliverbestmann/collide/gm"

// Ball is a sphere of the given radius, centered at the origin.
type Ball struct {
	shapeDefaults
	Radius float64
}

func (b *Ball) ComputeLocalAabb() gm.Aabb {
	return gm.Aabb{
		Min: gm.VecSplat(-b.Radius),
		Max: gm.VecSplat(b.Radius),
	}
}

func (b *Ball) ComputeAabb(pose gm.Iso) gm.Aabb {
	// a ball is rotation invariant, only the translation matters
	return b.ComputeLocalAabb().Translate(pose.Translation)
}

func (b *Ball) MassProperties(density float64) MassProperties {
	return MassPropertiesOfBall(density, b.Radius)
}

func (b *Ball) ShapeType() ShapeType {
	return TypeBall
}

func (b *Ball) CcdThickness() float64 {
	return b.Radius
}

func (b *Ball) IsConvex() bool {
	return true
}

func (b *Ball) AsSupportMap() (SupportMap, bool) {
	return b, true
}

func (b *Ball) LocalSupportPoint(dir gm.Vec) gm.Vec {
	return dir.Normalized().Mul(b.Radius)
}
