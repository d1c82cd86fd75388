package gm

import "fmt"

// Aabb is an axis aligned bounding box described by the corner with the
// minimum coordinates and the corner with the maximum coordinates.
type Aabb struct {
	Min, Max Vec
}

func AabbWithPoints(a, b Vec) Aabb {
	return Aabb{
		Min: a.Min(b),
		Max: a.Max(b),
	}
}

func AabbWithCenterAndSize(center, size Vec) Aabb {
	half := size.Mul(0.5)
	return Aabb{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// AabbOfPoints returns the tightest Aabb containing all the given points.
// The slice must not be empty.
func AabbOfPoints(points []Vec) Aabb {
	aabb := Aabb{Min: points[0], Max: points[0]}

	for _, point := range points[1:] {
		aabb.Min = aabb.Min.Min(point)
		aabb.Max = aabb.Max.Max(point)
	}

	return aabb
}

func (r Aabb) Center() Vec {
	return r.Min.Add(r.Max).Mul(0.5)
}

func (r Aabb) Size() Vec {
	return r.Max.Sub(r.Min)
}

func (r Aabb) HalfExtents() Vec {
	return r.Size().Mul(0.5)
}

func (r Aabb) Translate(offset Vec) Aabb {
	return Aabb{
		Min: r.Min.Add(offset),
		Max: r.Max.Add(offset),
	}
}

func (r Aabb) Contains(p Vec) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y &&
		r.Min.Z <= p.Z && p.Z <= r.Max.Z
}

func (r Aabb) ContainsAabb(other Aabb) bool {
	return r.Contains(other.Min) && r.Contains(other.Max)
}

func (r Aabb) Intersects(other Aabb) bool {
	return r.Min.X <= other.Max.X && other.Min.X <= r.Max.X &&
		r.Min.Y <= other.Max.Y && other.Min.Y <= r.Max.Y &&
		r.Min.Z <= other.Max.Z && other.Min.Z <= r.Max.Z
}

// Merged returns the smallest Aabb containing both r and other.
func (r Aabb) Merged(other Aabb) Aabb {
	return Aabb{
		Min: r.Min.Min(other.Min),
		Max: r.Max.Max(other.Max),
	}
}

// Loosened returns the Aabb grown by the given margin in every direction.
func (r Aabb) Loosened(margin float64) Aabb {
	m := VecSplat(margin)
	return Aabb{
		Min: r.Min.Sub(m),
		Max: r.Max.Add(m),
	}
}

// TransformedBy returns the tightest Aabb containing this Aabb transformed
// by the given isometry. The extents are mapped through the element wise
// absolute value of the rotation, which is equivalent to transforming all
// eight corners.
func (r Aabb) TransformedBy(iso Iso) Aabb {
	center := iso.Transform(r.Center())
	halfExtents := iso.Rotation.Abs().Transform(r.HalfExtents())

	return Aabb{
		Min: center.Sub(halfExtents),
		Max: center.Add(halfExtents),
	}
}

func (r Aabb) String() string {
	return fmt.Sprintf("aabb(min=%s, max=%s)", r.Min, r.Max)
}
