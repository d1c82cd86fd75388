package gm

import "fmt"

// Iso represents a rigid isometry, the combination of a rotation followed
// by a translation. It consists of a Rotation matrix and a Translation
// vector. Unlike a general affine transformation it never scales or shears.
//
// Use IdentityIso to build a new identity transformation.
type Iso struct {
	Rotation    Mat
	Translation Vec
}

// IdentityIso returns the identity transformation.
func IdentityIso() Iso {
	return Iso{
		Rotation: IdentityMat(),
	}
}

// IsoOf returns the isometry built from the given rotation and translation.
// The rotation matrix must be orthonormal.
func IsoOf(rotation Mat, translation Vec) Iso {
	return Iso{
		Rotation:    rotation,
		Translation: translation,
	}
}

func (i Iso) RotateX(angle Rad) Iso {
	return i.Mul(Iso{Rotation: RotationX(angle)})
}

func (i Iso) RotateY(angle Rad) Iso {
	return i.Mul(Iso{Rotation: RotationY(angle)})
}

func (i Iso) RotateZ(angle Rad) Iso {
	return i.Mul(Iso{Rotation: RotationZ(angle)})
}

func (i Iso) Translate(translate Vec) Iso {
	return i.Mul(Iso{Rotation: IdentityMat(), Translation: translate})
}

// Transform applies the isometry to the given point and returns
// the transformed point.
func (i Iso) Transform(point Vec) Vec {
	return i.Rotation.Transform(point).Add(i.Translation)
}

// TransformVec applies the transform to a vector. This is different from
// transforming a point in that it will not apply the translation component
// of the isometry. The vector will only be rotated.
func (i Iso) TransformVec(vec Vec) Vec {
	return i.Rotation.Transform(vec)
}

// InverseTransform applies the inverse of the isometry to the given point.
func (i Iso) InverseTransform(point Vec) Vec {
	return i.Rotation.Transposed().Transform(point.Sub(i.Translation))
}

// InverseTransformVec applies the inverse rotation to the given vector.
func (i Iso) InverseTransformVec(vec Vec) Vec {
	return i.Rotation.Transposed().Transform(vec)
}

// Mul multiplies the isometry with another isometry.
// The effect of the resulting transformation is the same as transforming a
// point first by other and then by i.
func (i Iso) Mul(other Iso) Iso {
	return Iso{
		Rotation:    i.Rotation.Mul(other.Rotation),
		Translation: i.Rotation.Transform(other.Translation).Add(i.Translation),
	}
}

// Inverse returns the inverse of the isometry. The rotation is orthonormal,
// so the inverse always exists and is just the transposed rotation.
func (i Iso) Inverse() Iso {
	rotation := i.Rotation.Transposed()
	return Iso{
		Rotation:    rotation,
		Translation: rotation.Transform(i.Translation).Neg(),
	}
}

func (i Iso) String() string {
	return fmt.Sprintf("iso(rotation=%v, translation=%s)", i.Rotation, i.Translation)
}
