package gm

import (
	"fmt"
	"math"
)

type Scalar interface {
	float32 | float64
}

type Vec32 = VecType[float32]
type Vec64 = VecType[float64]

type Vec = Vec64

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1, Z: 1}

var VecX = Vec{X: 1}
var VecY = Vec{Y: 1}
var VecZ = Vec{Z: 1}

func VecOf[S Scalar](x, y, z S) VecType[S] {
	return VecType[S]{X: x, Y: y, Z: z}
}

// VecSplat returns a vector with all three components set to value.
func VecSplat[S Scalar](value S) VecType[S] {
	return VecType[S]{X: value, Y: value, Z: value}
}

type VecType[S Scalar] struct {
	X, Y, Z S
}

func (v VecType[S]) Add(other VecType[S]) VecType[S] {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

func (v VecType[S]) Sub(other VecType[S]) VecType[S] {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

func (v VecType[S]) Mul(scalar S) VecType[S] {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

func (v VecType[S]) MulEach(other VecType[S]) VecType[S] {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	return v
}

func (v VecType[S]) DivEach(other VecType[S]) VecType[S] {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
	return v
}

func (v VecType[S]) Neg() VecType[S] {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
	return v
}

func (v VecType[S]) Dot(other VecType[S]) S {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v VecType[S]) Cross(other VecType[S]) VecType[S] {
	return VecType[S]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v VecType[S]) Min(other VecType[S]) VecType[S] {
	return VecType[S]{
		X: min(v.X, other.X),
		Y: min(v.Y, other.Y),
		Z: min(v.Z, other.Z),
	}
}

func (v VecType[S]) Max(other VecType[S]) VecType[S] {
	return VecType[S]{
		X: max(v.X, other.X),
		Y: max(v.Y, other.Y),
		Z: max(v.Z, other.Z),
	}
}

func (v VecType[S]) Abs() VecType[S] {
	return VecType[S]{
		X: S(math.Abs(float64(v.X))),
		Y: S(math.Abs(float64(v.Y))),
		Z: S(math.Abs(float64(v.Z))),
	}
}

// MinComponent returns the smallest of the three components.
func (v VecType[S]) MinComponent() S {
	return min(v.X, v.Y, v.Z)
}

// MaxComponent returns the largest of the three components.
func (v VecType[S]) MaxComponent() S {
	return max(v.X, v.Y, v.Z)
}

func (v VecType[S]) Length() S {
	return S(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

func (v VecType[S]) LengthSqr() S {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v VecType[S]) Normalized() VecType[S] {
	length := v.Length()
	v.X /= length
	v.Y /= length
	v.Z /= length
	return v
}

// TryNormalized returns the normalized vector, or false if the vector is
// too short to have a meaningful direction.
func (v VecType[S]) TryNormalized() (VecType[S], bool) {
	length := v.Length()
	if length < 1e-9 {
		return VecType[S]{}, false
	}

	v.X /= length
	v.Y /= length
	v.Z /= length
	return v, true
}

func (v VecType[S]) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v, z=%v)", v.X, v.Y, v.Z)
}
