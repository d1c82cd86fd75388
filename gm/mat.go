package gm

import "math"

// Mat describes a 3d matrix of float64 values in row major order.
type Mat struct {
	XAxis, YAxis, ZAxis Vec
}

func IdentityMat() Mat {
	return Mat{
		XAxis: Vec{X: 1},
		YAxis: Vec{Y: 1},
		ZAxis: Vec{Z: 1},
	}
}

// ScaleMat returns a matrix that scales a Vec.
func ScaleMat(scale Vec) Mat {
	return Mat{
		XAxis: Vec{X: scale.X},
		YAxis: Vec{Y: scale.Y},
		ZAxis: Vec{Z: scale.Z},
	}
}

// RotationX returns a matrix that rotates a Vec around the x axis
// by the given angle.
func RotationX(angle Rad) Mat {
	sin, cos := math.Sincos(float64(angle))

	return Mat{
		XAxis: Vec{X: 1},
		YAxis: Vec{Y: cos, Z: -sin},
		ZAxis: Vec{Y: sin, Z: cos},
	}
}

// RotationY returns a matrix that rotates a Vec around the y axis
// by the given angle.
func RotationY(angle Rad) Mat {
	sin, cos := math.Sincos(float64(angle))

	return Mat{
		XAxis: Vec{X: cos, Z: sin},
		YAxis: Vec{Y: 1},
		ZAxis: Vec{X: -sin, Z: cos},
	}
}

// RotationZ returns a matrix that rotates a Vec around the z axis
// by the given angle.
func RotationZ(angle Rad) Mat {
	sin, cos := math.Sincos(float64(angle))

	return Mat{
		XAxis: Vec{X: cos, Y: -sin},
		YAxis: Vec{X: sin, Y: cos},
		ZAxis: Vec{Z: 1},
	}
}

// AxisAngleMat returns a matrix that rotates a Vec around the given axis
// by the given angle. The axis must be normalized.
func AxisAngleMat(axis Vec, angle Rad) Mat {
	sin, cos := math.Sincos(float64(angle))
	k := 1 - cos

	return Mat{
		XAxis: Vec{
			X: cos + axis.X*axis.X*k,
			Y: axis.X*axis.Y*k - axis.Z*sin,
			Z: axis.X*axis.Z*k + axis.Y*sin,
		},
		YAxis: Vec{
			X: axis.Y*axis.X*k + axis.Z*sin,
			Y: cos + axis.Y*axis.Y*k,
			Z: axis.Y*axis.Z*k - axis.X*sin,
		},
		ZAxis: Vec{
			X: axis.Z*axis.X*k - axis.Y*sin,
			Y: axis.Z*axis.Y*k + axis.X*sin,
			Z: cos + axis.Z*axis.Z*k,
		},
	}
}

// RotationBetween returns a rotation matrix that maps the direction of from
// onto the direction of to. Both vectors must be non zero.
func RotationBetween(from, to Vec) Mat {
	a := from.Normalized()
	b := to.Normalized()

	axis := a.Cross(b)
	sin := axis.Length()
	cos := a.Dot(b)

	if sin < 1e-9 {
		if cos > 0 {
			return IdentityMat()
		}

		// opposite directions, rotate half a turn around any axis
		// orthogonal to a
		ortho := VecX.Cross(a)
		if ortho.LengthSqr() < 1e-9 {
			ortho = VecY.Cross(a)
		}

		return AxisAngleMat(ortho.Normalized(), math.Pi)
	}

	return AxisAngleMat(axis.Mul(1/sin), Rad(math.Atan2(sin, cos)))
}

// OuterProduct returns the matrix a * transpose(b).
func OuterProduct(a, b Vec) Mat {
	return Mat{
		XAxis: b.Mul(a.X),
		YAxis: b.Mul(a.Y),
		ZAxis: b.Mul(a.Z),
	}
}

func (m Mat) Transform(vec Vec) Vec {
	return Vec{
		X: m.XAxis.Dot(vec),
		Y: m.YAxis.Dot(vec),
		Z: m.ZAxis.Dot(vec),
	}
}

func (m Mat) Mul(n Mat) Mat {
	nt := n.Transposed()

	return Mat{
		XAxis: nt.Transform(m.XAxis),
		YAxis: nt.Transform(m.YAxis),
		ZAxis: nt.Transform(m.ZAxis),
	}
}

func (m Mat) Add(n Mat) Mat {
	return Mat{
		XAxis: m.XAxis.Add(n.XAxis),
		YAxis: m.YAxis.Add(n.YAxis),
		ZAxis: m.ZAxis.Add(n.ZAxis),
	}
}

func (m Mat) Sub(n Mat) Mat {
	return Mat{
		XAxis: m.XAxis.Sub(n.XAxis),
		YAxis: m.YAxis.Sub(n.YAxis),
		ZAxis: m.ZAxis.Sub(n.ZAxis),
	}
}

func (m Mat) MulScalar(scalar float64) Mat {
	return Mat{
		XAxis: m.XAxis.Mul(scalar),
		YAxis: m.YAxis.Mul(scalar),
		ZAxis: m.ZAxis.Mul(scalar),
	}
}

func (m Mat) Transposed() Mat {
	return Mat{
		XAxis: Vec{X: m.XAxis.X, Y: m.YAxis.X, Z: m.ZAxis.X},
		YAxis: Vec{X: m.XAxis.Y, Y: m.YAxis.Y, Z: m.ZAxis.Y},
		ZAxis: Vec{X: m.XAxis.Z, Y: m.YAxis.Z, Z: m.ZAxis.Z},
	}
}

// Abs returns the matrix with all elements replaced by their absolute value.
func (m Mat) Abs() Mat {
	return Mat{
		XAxis: m.XAxis.Abs(),
		YAxis: m.YAxis.Abs(),
		ZAxis: m.ZAxis.Abs(),
	}
}

func (m Mat) Trace() float64 {
	return m.XAxis.X + m.YAxis.Y + m.ZAxis.Z
}

func (m Mat) Determinant() float64 {
	return m.XAxis.Dot(m.YAxis.Cross(m.ZAxis))
}

// Inverse returns the inverse of the matrix.
// This method will panic if an inverse can not be calculated.
func (m Mat) Inverse() Mat {
	inverse, ok := m.TryInverse()
	if !ok {
		panic("matrix is not invertible")
	}

	return inverse
}

// TryInverse returns the inverse of the matrix if possible.
func (m Mat) TryInverse() (Mat, bool) {
	det := m.Determinant()
	if det == 0 {
		return Mat{}, false
	}

	f := 1 / det

	// rows of the inverse are the scaled columns of the cross products
	r0 := m.YAxis.Cross(m.ZAxis)
	r1 := m.ZAxis.Cross(m.XAxis)
	r2 := m.XAxis.Cross(m.YAxis)

	return Mat{
		XAxis: Vec{X: r0.X, Y: r1.X, Z: r2.X}.Mul(f),
		YAxis: Vec{X: r0.Y, Y: r1.Y, Z: r2.Y}.Mul(f),
		ZAxis: Vec{X: r0.Z, Y: r1.Z, Z: r2.Z}.Mul(f),
	}, true
}
