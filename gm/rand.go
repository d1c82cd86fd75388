package gm

import (
	"math"
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S Scalar](min, max S) S {
	return S(rand.Float64()*(float64(max)-float64(min))) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle() Rad {
	return Rad(RandomIn(0, 2*math.Pi))
}

// RandomVec returns a vector uniformly sampled from within the unit sphere.
func RandomVec[S Scalar]() VecType[S] {
	for {
		v := VecType[S]{
			X: RandomIn[S](-1, 1),
			Y: RandomIn[S](-1, 1),
			Z: RandomIn[S](-1, 1),
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}

// RandomUnitVec returns a random direction uniformly sampled from the unit sphere.
func RandomUnitVec[S Scalar]() VecType[S] {
	for {
		v, ok := RandomVec[S]().TryNormalized()
		if ok {
			return v
		}
	}
}
