package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomIn(t *testing.T) {
	for range 100 {
		value := RandomIn(2.0, 5.0)
		require.GreaterOrEqual(t, value, 2.0)
		require.Less(t, value, 5.0)
	}
}

func TestRandomVec(t *testing.T) {
	t.Run("float64", func(t *testing.T) {
		for range 100 {
			v := RandomVec[float64]()
			require.LessOrEqual(t, v.Length(), 1.0)
		}
	})

	t.Run("float32", func(t *testing.T) {
		for range 100 {
			v := RandomVec[float32]()
			require.LessOrEqual(t, v.Length(), float32(1.0))
		}
	})
}

func TestRandomUnitVec(t *testing.T) {
	for range 100 {
		v := RandomUnitVec[float64]()
		require.InDelta(t, 1.0, v.Length(), 1e-9)
	}
}

func TestRandomAngle(t *testing.T) {
	for range 100 {
		angle := RandomAngle()
		require.GreaterOrEqual(t, angle.Radians(), 0.0)
		require.Less(t, angle.Radians(), 2*math.Pi)
	}
}
