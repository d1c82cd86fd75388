package collide

import (
	"math"

	"github.com/oliverbestmann/collide/gm"
	"github.com/oliverbestmann/collide/internal/assert"
)

// HalfSpace is the unbounded set of all points behind the plane through the
// origin with the given outward unit normal.
type HalfSpace struct {
	shapeDefaults
	Normal gm.Vec
}

// NewHalfSpace returns the half space with the given outward normal. The
// normal must be non zero; it is normalized.
func NewHalfSpace(normal gm.Vec) *HalfSpace {
	unit, ok := normal.TryNormalized()
	assert.That(ok, "half space normal must be non zero")

	return &HalfSpace{Normal: unit}
}

func (h *HalfSpace) ComputeLocalAabb() gm.Aabb {
	return gm.Aabb{
		Min: gm.VecSplat(-math.MaxFloat64),
		Max: gm.VecSplat(math.MaxFloat64),
	}
}

func (h *HalfSpace) ComputeAabb(gm.Iso) gm.Aabb {
	return h.ComputeLocalAabb()
}

// MassProperties of a half space are zero, it is unbounded.
func (h *HalfSpace) MassProperties(float64) MassProperties {
	return MassProperties{}
}

func (h *HalfSpace) ShapeType() ShapeType {
	return TypeHalfSpace
}

// CcdThickness of a half space is unbounded.
func (h *HalfSpace) CcdThickness() float64 {
	return math.MaxFloat64
}

func (h *HalfSpace) IsConvex() bool {
	return true
}

func (h *HalfSpace) FeatureNormalAtPoint(FeatureID, gm.Vec) (gm.Vec, bool) {
	return h.Normal, true
}
