package collide

import (
	"github.com/oliverbestmann/collide/gm"
	"github.com/oliverbestmann/collide/internal/assert"
)

// HeightField is a rectangular grid of heights spanning the unit square in
// the x/z plane, scaled by Scale. Row i runs along the z axis, column j
// along the x axis, and heights[i][j] is the y value of the grid vertex.
type HeightField struct {
	shapeDefaults
	heights   [][]float64
	scale     gm.Vec
	localAabb gm.Aabb
}

// NewHeightField returns the heightfield with the given height grid and
// scale. The grid needs at least two rows and two columns, all rows of the
// same length; the scale components must be positive.
func NewHeightField(heights [][]float64, scale gm.Vec) *HeightField {
	assert.That(len(heights) >= 2, "a heightfield needs at least 2 rows, got %d", len(heights))
	assert.Positive(scale.X, "heightfield scale.X")
	assert.Positive(scale.Y, "heightfield scale.Y")
	assert.Positive(scale.Z, "heightfield scale.Z")

	cols := len(heights[0])
	assert.That(cols >= 2, "a heightfield needs at least 2 columns, got %d", cols)

	minHeight := heights[0][0]
	maxHeight := heights[0][0]

	copied := make([][]float64, len(heights))
	for i, row := range heights {
		assert.That(len(row) == cols, "row %d has %d columns, expected %d", i, len(row), cols)
		copied[i] = append([]float64(nil), row...)

		for _, height := range row {
			minHeight = min(minHeight, height)
			maxHeight = max(maxHeight, height)
		}
	}

	return &HeightField{
		heights: copied,
		scale:   scale,
		localAabb: gm.Aabb{
			Min: gm.Vec{X: -scale.X / 2, Y: minHeight * scale.Y, Z: -scale.Z / 2},
			Max: gm.Vec{X: scale.X / 2, Y: maxHeight * scale.Y, Z: scale.Z / 2},
		},
	}
}

// NumRows returns the number of cell rows, one less than the number of
// vertex rows.
func (h *HeightField) NumRows() int {
	return len(h.heights) - 1
}

// NumCols returns the number of cell columns, one less than the number of
// vertex columns.
func (h *HeightField) NumCols() int {
	return len(h.heights[0]) - 1
}

func (h *HeightField) Scale() gm.Vec {
	return h.scale
}

// VertexAt returns the grid vertex of row i and column j in the local frame
// of the heightfield.
func (h *HeightField) VertexAt(i, j int) gm.Vec {
	rows := len(h.heights)
	cols := len(h.heights[0])

	return gm.Vec{
		X: (float64(j)/float64(cols-1) - 0.5) * h.scale.X,
		Y: h.heights[i][j] * h.scale.Y,
		Z: (float64(i)/float64(rows-1) - 0.5) * h.scale.Z,
	}
}

// CellTriangles returns the two triangles of the grid cell at row i and
// column j, both wound counter clockwise seen from above.
func (h *HeightField) CellTriangles(i, j int) (Triangle, Triangle) {
	v00 := h.VertexAt(i, j)
	v01 := h.VertexAt(i, j+1)
	v10 := h.VertexAt(i+1, j)
	v11 := h.VertexAt(i+1, j+1)

	return Triangle{A: v00, B: v10, C: v11}, Triangle{A: v00, B: v11, C: v01}
}

func (h *HeightField) ComputeLocalAabb() gm.Aabb {
	return h.localAabb
}

func (h *HeightField) ComputeAabb(pose gm.Iso) gm.Aabb {
	return h.localAabb.TransformedBy(pose)
}

// MassProperties of a heightfield are zero, it is treated as a hollow
// boundary without volume.
func (h *HeightField) MassProperties(float64) MassProperties {
	return MassProperties{}
}

func (h *HeightField) ShapeType() ShapeType {
	return TypeHeightField
}

// CcdThickness is zero for heightfields. This is a conservative
// placeholder, any non negative lower bound on the thickness would do.
func (h *HeightField) CcdThickness() float64 {
	return 0
}
