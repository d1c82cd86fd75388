package collide

import (
	"github.com/oliverbestmann/collide/gm"
	"github.com/oliverbestmann/collide/internal/assert"
)

// ChildShape is a shape posed relative to the compound owning it.
type ChildShape struct {
	Pose  gm.Iso
	Shape Shape
}

// Compound is an aggregate of child shapes, each with its own pose relative
// to the compound's local frame.
type Compound struct {
	shapeDefaults
	children  []ChildShape
	localAabb gm.Aabb
}

// NewCompound returns the compound of the given children. The child list
// must not be empty. The aggregate bounding box is computed once here, not
// on every query.
func NewCompound(children []ChildShape) *Compound {
	assert.That(len(children) > 0, "a compound needs at least one child shape")

	aabb := children[0].Shape.ComputeAabb(children[0].Pose)
	for _, child := range children[1:] {
		aabb = aabb.Merged(child.Shape.ComputeAabb(child.Pose))
	}

	return &Compound{
		children:  append([]ChildShape(nil), children...),
		localAabb: aabb,
	}
}

// Children returns the child shapes. The returned slice is shared and must
// not be modified.
func (c *Compound) Children() []ChildShape {
	return c.children
}

func (c *Compound) ComputeLocalAabb() gm.Aabb {
	return c.localAabb
}

func (c *Compound) ComputeAabb(pose gm.Iso) gm.Aabb {
	return c.localAabb.TransformedBy(pose)
}

func (c *Compound) MassProperties(density float64) MassProperties {
	return MassPropertiesOfCompound(density, c.children)
}

func (c *Compound) ShapeType() ShapeType {
	return TypeCompound
}

// CcdThickness of a compound is the smallest thickness among its children.
func (c *Compound) CcdThickness() float64 {
	thickness := c.children[0].Shape.CcdThickness()
	for _, child := range c.children[1:] {
		thickness = min(thickness, child.Shape.CcdThickness())
	}

	return thickness
}

func (c *Compound) AsCompositeShape() (CompositeShape, bool) {
	return c, true
}

func (c *Compound) NumChildren() int {
	return len(c.children)
}

func (c *Compound) ForEachChild(f func(childIndex uint32, pose gm.Iso, child Shape)) {
	for idx, child := range c.children {
		f(uint32(idx), child.Pose, child.Shape)
	}
}
