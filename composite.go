package collide

import "github.com/oliverbestmann/collide/gm"

// CompositeShape is implemented by shapes that are aggregates of child
// shapes, each with its own pose relative to the composite: compounds,
// polylines and triangle meshes.
//
// Iterating the children never mutates the composite, so composite shapes
// stay safe for concurrent reads, e.g. for parallel per child narrow phase
// queries.
type CompositeShape interface {
	// NumChildren returns the number of child shapes.
	NumChildren() int

	// ForEachChild calls f once per child shape with the child's index and
	// its pose relative to the composite. The child value may point to
	// storage that is reused between calls; it must not be retained after
	// f returns.
	ForEachChild(f func(childIndex uint32, pose gm.Iso, child Shape))
}
