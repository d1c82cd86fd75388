// Package collide provides the geometric shape abstraction of a 3d
// collision library: a family of concrete shape primitives (balls, cuboids,
// capsules, triangle meshes, compounds, rounded shapes, ...) behind a
// single capability based Shape interface.
//
// Algorithms hold shapes through the Shape interface and use the optional
// capability accessors (AsSupportMap, AsCompositeShape,
// AsPolygonalFeatureMap) to decide which specialized algorithm applies.
// The generic As function and its named shortcuts recover the concrete
// shape type when needed.
//
// Shapes are immutable once constructed and safe for concurrent use from
// any number of goroutines.
package collide
