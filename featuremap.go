package collide

import "github.com/oliverbestmann/collide/gm"

// PolygonalFeature is a planar support feature of a shape: a vertex, an
// edge or a face with up to four vertices. Contact manifold generation
// clips pairs of such features against each other.
type PolygonalFeature struct {
	// Vertices holds the corners of the feature in the local frame of the
	// shape; only the first NumVertices entries are valid.
	Vertices [4]gm.Vec

	// NumVertices is 1 for a vertex, 2 for an edge and 3 or 4 for a face.
	NumVertices int

	// Feature identifies the feature on the shape.
	Feature FeatureID
}

// PolygonalFeatureMap is implemented by shapes with discrete polygonal
// features. Together with the rounding margin returned by
// Shape.AsPolygonalFeatureMap it drives margin aware contact generation.
type PolygonalFeatureMap interface {
	// LocalSupportFeature writes the feature of the shape most aligned
	// with the given direction into out.
	LocalSupportFeature(dir gm.Vec, out *PolygonalFeature)
}
