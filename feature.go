package collide

import "fmt"

// FeatureKind discriminates the kinds of discrete shape features.
type FeatureKind uint8

const (
	FeatureUnknown FeatureKind = iota
	FeatureVertex
	FeatureEdge
	FeatureFace
)

func (k FeatureKind) String() string {
	switch k {
	case FeatureVertex:
		return "Vertex"
	case FeatureEdge:
		return "Edge"
	case FeatureFace:
		return "Face"
	}

	return "Unknown"
}

// FeatureID identifies a discrete feature (vertex, edge or face) of a shape.
// The meaning of the index is shape specific.
type FeatureID struct {
	Kind  FeatureKind
	Index uint32
}

// UnknownFeature is the zero FeatureID.
var UnknownFeature = FeatureID{}

func VertexFeature(index uint32) FeatureID {
	return FeatureID{Kind: FeatureVertex, Index: index}
}

func EdgeFeature(index uint32) FeatureID {
	return FeatureID{Kind: FeatureEdge, Index: index}
}

func FaceFeature(index uint32) FeatureID {
	return FeatureID{Kind: FeatureFace, Index: index}
}

func (f FeatureID) String() string {
	return fmt.Sprintf("%s(%d)", f.Kind, f.Index)
}
