// Package gm (stands for geometry math) provides the geometry primitives
// used by the collision library.
//
// It includes a simple 3d vector type called Vec, a 3d matrix type Mat, a
// rigid transformation type named Iso and an axis aligned bounding box
// named Aabb.
//
// There is also a type named Rad to represent angle values in radian.
package gm
