package actor

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// ToR3Box converts the AABB to a gonum box
func (a AABB) ToR3Box() r3.Box {
	return r3.Box{
		Min: r3.Vec{X: a.Min.X(), Y: a.Min.Y(), Z: a.Min.Z()},
		Max: r3.Vec{X: a.Max.X(), Y: a.Max.Y(), Z: a.Max.Z()},
	}
}

// AABBFromR3Box converts a gonum box, the bounds are copied as is
func AABBFromR3Box(box r3.Box) AABB {
	return AABB{
		Min: mgl64.Vec3{box.Min.X, box.Min.Y, box.Min.Z},
		Max: mgl64.Vec3{box.Max.X, box.Max.Y, box.Max.Z},
	}
}

// FromR3Vecs converts gonum vectors into points accepted by SetFromPoints
func FromR3Vecs(vecs []r3.Vec) []mgl64.Vec3 {
	points := make([]mgl64.Vec3, len(vecs))
	for i, v := range vecs {
		points[i] = mgl64.Vec3{v.X, v.Y, v.Z}
	}

	return points
}

// NewConvexHullFromR3 creates a hull from gonum vertices, see NewConvexHull
func NewConvexHullFromR3(vertices []r3.Vec, skin float64) (*ConvexHull, error) {
	return NewConvexHull(FromR3Vecs(vertices), skin)
}
