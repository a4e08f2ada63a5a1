package actor

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrEmptyHull is returned for a convex hull without vertices
	ErrEmptyHull = errors.New("shape: convex hull has no vertices")
	// ErrNegativeExtent is returned for a box or sphere with a negative size
	ErrNegativeExtent = errors.New("shape: extents must not be negative")
)

// ShapeType represents the type of collision shape
type ShapeType int

const (
	ShapeTypeSphere ShapeType = iota
	ShapeTypeBox
	ShapeTypeConvexHull
)

func (st ShapeType) String() string {
	switch st {
	case ShapeTypeSphere:
		return "sphere"
	case ShapeTypeBox:
		return "box"
	case ShapeTypeConvexHull:
		return "convex hull"
	}

	return fmt.Sprintf("ShapeType(%d)", int(st))
}

// Shape is the interface that all bounded shapes must implement
type Shape interface {
	// AABB returns the axis-aligned bounding box of the shape at the given
	// transform without touching the shape, so one shape may be shared
	AABB(transform Transform) AABB
	// ComputeAABB calculates the bounding box at the given transform
	// and caches it for GetAABB
	ComputeAABB(transform Transform)
	GetAABB() AABB
	Type() ShapeType
}

// ValidateShape checks the dimensions of a shape before it is used.
// Shapes declaring a built-in type must be that concrete type.
func ValidateShape(shape Shape) error {
	if shape == nil {
		return errors.New("shape: nil shape")
	}

	switch shape.Type() {
	case ShapeTypeBox:
		box, ok := shape.(*Box)
		if !ok {
			break
		}
		if box.HalfExtents.X() < 0 || box.HalfExtents.Y() < 0 || box.HalfExtents.Z() < 0 {
			return fmt.Errorf("%v half extents %v: %w", shape.Type(), box.HalfExtents, ErrNegativeExtent)
		}
		return nil
	case ShapeTypeSphere:
		sphere, ok := shape.(*Sphere)
		if !ok {
			break
		}
		if sphere.Radius < 0 {
			return fmt.Errorf("%v radius %v: %w", shape.Type(), sphere.Radius, ErrNegativeExtent)
		}
		return nil
	case ShapeTypeConvexHull:
		hull, ok := shape.(*ConvexHull)
		if !ok {
			break
		}
		if len(hull.Vertices) == 0 {
			return ErrEmptyHull
		}
		if hull.Skin < 0 {
			return fmt.Errorf("%v skin %v: %w", shape.Type(), hull.Skin, ErrNegativeSkin)
		}
		return nil
	}

	return fmt.Errorf("shape: %T does not match shape type %v", shape, shape.Type())
}

// Box represents an oriented box shape
// The box is defined by its half-extents (half-width, half-height, half-depth)
type Box struct {
	HalfExtents mgl64.Vec3
	aabb        AABB
}

func (b *Box) AABB(transform Transform) AABB {
	// The local box is centered on the origin, its corners are fitted
	// once rotated and placed by the transform
	var corners [8]mgl64.Vec3
	AABB{Min: b.HalfExtents.Mul(-1), Max: b.HalfExtents}.GetCorners(&corners)

	params := fitParams{}
	WithTransform(transform)(&params)

	var aabb AABB
	aabb.fit(corners[:], params)

	return aabb
}

func (b *Box) ComputeAABB(transform Transform) {
	b.aabb = b.AABB(transform)
}

func (b *Box) GetAABB() AABB {
	return b.aabb
}

func (b *Box) Type() ShapeType {
	return ShapeTypeBox
}

// Sphere represents a spherical shape
type Sphere struct {
	Radius float64
	aabb   AABB
}

// AABB calculates the axis-aligned bounding box for the sphere
func (s *Sphere) AABB(transform Transform) AABB {
	// Sphere AABB is not affected by rotation, only by position
	radiusVec := mgl64.Vec3{s.Radius, s.Radius, s.Radius}

	return AABB{
		Min: transform.Position.Sub(radiusVec),
		Max: transform.Position.Add(radiusVec),
	}
}

func (s *Sphere) ComputeAABB(transform Transform) {
	s.aabb = s.AABB(transform)
}

func (s *Sphere) GetAABB() AABB {
	return s.aabb
}

func (s *Sphere) Type() ShapeType {
	return ShapeTypeSphere
}

// ConvexHull is a convex shape given by its vertices in local space
// Skin pads the computed AABB on every axis
type ConvexHull struct {
	Vertices []mgl64.Vec3
	Skin     float64
	aabb     AABB
}

// NewConvexHull creates a hull, rejecting an empty vertex set or a negative skin
func NewConvexHull(vertices []mgl64.Vec3, skin float64) (*ConvexHull, error) {
	hull := &ConvexHull{Vertices: vertices, Skin: skin}
	if err := ValidateShape(hull); err != nil {
		return nil, err
	}

	return hull, nil
}

// AABB fits the hull vertices once placed by the transform.
// The hull must pass ValidateShape: a hull without vertices only
// yields the transform position.
func (h *ConvexHull) AABB(transform Transform) AABB {
	if len(h.Vertices) == 0 {
		return AABB{Min: transform.Position, Max: transform.Position}
	}

	params := fitParams{skin: h.Skin}
	WithTransform(transform)(&params)

	var aabb AABB
	aabb.fit(h.Vertices, params)

	return aabb
}

func (h *ConvexHull) ComputeAABB(transform Transform) {
	h.aabb = h.AABB(transform)
}

func (h *ConvexHull) GetAABB() AABB {
	return h.aabb
}

func (h *ConvexHull) Type() ShapeType {
	return ShapeTypeConvexHull
}
