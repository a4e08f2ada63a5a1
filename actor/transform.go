package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a rigid frame: a position and an orientation in 3D space
type Transform struct {
	Position        mgl64.Vec3
	Rotation        mgl64.Quat
	InverseRotation mgl64.Quat
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position:        mgl64.Vec3{0, 0, 0},
		Rotation:        mgl64.QuatIdent(),
		InverseRotation: mgl64.QuatIdent(),
	}
}

// NewTransformFrom creates a transform placed at position with the given rotation
// The rotation is normalized and its inverse cached
func NewTransformFrom(position mgl64.Vec3, rotation mgl64.Quat) Transform {
	rotation = rotation.Normalize()

	return Transform{
		Position:        position,
		Rotation:        rotation,
		InverseRotation: rotation.Inverse(),
	}
}

// rotation returns the orientation, a literal without rotation is the identity
func (t Transform) rotation() mgl64.Quat {
	if t.Rotation == (mgl64.Quat{}) {
		return mgl64.QuatIdent()
	}

	return t.Rotation
}

// inverse returns the cached inverse rotation, or derives it when the
// transform was built as a literal without one
func (t Transform) inverse() mgl64.Quat {
	if t.Rotation == (mgl64.Quat{}) {
		return mgl64.QuatIdent()
	}
	if t.InverseRotation == (mgl64.Quat{}) {
		return t.Rotation.Inverse()
	}

	return t.InverseRotation
}

// PointToLocal maps a world space point into the local space of the transform
func (t Transform) PointToLocal(point mgl64.Vec3) mgl64.Vec3 {
	return t.inverse().Rotate(point.Sub(t.Position))
}

// PointToWorld maps a local space point into world space
func (t Transform) PointToWorld(point mgl64.Vec3) mgl64.Vec3 {
	return t.rotation().Rotate(point).Add(t.Position)
}

// VectorToLocal rotates a world direction into local space, ignoring the position
func (t Transform) VectorToLocal(vector mgl64.Vec3) mgl64.Vec3 {
	return t.inverse().Rotate(vector)
}

// VectorToWorld rotates a local direction into world space, ignoring the position
func (t Transform) VectorToWorld(vector mgl64.Vec3) mgl64.Vec3 {
	return t.rotation().Rotate(vector)
}
