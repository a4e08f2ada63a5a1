package actor

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrNoPoints is returned when fitting an AABB to an empty point set
	ErrNoPoints = errors.New("aabb: cannot fit bounds to an empty point set")
	// ErrNegativeSkin is returned when the skin margin is negative
	ErrNegativeSkin = errors.New("aabb: skin size must not be negative")
)

// AABB represents an axis-aligned bounding box
// Min is the lower bound and Max the upper bound on each axis
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABB creates a box from explicit bounds
func NewAABB(lower, upper mgl64.Vec3) AABB {
	return AABB{Min: lower, Max: upper}
}

type fitParams struct {
	position    mgl64.Vec3
	rotation    mgl64.Quat
	skin        float64
	hasPosition bool
	hasRotation bool
}

// FitOption configures SetFromPoints
type FitOption func(*fitParams)

// WithPosition translates the fitted box by position
func WithPosition(position mgl64.Vec3) FitOption {
	return func(p *fitParams) {
		p.position = position
		p.hasPosition = true
	}
}

// WithRotation rotates every point before it is fitted
func WithRotation(rotation mgl64.Quat) FitOption {
	return func(p *fitParams) {
		p.rotation = rotation
		p.hasRotation = true
	}
}

// WithTransform applies both the rotation and the position of transform
func WithTransform(transform Transform) FitOption {
	return func(p *fitParams) {
		WithRotation(transform.rotation())(p)
		WithPosition(transform.Position)(p)
	}
}

// WithSkin pads the fitted box outward by skin on every axis
func WithSkin(skin float64) FitOption {
	return func(p *fitParams) {
		p.skin = skin
	}
}

// SetFromPoints sets the bounds to the smallest box enclosing points.
// Each point is rotated first (WithRotation), the resulting box is then
// translated (WithPosition) and finally padded (WithSkin).
// On error the box is left untouched.
func (a *AABB) SetFromPoints(points []mgl64.Vec3, opts ...FitOption) (*AABB, error) {
	if len(points) == 0 {
		return a, ErrNoPoints
	}

	var params fitParams
	for _, opt := range opts {
		opt(&params)
	}
	if params.skin < 0 {
		return a, ErrNegativeSkin
	}

	a.fit(points, params)

	return a, nil
}

// fit assumes len(points) > 0
func (a *AABB) fit(points []mgl64.Vec3, params fitParams) {
	first := points[0]
	if params.hasRotation {
		first = params.rotation.Rotate(first)
	}
	min := first
	max := first

	for _, p := range points[1:] {
		if params.hasRotation {
			p = params.rotation.Rotate(p)
		}

		for axis := 0; axis < 3; axis++ {
			if p[axis] > max[axis] {
				max[axis] = p[axis]
			}
			if p[axis] < min[axis] {
				min[axis] = p[axis]
			}
		}
	}

	if params.hasPosition {
		min = min.Add(params.position)
		max = max.Add(params.position)
	}

	if params.skin != 0 {
		margin := mgl64.Vec3{params.skin, params.skin, params.skin}
		min = min.Sub(margin)
		max = max.Add(margin)
	}

	a.Min = min
	a.Max = max
}

// Contains checks if other is fully enclosed by the AABB
// Shared faces count as enclosed, so every box contains itself
func (a AABB) Contains(other AABB) bool {
	return a.Min.X() <= other.Min.X() && a.Max.X() >= other.Max.X() &&
		a.Min.Y() <= other.Min.Y() && a.Max.Y() >= other.Max.Y() &&
		a.Min.Z() <= other.Min.Z() && a.Max.Z() >= other.Max.Z()
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on all three axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// GetCorners writes the 8 corners of the box into out.
// Bit 0 of the index selects Max on X, bit 1 on Y and bit 2 on Z,
// so out[0] is Min and out[7] is Max.
func (a AABB) GetCorners(out *[8]mgl64.Vec3) {
	for i := range out {
		corner := a.Min
		if i&1 != 0 {
			corner[0] = a.Max[0]
		}
		if i&2 != 0 {
			corner[1] = a.Max[1]
		}
		if i&4 != 0 {
			corner[2] = a.Max[2]
		}
		out[i] = corner
	}
}

// ToLocalFrame writes into target the AABB enclosing this box once moved
// into the local space of frame, and returns target.
// A rotated box is no longer axis-aligned, so each corner is mapped
// individually and the result is fitted again.
func (a AABB) ToLocalFrame(frame Transform, target *AABB) *AABB {
	var corners [8]mgl64.Vec3
	a.GetCorners(&corners)

	for i := range corners {
		corners[i] = frame.PointToLocal(corners[i])
	}

	target.fit(corners[:], fitParams{})

	return target
}

// ToWorldFrame is the inverse of ToLocalFrame: this box is expressed in the
// local space of frame and target receives its world AABB
func (a AABB) ToWorldFrame(frame Transform, target *AABB) *AABB {
	var corners [8]mgl64.Vec3
	a.GetCorners(&corners)

	for i := range corners {
		corners[i] = frame.PointToWorld(corners[i])
	}

	target.fit(corners[:], fitParams{})

	return target
}

// Extend grows the box so that it also encloses other
func (a *AABB) Extend(other AABB) {
	for axis := 0; axis < 3; axis++ {
		a.Min[axis] = math.Min(a.Min[axis], other.Min[axis])
		a.Max[axis] = math.Max(a.Max[axis], other.Max[axis])
	}
}

// Expand returns a copy padded by margin on every axis
func (a AABB) Expand(margin float64) AABB {
	m := mgl64.Vec3{margin, margin, margin}

	return AABB{Min: a.Min.Sub(m), Max: a.Max.Add(m)}
}

// Translate returns a copy moved by offset
func (a AABB) Translate(offset mgl64.Vec3) AABB {
	return AABB{Min: a.Min.Add(offset), Max: a.Max.Add(offset)}
}

func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Size returns the full extents along each axis
func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

func (a AABB) Volume() float64 {
	s := a.Size()

	return s.X() * s.Y() * s.Z()
}

func (a AABB) SurfaceArea() float64 {
	s := a.Size()

	return 2.0 * (s.X()*s.Y() + s.Y()*s.Z() + s.Z()*s.X())
}

// IsValid reports whether Min <= Max on every axis
func (a AABB) IsValid() bool {
	return a.Min.X() <= a.Max.X() && a.Min.Y() <= a.Max.Y() && a.Min.Z() <= a.Max.Z()
}

// OverlapsRay checks if the ray starting at origin along direction hits the box.
// The direction does not need to be normalized.
func (a AABB) OverlapsRay(origin, direction mgl64.Vec3) bool {
	tMin := 0.0
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		if direction[axis] == 0 {
			// Parallel to the slab: the origin must lie between both planes
			if origin[axis] < a.Min[axis] || origin[axis] > a.Max[axis] {
				return false
			}
			continue
		}

		inv := 1.0 / direction[axis]
		t1 := (a.Min[axis] - origin[axis]) * inv
		t2 := (a.Max[axis] - origin[axis]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}
