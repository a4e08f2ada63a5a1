package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTransformPointRoundTrip(t *testing.T) {
	transforms := []Transform{
		NewTransform(),
		NewTransformFrom(mgl64.Vec3{1, 2, 3}, mgl64.QuatIdent()),
		NewTransformFrom(mgl64.Vec3{-4, 0, 2}, mgl64.QuatRotate(mgl64.DegToRad(30), mgl64.Vec3{0, 1, 0})),
		NewTransformFrom(mgl64.Vec3{0, 5, 0}, mgl64.QuatRotate(1.3, mgl64.Vec3{1, -1, 2}.Normalize())),
	}
	points := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {-2.5, 3, 7}}

	for i, transform := range transforms {
		for _, p := range points {
			local := transform.PointToLocal(p)
			if world := transform.PointToWorld(local); !vec3Equal(world, p, 1e-9) {
				t.Errorf("transform %d: PointToWorld(PointToLocal(%v)) = %v", i, p, world)
			}

			v := transform.VectorToLocal(p)
			if world := transform.VectorToWorld(v); !vec3Equal(world, p, 1e-9) {
				t.Errorf("transform %d: VectorToWorld(VectorToLocal(%v)) = %v", i, p, world)
			}
		}
	}
}

func TestTransformPointToLocal(t *testing.T) {
	tests := []struct {
		name      string
		transform Transform
		point     mgl64.Vec3
		expected  mgl64.Vec3
	}{
		{"identity", NewTransform(), mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3}},
		{"translation", NewTransformFrom(mgl64.Vec3{1, 1, 1}, mgl64.QuatIdent()), mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0, 1, 2}},
		{
			"rotation 90° around Z-axis",
			NewTransformFrom(mgl64.Vec3{}, mgl64.QuatRotate(mgl64.DegToRad(90), mgl64.Vec3{0, 0, 1})),
			mgl64.Vec3{0, 1, 0},
			mgl64.Vec3{1, 0, 0},
		},
		{
			"literal without inverse",
			Transform{Position: mgl64.Vec3{0, 0, 1}, Rotation: mgl64.QuatRotate(mgl64.DegToRad(90), mgl64.Vec3{0, 0, 1})},
			mgl64.Vec3{0, 1, 1},
			mgl64.Vec3{1, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.transform.PointToLocal(tt.point); !vec3Equal(result, tt.expected, 1e-9) {
				t.Errorf("PointToLocal(%v) = %v, want %v", tt.point, result, tt.expected)
			}
		})
	}
}

func TestTransformWithoutRotation(t *testing.T) {
	transforms := []Transform{
		{},
		{Position: mgl64.Vec3{1, 0, 0}},
		{Position: mgl64.Vec3{-2, 3, 0.5}, InverseRotation: mgl64.QuatIdent()},
	}
	point := mgl64.Vec3{1, 2, 3}

	for i, transform := range transforms {
		if local := transform.PointToLocal(point); !vec3Equal(local, point.Sub(transform.Position), 1e-12) {
			t.Errorf("transform %d: PointToLocal(%v) = %v, want %v", i, point, local, point.Sub(transform.Position))
		}
		if world := transform.PointToWorld(point); !vec3Equal(world, point.Add(transform.Position), 1e-12) {
			t.Errorf("transform %d: PointToWorld(%v) = %v, want %v", i, point, world, point.Add(transform.Position))
		}
		if v := transform.VectorToLocal(point); v != point {
			t.Errorf("transform %d: VectorToLocal(%v) = %v", i, point, v)
		}
		if v := transform.VectorToWorld(point); v != point {
			t.Errorf("transform %d: VectorToWorld(%v) = %v", i, point, v)
		}
	}
}
