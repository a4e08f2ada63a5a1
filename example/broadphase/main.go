package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/bounds"
	"github.com/akmonengine/bounds/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// SetupScene creates a static floor, a spinning box and a falling hull
func SetupScene() (*bounds.Broadphase, *bounds.Proxy, *bounds.Proxy) {
	bp := bounds.NewBroadphase(bounds.Config{CellSize: 2.0, Workers: 2, Skin: 0.2})

	floor, _ := bp.Add(
		&actor.Box{HalfExtents: mgl64.Vec3{10, 0.5, 10}},
		actor.NewTransformFrom(mgl64.Vec3{0, -0.5, 0}, mgl64.QuatIdent()),
		true,
	)

	box, _ := bp.Add(
		&actor.Box{HalfExtents: mgl64.Vec3{1.5, 0.5, 0.5}},
		actor.NewTransformFrom(mgl64.Vec3{-3, 2, 0}, mgl64.QuatIdent()),
		false,
	)

	tetrahedron, err := actor.NewConvexHull([]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 0.05)
	if err != nil {
		panic(err)
	}
	hull, _ := bp.Add(
		tetrahedron,
		actor.NewTransformFrom(mgl64.Vec3{3, 5, 0}, mgl64.QuatIdent()),
		false,
	)

	fmt.Printf("Floor fat box: %v\n", floor.Fat)

	return bp, box, hull
}

func main() {
	bp, box, hull := SetupScene()

	const dt float64 = 1.0 / 60.0
	const maxSteps int = 120

	for step := 0; step < maxSteps; step++ {
		angle := float64(step) * dt * math.Pi
		box.Transform = actor.NewTransformFrom(box.Transform.Position, mgl64.QuatRotate(angle, mgl64.Vec3{0, 0, 1}))

		position := hull.Transform.Position
		position[1] = math.Max(0, position[1]-5*dt)
		hull.Transform = actor.NewTransformFrom(position, hull.Transform.Rotation)

		moved := bp.Refit()
		pairs := bp.Pairs()

		if step%20 == 0 {
			fmt.Printf("--- step %d: %d proxies moved, %d pairs\n", step, moved, len(pairs))
			for _, pair := range pairs {
				fmt.Printf("  pair %d-%d\n", pair.ProxyA.ID, pair.ProxyB.ID)
			}
			fmt.Printf("  box in hull frame: %v\n", box.BoundsIn(hull))
		}
	}
}
