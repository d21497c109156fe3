package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// NewDefaultScene creates the default scene: a small sphere resting on a
// very large ground sphere, both in front of the camera
func NewDefaultScene() *Scene {
	return New(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100),
	)
}

// NewSphereScene creates a scene with a single sphere and no ground
func NewSphereScene() *Scene {
	return New(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5))
}

// NewEmptyScene creates a scene with no shapes; only the sky is visible
func NewEmptyScene() *Scene {
	return New()
}

// NewRowScene creates three spheres side by side over the ground sphere
func NewRowScene() *Scene {
	s := NewEmptyScene()
	for _, x := range []float64{-1, 0, 1} {
		s.Add(geometry.NewSphere(core.NewVec3(x, 0, -1.2), 0.45))
	}
	s.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100))
	return s
}

// NewPlaneScene creates a single sphere resting on an infinite ground plane
func NewPlaneScene() *Scene {
	return New(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5),
		geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0)),
	)
}
