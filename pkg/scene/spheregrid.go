package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

const (
	gridColumns = 7
	gridRows    = 4
	gridSpacing = 0.6
	gridDepth   = -3.0
	gridRadius  = 0.22
)

// NewSphereGridScene creates a grid of small spheres facing the camera,
// standing on a ground plane
func NewSphereGridScene() *Scene {
	s := NewEmptyScene()

	originX := -gridSpacing * float64(gridColumns-1) / 2
	originY := -gridSpacing * float64(gridRows-1) / 2
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridColumns; col++ {
			center := core.NewVec3(
				originX+float64(col)*gridSpacing,
				originY+float64(row)*gridSpacing,
				// Stagger alternate rows so spheres overlap in depth
				gridDepth-float64(row%2)*gridSpacing/2,
			)
			s.Add(geometry.NewSphere(center, gridRadius))
		}
	}

	groundY := originY - gridRadius
	s.Add(geometry.NewPlane(core.NewVec3(0, groundY, 0), core.NewVec3(0, 1, 0)))
	return s
}
