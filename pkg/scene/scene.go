package scene

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// Scene is an ordered collection of shapes that is itself a shape.
// Shapes are added while the scene is built and must not change during a render.
type Scene struct {
	shapes []core.Shape
}

// New creates a scene holding the given shapes in order
func New(shapes ...core.Shape) *Scene {
	s := &Scene{}
	s.Add(shapes...)
	return s
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...core.Shape) {
	s.shapes = append(s.shapes, shapes...)
}

// Clear removes all shapes
func (s *Scene) Clear() {
	s.shapes = nil
}

// Len returns the number of shapes in the scene
func (s *Scene) Len() int {
	return len(s.shapes)
}

// Shapes returns the scene's shapes in insertion order
func (s *Scene) Shapes() []core.Shape {
	return s.shapes
}

// Hit returns the closest hit across all shapes. Each shape is tested against
// a window whose upper bound is the closest t found so far, so a single pass
// is enough. On an exact tie the shape added first wins.
func (s *Scene) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := rayT.Max

	for _, shape := range s.shapes {
		if hit, isHit := shape.Hit(ray, rayT.WithMax(closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
