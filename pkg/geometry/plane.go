package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(),
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel rays never meet the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !rayT.Surrounds(t) {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:     t,
		Point: ray.At(t),
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}

func (p *Plane) String() string {
	return fmt.Sprintf("plane point=%v normal=%v", p.Point, p.Normal)
}
