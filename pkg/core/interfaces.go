package core

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3    // Point of intersection
	Normal    Vec3    // Unit normal, always facing against the incoming ray
	T         float64 // Parameter t along the ray
	FrontFace bool    // Whether the geometric outward normal already faced the ray
}

// SetFaceNormal orients the normal against the ray and records the face.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape is anything a ray can hit. Hit returns the nearest intersection whose
// t lies strictly inside rayT. Implementations must not mutate shared state.
type Shape interface {
	Hit(ray Ray, rayT Interval) (*HitRecord, bool)
}

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(string, ...interface{}) {}
