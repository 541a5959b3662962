package picking

import "github.com/Faultbox/partview/pkg/math"

// IntersectInfo describes the closest hit of a ray query.
type IntersectInfo struct {
	Distance float32   // distance from the ray origin in world units
	Point    math.Vec3 // world-space hit position
	Normal   math.Vec3 // world-space surface normal at the hit
	Hit      Traceable // leaf body that was hit
}

// Traceable is a body that can be ray cast and queried by bounds.
// Bounds and Contained operate in the body's own coordinate space.
type Traceable interface {
	// Bounds returns the axis-aligned box enclosing the body.
	Bounds() AABB

	// Intersect returns the closest hit of r against the body.
	Intersect(r Ray) (IntersectInfo, bool)

	// Contained appends every leaf body whose bounds intersect box.
	Contained(box AABB, results []Traceable) []Traceable
}
