package bvh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/partview/internal/engine/picking"
	"github.com/Faultbox/partview/pkg/math"
)

// Sphere is a leaf body centered at Center.
type Sphere struct {
	Center math.Vec3
	Radius float32
}

// NewSphere creates a sphere body.
func NewSphere(center math.Vec3, radius float32) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Bounds returns the box enclosing the sphere.
func (s *Sphere) Bounds() picking.AABB {
	r := math.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return picking.AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

// Intersect casts r against the sphere surface.
func (s *Sphere) Intersect(r picking.Ray) (picking.IntersectInfo, bool) {
	t, ok := r.IntersectSphere(s.Center, s.Radius)
	if !ok {
		return picking.IntersectInfo{}, false
	}
	p := r.At(t)
	return picking.IntersectInfo{
		Distance: t,
		Point:    p,
		Normal:   p.Sub(s.Center).Normalize(),
		Hit:      s,
	}, true
}

// Contained appends s when its bounds intersect box.
func (s *Sphere) Contained(box picking.AABB, results []picking.Traceable) []picking.Traceable {
	if s.Bounds().Intersects(box) {
		results = append(results, s)
	}
	return results
}

// Box is an axis-aligned leaf body.
type Box struct {
	Min math.Vec3
	Max math.Vec3
}

// NewBox creates a box body from two corners.
func NewBox(a, b math.Vec3) *Box {
	return &Box{Min: a.Min(b), Max: a.Max(b)}
}

// NewBoxSize creates a box body of the given size centered at center.
func NewBoxSize(center, size math.Vec3) *Box {
	half := size.Scale(0.5)
	return NewBox(center.Sub(half), center.Add(half))
}

// Bounds returns the box itself.
func (b *Box) Bounds() picking.AABB {
	return picking.AABB{Min: b.Min, Max: b.Max}
}

// Intersect casts r against the box faces.
func (b *Box) Intersect(r picking.Ray) (picking.IntersectInfo, bool) {
	t, ok := r.IntersectAABB(b.Bounds())
	if !ok {
		return picking.IntersectInfo{}, false
	}
	p := r.At(t)
	return picking.IntersectInfo{
		Distance: t,
		Point:    p,
		Normal:   b.faceNormal(p),
		Hit:      b,
	}, true
}

// faceNormal returns the outward normal of the face closest to p.
func (b *Box) faceNormal(p math.Vec3) math.Vec3 {
	best := float32(math32.MaxFloat32)
	var n math.Vec3
	axes := [3]math.Vec3{math.UnitX, math.UnitY, math.UnitZ}
	for i := 0; i < 3; i++ {
		if d := math32.Abs(p.Axis(i) - b.Min.Axis(i)); d < best {
			best, n = d, axes[i].Neg()
		}
		if d := math32.Abs(p.Axis(i) - b.Max.Axis(i)); d < best {
			best, n = d, axes[i]
		}
	}
	return n
}

// Contained appends b when its bounds intersect box.
func (b *Box) Contained(box picking.AABB, results []picking.Traceable) []picking.Traceable {
	if b.Bounds().Intersects(box) {
		results = append(results, b)
	}
	return results
}
