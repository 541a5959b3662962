package bvh

import (
	"github.com/Faultbox/partview/internal/engine/picking"
	"github.com/Faultbox/partview/pkg/math"
)

// Transformed places a child body in world space through a matrix.
// Hits report the child's leaf, not the wrapper.
type Transformed struct {
	child   picking.Traceable
	matrix  math.Mat4
	inverse math.Mat4
}

// NewTransformed wraps child with the local-to-world matrix m.
func NewTransformed(child picking.Traceable, m math.Mat4) *Transformed {
	return &Transformed{child: child, matrix: m, inverse: m.Inverse()}
}

// Child returns the wrapped body.
func (t *Transformed) Child() picking.Traceable {
	return t.child
}

// Matrix returns the local-to-world matrix.
func (t *Transformed) Matrix() math.Mat4 {
	return t.matrix
}

// Bounds returns the world-space box of the child.
func (t *Transformed) Bounds() picking.AABB {
	return t.child.Bounds().Transform(t.matrix)
}

// Intersect casts a world ray against the child in its local space.
func (t *Transformed) Intersect(r picking.Ray) (picking.IntersectInfo, bool) {
	local := r.Transform(t.inverse)
	info, ok := t.child.Intersect(picking.NewRay(local.Origin, local.Direction))
	if !ok {
		return picking.IntersectInfo{}, false
	}
	p := t.matrix.TransformPoint(info.Point)
	return picking.IntersectInfo{
		Distance: p.Sub(r.Origin).Length(),
		Point:    p,
		Normal:   normalToWorld(t.inverse, info.Normal),
		Hit:      info.Hit,
	}, true
}

// Contained queries the child with box moved into local space.
func (t *Transformed) Contained(box picking.AABB, results []picking.Traceable) []picking.Traceable {
	if !t.Bounds().Intersects(box) {
		return results
	}
	return t.child.Contained(box.Transform(t.inverse), results)
}

// normalToWorld multiplies n by the transpose of inv.
func normalToWorld(inv math.Mat4, n math.Vec3) math.Vec3 {
	return math.Vec3{
		X: inv[0]*n.X + inv[1]*n.Y + inv[2]*n.Z,
		Y: inv[4]*n.X + inv[5]*n.Y + inv[6]*n.Z,
		Z: inv[8]*n.X + inv[9]*n.Y + inv[10]*n.Z,
	}.Normalize()
}
