package picking

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/partview/pkg/math"
)

func TestAABBEmpty(t *testing.T) {
	box := EmptyAABB()
	if !box.IsEmpty() {
		t.Error("expected empty box")
	}

	box = box.Expand(math.Vec3{X: 1, Y: 2, Z: 3})
	if box.IsEmpty() {
		t.Error("expected non-empty box after expand")
	}
	if box.Min != box.Max {
		t.Errorf("expected degenerate box, got %+v", box)
	}
}

func TestAABBUnionAndCenter(t *testing.T) {
	a := NewAABB(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1})
	b := NewAABB(math.Vec3{X: 9, Y: -1, Z: -1}, math.Vec3{X: 11, Y: 1, Z: 1})

	u := a.Union(b)
	if u.Min.X != -1 || u.Max.X != 11 {
		t.Errorf("expected x range [-1, 11], got [%f, %f]", u.Min.X, u.Max.X)
	}
	if c := u.Center(); c.X != 5 {
		t.Errorf("expected center x 5, got %f", c.X)
	}
	if u.LongestAxis() != 0 {
		t.Errorf("expected longest axis 0, got %d", u.LongestAxis())
	}
}

func TestAABBIntersects(t *testing.T) {
	a := NewAABB(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1})
	touching := NewAABB(math.Vec3{X: 1}, math.Vec3{X: 2, Y: 1, Z: 1})
	apart := NewAABB(math.Vec3{X: 3}, math.Vec3{X: 4, Y: 1, Z: 1})

	if !a.Intersects(touching) {
		t.Error("expected touching boxes to intersect")
	}
	if a.Intersects(apart) {
		t.Error("expected separated boxes not to intersect")
	}
}

func TestAABBTransformRotated(t *testing.T) {
	box := NewAABB(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1})
	rot := math.QuatFromAxisAngle(math.UnitY, math32.Pi/4).ToMat4()
	m := math.Translate(10, 0, 0).Mul(rot)

	out := box.Transform(m)
	want := math32.Sqrt(2)
	if math32.Abs(out.Max.X-(10+want)) > 1e-4 || math32.Abs(out.Min.X-(10-want)) > 1e-4 {
		t.Errorf("expected x range [%f, %f], got [%f, %f]", 10-want, 10+want, out.Min.X, out.Max.X)
	}
	if math32.Abs(out.Max.Y-1) > 1e-4 {
		t.Errorf("expected y max 1, got %f", out.Max.Y)
	}
}
