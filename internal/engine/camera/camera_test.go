package camera

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/partview/pkg/math"
)

func near(a, b float32) bool {
	return math32.Abs(a-b) < 1e-3
}

func TestOrbitPosition(t *testing.T) {
	c := NewOrbitCamera()
	c.RotationX = 0
	c.RotationY = 0
	c.Distance = 10

	pos := c.Position()
	if !near(pos.X, 0) || !near(pos.Y, 0) || !near(pos.Z, 10) {
		t.Errorf("expected (0,0,10), got %+v", pos)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 100000)
	if c.RotationX != c.MaxPitch {
		t.Errorf("expected pitch clamped to %f, got %f", c.MaxPitch, c.RotationX)
	}
	c.HandleDrag(0, -100000)
	if c.RotationX != c.MinPitch {
		t.Errorf("expected pitch clamped to %f, got %f", c.MinPitch, c.RotationX)
	}
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewOrbitCamera()
	for i := 0; i < 200; i++ {
		c.HandleZoom(1)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("expected distance %f, got %f", c.MinDistance, c.Distance)
	}
}

func TestRayForScreenCenter(t *testing.T) {
	c := NewOrbitCamera()
	c.RotationX = 0
	c.RotationY = 0
	c.Distance = 20
	v := NewWorldView(c, 45, 0.1, 1000, 800, 600)

	r := v.RayForScreenPoint(math.Vec2{X: 400, Y: 300})
	if !near(r.Direction.X, 0) || !near(r.Direction.Y, 0) || !near(r.Direction.Z, -1) {
		t.Errorf("expected ray toward -Z, got %+v", r.Direction)
	}
	if !near(r.Origin.X, 0) || !near(r.Origin.Y, 0) {
		t.Errorf("expected ray on the view axis, got %+v", r.Origin)
	}
}

func TestRayForScreenTopIsUp(t *testing.T) {
	c := NewOrbitCamera()
	c.RotationX = 0
	c.RotationY = 0
	v := NewWorldView(c, 45, 0.1, 1000, 800, 600)

	r := v.RayForScreenPoint(math.Vec2{X: 400, Y: 0})
	if r.Direction.Y <= 0 {
		t.Errorf("expected the top edge ray to point up, got %+v", r.Direction)
	}
}

func TestInverseViewRecoversPosition(t *testing.T) {
	c := NewOrbitCamera()
	v := NewWorldView(c, 45, 0.1, 1000, 800, 600)

	eye := v.InverseViewMatrix().TransformPoint(math.Vec3{})
	pos := c.Position()
	if !near(eye.X, pos.X) || !near(eye.Y, pos.Y) || !near(eye.Z, pos.Z) {
		t.Errorf("expected eye %+v, got %+v", pos, eye)
	}
}
