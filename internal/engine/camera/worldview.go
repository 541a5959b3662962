package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/partview/internal/engine/picking"
	"github.com/Faultbox/partview/pkg/math"
)

// WorldView combines an orbit camera with a perspective projection over a
// viewport measured in window pixels (origin top-left).
type WorldView struct {
	Orbit *OrbitCamera

	FOV  float32 // vertical field of view, degrees
	Near float32
	Far  float32

	width  float32
	height float32
}

// NewWorldView creates a view of the given viewport size.
func NewWorldView(orbit *OrbitCamera, fov, near, far float32, width, height int) *WorldView {
	v := &WorldView{Orbit: orbit, FOV: fov, Near: near, Far: far}
	v.SetViewport(width, height)
	return v
}

// SetViewport updates the viewport size after a resize.
func (v *WorldView) SetViewport(width, height int) {
	v.width = float32(max(width, 1))
	v.height = float32(max(height, 1))
}

// Viewport returns the viewport size in pixels.
func (v *WorldView) Viewport() (width, height float32) {
	return v.width, v.height
}

// ProjectionMatrix returns the perspective projection.
func (v *WorldView) ProjectionMatrix() math.Mat4 {
	return math.Perspective(v.FOV*math32.Pi/180, v.width/v.height, v.Near, v.Far)
}

// ViewMatrix returns the world-to-eye matrix.
func (v *WorldView) ViewMatrix() math.Mat4 {
	return v.Orbit.ViewMatrix()
}

// InverseViewMatrix returns the eye-to-world matrix.
func (v *WorldView) InverseViewMatrix() math.Mat4 {
	return v.ViewMatrix().Inverse()
}

// RayForScreenPoint returns the world ray through a window pixel.
func (v *WorldView) RayForScreenPoint(p math.Vec2) picking.Ray {
	invViewProj := v.ProjectionMatrix().Mul(v.ViewMatrix()).Inverse()
	return picking.ScreenToRay(p.X, p.Y, v.width, v.height, invViewProj)
}
