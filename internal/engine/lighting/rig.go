// Package lighting describes the fixed two-light setup used by 3D overlay passes.
package lighting

import "github.com/Faultbox/partview/pkg/math"

// Color is an RGBA light intensity.
type Color [4]float32

// Gray returns an opaque gray light of the given intensity.
func Gray(v float32) Color {
	return Color{v, v, v, 1}
}

// Light is a directional light.
type Light struct {
	Diffuse   Color
	Specular  Color
	Direction math.Vec3 // unit length once built by NewRig
}

// Position returns the light position in homogeneous form (w=0, directional).
func (l Light) Position() [4]float32 {
	return [4]float32{l.Direction.X, l.Direction.Y, l.Direction.Z, 0}
}

// Rig is an immutable lighting configuration passed to every guarded pass.
// Build it with NewRig so directions are normalized.
type Rig struct {
	Ambient Color
	Lights  [2]Light
}

// NewRig creates a rig, normalizing both light directions.
func NewRig(ambient Color, key, fill Light) Rig {
	key.Direction = key.Direction.Normalize()
	fill.Direction = fill.Direction.Normalize()
	return Rig{Ambient: ambient, Lights: [2]Light{key, fill}}
}

// DefaultRig returns the standard key/fill setup.
func DefaultRig() Rig {
	return NewRig(
		Gray(0.2),
		Light{Diffuse: Gray(0.7), Specular: Gray(0.5), Direction: math.Vec3{X: -1, Y: -1, Z: 1}},
		Light{Diffuse: Gray(0.5), Specular: Gray(0.3), Direction: math.Vec3{X: 1, Y: 1, Z: 1}},
	)
}
