package editor

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/partview/internal/engine/bvh"
	"github.com/Faultbox/partview/internal/engine/model"
	"github.com/Faultbox/partview/internal/engine/picking"
	"github.com/Faultbox/partview/pkg/math"
)

// Handle identifies one grip of the translate tool.
type Handle int

const (
	HandleX Handle = iota
	HandleY
	HandleZ
	HandleUniform
	handleCount
)

func (h Handle) String() string {
	switch h {
	case HandleX:
		return "translate-x"
	case HandleY:
		return "translate-y"
	case HandleZ:
		return "translate-z"
	case HandleUniform:
		return "scale-uniform"
	default:
		return "unknown"
	}
}

// Axis returns the world axis moved by the handle, or zero for HandleUniform.
func (h Handle) Axis() math.Vec3 {
	switch h {
	case HandleX:
		return math.UnitX
	case HandleY:
		return math.UnitY
	case HandleZ:
		return math.UnitZ
	default:
		return math.Vec3{}
	}
}

var handleColors = [handleCount][4]float32{
	HandleX:       {0.9, 0.2, 0.2, 1},
	HandleY:       {0.2, 0.8, 0.2, 1},
	HandleZ:       {0.25, 0.4, 0.95, 1},
	HandleUniform: {0.85, 0.85, 0.85, 1},
}

var highlightColor = [4]float32{1, 0.85, 0.1, 1}

// Arrow proportions relative to the handle size.
const (
	shaftOffset = 0.5
	shaftLength = 3.0
	shaftWidth  = 0.15
	tipLength   = 0.6
	tipWidth    = 0.45
	knobRadius  = 0.4
)

// part is one box of a handle, placed in the handle's local space.
type part struct {
	center math.Vec3
	size   math.Vec3
	body   *bvh.Box
	mesh   *model.Mesh
}

func newPart(name string, center, size math.Vec3) part {
	return part{
		center: center,
		size:   size,
		body:   bvh.NewBoxSize(center, size),
		mesh:   model.Cube(name, size.X, size.Y, size.Z).Untextured(),
	}
}

// axisRotation turns the +X arrow layout onto the handle's axis.
func axisRotation(h Handle) math.Quat {
	switch h {
	case HandleY:
		return math.QuatFromAxisAngle(math.UnitZ, math32.Pi/2)
	case HandleZ:
		return math.QuatFromAxisAngle(math.UnitY, -math32.Pi/2)
	default:
		return math.QuatIdentity()
	}
}

// arrowParts builds the shaft and tip boxes of an axis arrow. Parts stay
// axis aligned in the handle's space so each leaf box is its own world box.
func arrowParts(h Handle, size float32) []part {
	rot := axisRotation(h)
	place := func(name string, center, extent math.Vec3) part {
		return newPart(name, rot.Rotate(center), abs(rot.Rotate(extent)))
	}

	shaftCenter := (shaftOffset + shaftLength/2) * size
	tipCenter := (shaftOffset + shaftLength + tipLength/2) * size
	return []part{
		place(h.String()+"-shaft",
			math.Vec3{X: shaftCenter},
			math.Vec3{X: shaftLength * size, Y: shaftWidth * size, Z: shaftWidth * size}),
		place(h.String()+"-tip",
			math.Vec3{X: tipCenter},
			math.Vec3{X: tipLength * size, Y: tipWidth * size, Z: tipWidth * size}),
	}
}

// tipDistance is the distance from the tool origin to the middle of an arrow tip.
func tipDistance(size float32) float32 {
	return (shaftOffset + shaftLength + tipLength/2) * size
}

func traceables(parts []part) []picking.Traceable {
	out := make([]picking.Traceable, len(parts))
	for i, p := range parts {
		out[i] = p.body
	}
	return out
}

func abs(v math.Vec3) math.Vec3 {
	return math.Vec3{X: math32.Abs(v.X), Y: math32.Abs(v.Y), Z: math32.Abs(v.Z)}
}
