package interaction

import (
	"github.com/Faultbox/partview/internal/engine/picking"
	"github.com/Faultbox/partview/pkg/math"
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// PointerEvent is a 2D pointer event in screen coordinates.
type PointerEvent struct {
	Position math.Vec2
	Button   MouseButton
}

// MouseEvent3D is a pointer event with its world-space ray.
// Info is nil when the ray hit nothing or no hit test was run.
type MouseEvent3D struct {
	PointerEvent
	Ray  picking.Ray
	Info *picking.IntersectInfo
}
