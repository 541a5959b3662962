package interaction

import (
	"github.com/Faultbox/partview/internal/engine/bvh"
	"github.com/Faultbox/partview/internal/engine/picking"
	"github.com/Faultbox/partview/pkg/math"
)

// Kind tags the shape family of a volume.
type Kind int

const (
	KindCustom Kind = iota
	KindBox
	KindSphere
	KindComposite
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindSphere:
		return "sphere"
	case KindComposite:
		return "composite"
	default:
		return "custom"
	}
}

// Handlers is the capability table of a volume. Nil entries are skipped.
type Handlers struct {
	Down func(v *Volume, e MouseEvent3D)
	Move func(v *Volume, e MouseEvent3D)
	Up   func(v *Volume, e MouseEvent3D)
	Draw func(v *Volume, p DrawPass)
}

// Volume is a named, transformable region that receives 3D pointer events.
type Volume struct {
	Name     string
	Kind     Kind
	Handlers Handlers

	// CaptureEligible volumes take exclusive pointer routing after a hit
	// pointer-down. Others still receive the down event.
	CaptureEligible bool

	MouseOver     bool
	MouseMoveInfo *picking.IntersectInfo

	collision picking.Traceable
	transform math.Mat4
}

// NewVolume creates a volume with an identity transform.
// A nil collision body keeps the volume out of hit testing.
func NewVolume(name string, kind Kind, collision picking.Traceable) *Volume {
	return &Volume{
		Name:            name,
		Kind:            kind,
		CaptureEligible: true,
		collision:       collision,
		transform:       math.Identity(),
	}
}

// NewBoxVolume creates a box volume of the given size centered on its origin.
func NewBoxVolume(name string, size math.Vec3) *Volume {
	return NewVolume(name, KindBox, bvh.NewBoxSize(math.Vec3{}, size))
}

// NewSphereVolume creates a sphere volume centered on its origin.
func NewSphereVolume(name string, radius float32) *Volume {
	return NewVolume(name, KindSphere, bvh.NewSphere(math.Vec3{}, radius))
}

// NewCompositeVolume creates a volume whose collision is a hierarchy of parts.
func NewCompositeVolume(name string, parts ...picking.Traceable) *Volume {
	var collision picking.Traceable
	if h := bvh.Build(parts); h != nil {
		collision = h
	}
	return NewVolume(name, KindComposite, collision)
}

// CollisionVolume returns the collision body in local space, or nil.
func (v *Volume) CollisionVolume() picking.Traceable {
	return v.collision
}

// SetCollisionVolume replaces the collision body.
func (v *Volume) SetCollisionVolume(t picking.Traceable) {
	v.collision = t
}

// TotalTransform returns the local-to-world matrix.
func (v *Volume) TotalTransform() math.Mat4 {
	return v.transform
}

// SetTransform sets the local-to-world matrix.
func (v *Volume) SetTransform(m math.Mat4) {
	v.transform = m
}

// WorldBounds returns the collision bounds in world space.
func (v *Volume) WorldBounds() (picking.AABB, bool) {
	if v.collision == nil {
		return picking.AABB{}, false
	}
	return v.collision.Bounds().Transform(v.transform), true
}

func (v *Volume) mouseDown(e MouseEvent3D) {
	if v.Handlers.Down != nil {
		v.Handlers.Down(v, e)
	}
}

func (v *Volume) mouseMove(e MouseEvent3D) {
	if v.Handlers.Move != nil {
		v.Handlers.Move(v, e)
	}
}

func (v *Volume) mouseUp(e MouseEvent3D) {
	if v.Handlers.Up != nil {
		v.Handlers.Up(v, e)
	}
}

func (v *Volume) draw(p DrawPass) {
	if v.Handlers.Draw != nil {
		v.Handlers.Draw(v, p)
	}
}
