// Package editor provides scene edit tools built on interaction volumes.
package editor

import (
	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/partview/internal/engine/interaction"
	"github.com/Faultbox/partview/internal/engine/picking"
	"github.com/Faultbox/partview/internal/engine/undo"
	"github.com/Faultbox/partview/internal/logger"
	"github.com/Faultbox/partview/pkg/math"
)

// DefaultHandleSize is the arrow scale in world units.
const DefaultHandleSize = 1.0

// minScale keeps uniform scaling from collapsing an item.
const minScale = 0.1

// Host is the interaction layer the tool installs its volumes into.
type Host interface {
	Registry() *interaction.Registry
	AddTransformSnapshot(original math.Mat4) bool
}

// TranslateTool moves the selected item along world axes and scales it
// uniformly. Each gesture becomes one undo step.
type TranslateTool struct {
	// SnapGridDistance rounds moved coordinates to multiples of itself. Zero disables snapping.
	SnapGridDistance float32
	HandleSize       float32

	host    Host
	target  undo.Transformable
	volumes [handleCount]*interaction.Volume
	parts   [handleCount][]part
	drag    drag
	log     *zap.Logger
}

// drag holds the state of one gesture, from Down to Up.
type drag struct {
	active      bool
	handle      Handle
	original    math.Mat4
	origin      math.Vec3
	planeNormal math.Vec3
	start       float32 // axis coordinate, or radius for HandleUniform
}

// NewTranslateTool creates an inactive tool.
func NewTranslateTool(host Host) *TranslateTool {
	return &TranslateTool{
		HandleSize: DefaultHandleSize,
		host:       host,
		log:        logger.Named("editor"),
	}
}

// Active reports whether the tool's volumes are installed.
func (t *TranslateTool) Active() bool { return t.target != nil }

// Target returns the item being edited, or nil.
func (t *TranslateTool) Target() undo.Transformable { return t.target }

// Dragging reports whether a gesture is in progress.
func (t *TranslateTool) Dragging() bool { return t.drag.active }

// Volume returns the volume of handle h while active.
func (t *TranslateTool) Volume(h Handle) *interaction.Volume {
	if h < 0 || h >= handleCount {
		return nil
	}
	return t.volumes[h]
}

// Activate installs the tool's volumes around target. A previous target is released first.
func (t *TranslateTool) Activate(target undo.Transformable) {
	t.Deactivate()
	if target == nil {
		return
	}
	t.target = target

	size := t.HandleSize
	if size <= 0 {
		size = DefaultHandleSize
	}

	reg := t.host.Registry()
	for h := HandleX; h < handleCount; h++ {
		var v *interaction.Volume
		if h == HandleUniform {
			r := knobRadius * size
			v = interaction.NewSphereVolume(h.String(), r)
			t.parts[h] = []part{newPart(h.String(), math.Vec3{}, math.Vec3{X: 2 * r, Y: 2 * r, Z: 2 * r})}
		} else {
			t.parts[h] = arrowParts(h, size)
			v = interaction.NewCompositeVolume(h.String(), traceables(t.parts[h])...)
		}
		v.Handlers = t.handlers(h)
		t.volumes[h] = v
		reg.Add(v)
	}
	t.Sync()

	t.log.Debug("tool activated", zap.Float32("handle_size", size))
}

// Deactivate removes the tool's volumes. An unfinished gesture is rolled back.
func (t *TranslateTool) Deactivate() {
	if t.target == nil {
		return
	}
	if t.drag.active {
		t.target.SetTransform(t.drag.original)
		t.log.Debug("gesture cancelled", zap.Stringer("handle", t.drag.handle))
	}
	reg := t.host.Registry()
	for h, v := range t.volumes {
		if v != nil {
			reg.Remove(v)
		}
		t.volumes[h] = nil
		t.parts[h] = nil
	}
	t.target = nil
	t.drag = drag{}
	t.log.Debug("tool deactivated")
}

// Sync moves the handles to the target's current position.
// Call it after the target changed outside the tool, e.g. by undo.
func (t *TranslateTool) Sync() {
	if t.target == nil {
		return
	}
	p := t.target.Transform().Translation()
	m := math.Translate(p.X, p.Y, p.Z)
	for _, v := range t.volumes {
		if v != nil {
			v.SetTransform(m)
		}
	}
}

func (t *TranslateTool) handlers(h Handle) interaction.Handlers {
	return interaction.Handlers{
		Down: func(_ *interaction.Volume, e interaction.MouseEvent3D) { t.begin(h, e) },
		Move: func(_ *interaction.Volume, e interaction.MouseEvent3D) { t.update(h, e) },
		Up:   func(_ *interaction.Volume, e interaction.MouseEvent3D) { t.end(h) },
		Draw: func(v *interaction.Volume, p interaction.DrawPass) { t.draw(h, v, p) },
	}
}

func (t *TranslateTool) begin(h Handle, e interaction.MouseEvent3D) {
	if t.target == nil {
		return
	}
	// An Up lost while the layer was suppressed leaves the previous gesture open.
	if t.drag.active {
		t.end(t.drag.handle)
	}
	original := t.target.Transform()
	origin := original.Translation()
	normal := dragPlaneNormal(h, e.Ray.Direction)

	p, ok := rayOnPlane(e.Ray, origin, normal)
	if !ok {
		return
	}

	d := drag{
		active:      true,
		handle:      h,
		original:    original,
		origin:      origin,
		planeNormal: normal,
	}
	if h == HandleUniform {
		d.start = p.Distance(origin)
	} else {
		d.start = p.Sub(origin).Dot(h.Axis())
	}
	t.drag = d
}

func (t *TranslateTool) update(h Handle, e interaction.MouseEvent3D) {
	if !t.drag.active || t.drag.handle != h || t.target == nil {
		return
	}
	p, ok := rayOnPlane(e.Ray, t.drag.origin, t.drag.planeNormal)
	if !ok {
		return
	}

	if h == HandleUniform {
		t.target.SetTransform(t.scaled(p))
	} else {
		t.target.SetTransform(t.translated(h, p))
	}
	t.Sync()
}

func (t *TranslateTool) end(h Handle) {
	if !t.drag.active || t.drag.handle != h {
		return
	}
	original := t.drag.original
	t.drag = drag{}
	if t.host.AddTransformSnapshot(original) {
		t.log.Debug("edit recorded", zap.Stringer("handle", h))
	}
}

func (t *TranslateTool) translated(h Handle, p math.Vec3) math.Mat4 {
	axis := h.Axis()
	delta := p.Sub(t.drag.origin).Dot(axis) - t.drag.start
	pos := t.drag.origin.Add(axis.Scale(delta))
	if t.SnapGridDistance > 0 {
		pos = snapAxis(pos, int(h), t.SnapGridDistance)
	}
	return t.drag.original.WithTranslation(pos)
}

func (t *TranslateTool) scaled(p math.Vec3) math.Mat4 {
	if t.drag.start < 1e-6 {
		return t.drag.original
	}
	f := p.Distance(t.drag.origin) / t.drag.start
	if f < minScale {
		f = minScale
	}
	return t.drag.original.Mul(math.Scale(f, f, f))
}

func (t *TranslateTool) draw(h Handle, v *interaction.Volume, p interaction.DrawPass) {
	if p.Canvas == nil {
		return
	}
	color := handleColors[h]
	if v.MouseOver || (t.drag.active && t.drag.handle == h) {
		color = highlightColor
	}
	base := v.TotalTransform()
	for _, pt := range t.parts[h] {
		p.Canvas.DrawMesh(pt.mesh, base.Mul(math.Translate(pt.center.X, pt.center.Y, pt.center.Z)), color)
	}
}

// dragPlaneNormal picks the plane a handle is dragged in. Axis handles use
// the plane containing the axis that faces the viewer most; the uniform
// handle uses the screen plane.
func dragPlaneNormal(h Handle, viewDir math.Vec3) math.Vec3 {
	if h == HandleUniform {
		return viewDir.Neg().Normalize()
	}
	axis := h.Axis()
	side := viewDir.Cross(axis)
	if side.Length() < 1e-6 {
		return viewDir.Neg().Normalize()
	}
	return axis.Cross(side).Normalize()
}

// rayOnPlane returns where r crosses the plane through point.
func rayOnPlane(r picking.Ray, point, normal math.Vec3) (math.Vec3, bool) {
	d, ok := r.IntersectPlane(point, normal)
	if !ok {
		return math.Vec3{}, false
	}
	return r.At(d), true
}

// snapAxis rounds component i of p to the nearest multiple of grid.
func snapAxis(p math.Vec3, i int, grid float32) math.Vec3 {
	round := func(v float32) float32 { return math32.Floor(v/grid+0.5) * grid }
	switch i {
	case 0:
		p.X = round(p.X)
	case 1:
		p.Y = round(p.Y)
	case 2:
		p.Z = round(p.Z)
	}
	return p
}
