// Package interaction turns 2D pointer events into 3D interactions with
// transformable volumes and draws those volumes as an overlay pass.
package interaction

import (
	"slices"

	"go.uber.org/zap"

	"github.com/Faultbox/partview/internal/engine/lighting"
	"github.com/Faultbox/partview/internal/engine/picking"
	"github.com/Faultbox/partview/internal/engine/rendercontext"
	"github.com/Faultbox/partview/internal/engine/undo"
	"github.com/Faultbox/partview/internal/logger"
	"github.com/Faultbox/partview/pkg/math"
)

// WorldView is the camera the layer casts rays from and draws with.
type WorldView interface {
	rendercontext.View
	RayForScreenPoint(p math.Vec2) picking.Ray
}

// Scene reports whether an item is selected. Volumes are only hit tested
// while a selection exists.
type Scene interface {
	HasSelection() bool
}

// State is the pointer state of a layer.
type State int

const (
	Idle State = iota
	HoverTracking
	Captured
)

func (s State) String() string {
	switch s {
	case HoverTracking:
		return "hover"
	case Captured:
		return "captured"
	default:
		return "idle"
	}
}

// Layer routes pointer events to the volumes of a registry.
type Layer struct {
	world    WorldView
	scene    Scene
	registry *Registry
	recorder *undo.Recorder
	guard    *rendercontext.Guard
	rig      lighting.Rig
	bounds   math.Rect

	state          State
	suppressed     bool
	captured       int
	capturedVolume *Volume
	selected       *Volume
	hovered        *Volume

	drawEnabled   bool
	drawListeners []DrawListener

	log *zap.Logger
}

// NewLayer creates a layer. recorder may be nil when edits are not recorded.
func NewLayer(world WorldView, scene Scene, registry *Registry, recorder *undo.Recorder, guard *rendercontext.Guard) *Layer {
	if registry == nil {
		registry = NewRegistry(nil)
	}
	return &Layer{
		world:       world,
		scene:       scene,
		registry:    registry,
		recorder:    recorder,
		guard:       guard,
		rig:         lighting.DefaultRig(),
		captured:    -1,
		drawEnabled: true,
		log:         logger.Named("interaction"),
	}
}

// Registry returns the volumes routed by the layer.
func (l *Layer) Registry() *Registry { return l.registry }

// State returns the pointer state.
func (l *Layer) State() State { return l.state }

// SelectedVolume returns the volume that accepted the current pointer-down.
func (l *Layer) SelectedVolume() *Volume { return l.selected }

// HoveredVolume returns the volume under the pointer at the last move.
func (l *Layer) HoveredVolume() *Volume { return l.hovered }

// Suppressed reports whether pointer handling is disabled.
func (l *Layer) Suppressed() bool { return l.suppressed }

// SetSuppressed disables all hit testing and dispatch while set.
// A capture in progress is kept until the next unsuppressed pointer-up.
func (l *Layer) SetSuppressed(v bool) { l.suppressed = v }

// SetBounds sets the screen region owned by the layer. Moves outside it are
// ignored. An empty rect accepts every position.
func (l *Layer) SetBounds(r math.Rect) { l.bounds = r }

// SetLighting replaces the rig used by the overlay pass.
func (l *Layer) SetLighting(rig lighting.Rig) { l.rig = rig }

// SetDrawEnabled toggles the overlay pass.
func (l *Layer) SetDrawEnabled(v bool) { l.drawEnabled = v }

// OnPointerDown hit tests e and captures the volume it lands on.
func (l *Layer) OnPointerDown(e PointerEvent) {
	if l.suppressed {
		return
	}

	ray := l.world.RayForScreenPoint(e.Position)
	idx, info, ok := l.findHit(ray)
	if !ok {
		l.clearCapture()
		l.selected = nil
		l.state = Idle
		return
	}

	v := l.registry.At(idx)
	if v.CaptureEligible {
		l.captured = idx
		l.capturedVolume = v
		l.selected = v
		l.state = Captured
	} else {
		l.clearCapture()
		l.selected = nil
		l.state = Idle
	}
	v.mouseDown(MouseEvent3D{PointerEvent: e, Ray: ray, Info: &info})
}

// OnPointerMove routes e to the captured volume, or updates hover state.
func (l *Layer) OnPointerMove(e PointerEvent) {
	if l.suppressed || !l.withinBounds(e.Position) {
		return
	}

	ray := l.world.RayForScreenPoint(e.Position)

	if l.captured != -1 {
		if v, ok := l.capturedVolumeChecked(); ok {
			v.mouseMove(MouseEvent3D{PointerEvent: e, Ray: ray})
		}
		return
	}

	idx, info, hit := l.findHit(ray)
	ev := MouseEvent3D{PointerEvent: e, Ray: ray}
	if hit {
		ev.Info = &info
	}

	l.hovered = nil
	for i, v := range l.registry.Volumes() {
		if hit && i == idx {
			v.MouseOver = true
			v.MouseMoveInfo = ev.Info
			l.hovered = v
		} else {
			v.MouseOver = false
			v.MouseMoveInfo = nil
		}
		v.mouseMove(ev)
	}
	l.state = HoverTracking
}

// OnPointerUp completes a gesture and clears capture and selection.
func (l *Layer) OnPointerUp(e PointerEvent) {
	if l.suppressed {
		return
	}

	ray := l.world.RayForScreenPoint(e.Position)
	idx, info, hit := l.findHit(ray)
	ev := MouseEvent3D{PointerEvent: e, Ray: ray}
	if hit {
		ev.Info = &info
	}

	if l.captured != -1 {
		if v, ok := l.capturedVolumeChecked(); ok {
			v.mouseUp(ev)
		}
	} else if hit {
		l.registry.At(idx).mouseUp(ev)
	}

	l.clearCapture()
	l.selected = nil
	l.state = Idle
}

// OnPointerLeave clears hover state when the pointer leaves the layer.
func (l *Layer) OnPointerLeave() {
	for _, v := range l.registry.Volumes() {
		v.MouseOver = false
		v.MouseMoveInfo = nil
	}
	l.hovered = nil
	if l.state == HoverTracking {
		l.state = Idle
	}
}

// AddTransformSnapshot records an undo step when the selected item moved
// away from original during the gesture.
func (l *Layer) AddTransformSnapshot(original math.Mat4) bool {
	if l.recorder == nil {
		return false
	}
	return l.recorder.CaptureIfChanged(original)
}

// AddDrawListener registers overlay content drawn by Render.
func (l *Layer) AddDrawListener(d DrawListener) {
	l.drawListeners = append(l.drawListeners, d)
}

// RemoveDrawListener unregisters d.
func (l *Layer) RemoveDrawListener(d DrawListener) {
	if i := slices.Index(l.drawListeners, d); i >= 0 {
		l.drawListeners = slices.Delete(l.drawListeners, i, i+1)
	}
}

// SetRenderTarget makes the layer draw after target's own content.
func (l *Layer) SetRenderTarget(target RenderTarget) {
	target.AddAfterDrawListener(l)
}

// AfterDraw implements AfterDrawListener.
func (l *Layer) AfterDraw(rect math.Rect) error {
	return l.Render(rect)
}

// Render draws the overlay pass into rect.
func (l *Layer) Render(rect math.Rect) error {
	if !l.drawEnabled || l.guard == nil {
		return nil
	}
	return l.guard.Do(l.world, rect, l.rig, func() error {
		p := DrawPass{Canvas: l.guard.Canvas(), View: l.world, Rect: rect}
		for _, d := range l.drawListeners {
			d.DrawOpaque(p)
		}
		for _, v := range l.registry.Volumes() {
			v.draw(p)
		}
		for _, d := range l.drawListeners {
			d.DrawTransparent(p)
		}
		return nil
	})
}

func (l *Layer) findHit(ray picking.Ray) (int, picking.IntersectInfo, bool) {
	if l.scene == nil || !l.scene.HasSelection() {
		return -1, picking.IntersectInfo{}, false
	}
	return l.registry.FindHit(ray)
}

func (l *Layer) withinBounds(p math.Vec2) bool {
	return l.bounds.Empty() || l.bounds.Contains(p.X, p.Y)
}

// capturedVolumeChecked returns the captured volume if the registry still
// holds it at the captured index. A stale capture is dropped.
func (l *Layer) capturedVolumeChecked() (*Volume, bool) {
	v := l.registry.At(l.captured)
	if v != nil && v == l.capturedVolume {
		return v, true
	}
	l.log.Warn("dropping stale capture",
		zap.Int("index", l.captured),
		zap.Int("volumes", l.registry.Len()),
	)
	l.clearCapture()
	l.selected = nil
	l.state = Idle
	return nil, false
}

func (l *Layer) clearCapture() {
	l.captured = -1
	l.capturedVolume = nil
	if l.state == Captured {
		l.state = Idle
	}
}
