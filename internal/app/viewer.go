package app

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/partview/internal/config"
	"github.com/Faultbox/partview/internal/editor"
	"github.com/Faultbox/partview/internal/engine/camera"
	"github.com/Faultbox/partview/internal/engine/debug"
	"github.com/Faultbox/partview/internal/engine/input"
	"github.com/Faultbox/partview/internal/engine/interaction"
	"github.com/Faultbox/partview/internal/engine/model"
	"github.com/Faultbox/partview/internal/engine/orientation"
	"github.com/Faultbox/partview/internal/engine/picking"
	"github.com/Faultbox/partview/internal/engine/rendercontext"
	"github.com/Faultbox/partview/internal/engine/scene"
	"github.com/Faultbox/partview/internal/engine/undo"
	"github.com/Faultbox/partview/internal/logger"
	"github.com/Faultbox/partview/pkg/math"
)

// Viewer wires the scene, camera, interaction layer and edit tool together.
// It owns no window; App feeds it input events and asks it to draw.
type Viewer struct {
	scene   *scene.Scene
	view    *camera.WorldView
	guard   *rendercontext.Guard
	buffer  *undo.Buffer
	layer   *interaction.Layer
	tool    *editor.TranslateTool
	pass    *scenePass
	widget  *orientation.Widget
	bounds  *debug.VolumeBounds
	orbitOn bool

	showBounds bool

	width, height int
	log           *zap.Logger
}

// NewViewer creates a viewer drawing sc into target.
func NewViewer(cfg *config.Config, target rendercontext.Target, sc *scene.Scene) *Viewer {
	v := &Viewer{
		scene:  sc,
		guard:  rendercontext.NewGuard(target),
		buffer: undo.NewBuffer(cfg.Undo.Capacity),
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
		log:    logger.Named("app"),
	}

	orbit := camera.NewOrbitCamera()
	orbit.Distance = cfg.Camera.Distance
	orbit.DragSensitivity = cfg.Camera.DragSensitivity
	orbit.ZoomSensitivity = cfg.Camera.ZoomSensitivity
	if b := sceneBounds(sc); !b.IsEmpty() {
		orbit.FitToBounds(b.Min, b.Max)
	}
	v.view = camera.NewWorldView(orbit, cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far, v.width, v.height)

	rig := cfg.Lighting.Rig()
	recorder := undo.NewRecorder(v.buffer, sc, func() {
		v.log.Debug("edit recorded", zap.Int("undo_depth", v.buffer.Len()))
	})

	v.layer = interaction.NewLayer(v.view, sc, nil, recorder, v.guard)
	v.layer.SetLighting(rig)
	v.layer.SetBounds(math.Rect{W: float32(v.width), H: float32(v.height)})

	v.tool = editor.NewTranslateTool(v.layer)
	v.tool.SnapGridDistance = cfg.Interaction.SnapGridDistance
	v.tool.HandleSize = cfg.Interaction.HandleSize

	v.bounds = debug.NewVolumeBounds(v.layer.Registry())
	v.SetShowVolumeBounds(cfg.Debug.ShowVolumeBounds)

	v.pass = &scenePass{guard: v.guard, view: v.view, scene: sc, rig: rig}
	v.layer.SetRenderTarget(v.pass)

	if cfg.Orientation.Enabled {
		v.widget = orientation.New(v.view, v.guard)
		v.widget.Size = cfg.Orientation.Size
		v.widget.Distance = cfg.Orientation.Distance
		v.widget.SetLighting(rig)
	}

	sc.OnSelectionChanged(v.selectionChanged)
	return v
}

// InitTextures uploads the orientation labels.
func (v *Viewer) InitTextures(uploader orientation.TextureUploader) error {
	if v.widget == nil {
		return nil
	}
	return v.widget.Init(uploader)
}

// Scene returns the edited scene.
func (v *Viewer) Scene() *scene.Scene { return v.scene }

// Layer returns the interaction layer.
func (v *Viewer) Layer() *interaction.Layer { return v.layer }

// Tool returns the translate tool.
func (v *Viewer) Tool() *editor.TranslateTool { return v.tool }

// History returns the undo buffer.
func (v *Viewer) History() *undo.Buffer { return v.buffer }

// View returns the main camera view.
func (v *Viewer) View() *camera.WorldView { return v.view }

// Size returns the viewport size in pixels.
func (v *Viewer) Size() (width, height int) { return v.width, v.height }

// ShowVolumeBounds reports whether the volume bounds overlay is drawn.
func (v *Viewer) ShowVolumeBounds() bool { return v.showBounds }

// SetShowVolumeBounds toggles the volume bounds overlay.
func (v *Viewer) SetShowVolumeBounds(show bool) {
	if show == v.showBounds {
		return
	}
	v.showBounds = show
	if show {
		v.layer.AddDrawListener(v.bounds)
	} else {
		v.layer.RemoveDrawListener(v.bounds)
	}
}

// Resize updates the viewport after a window resize.
func (v *Viewer) Resize(width, height int) {
	v.width, v.height = width, height
	v.view.SetViewport(width, height)
	v.layer.SetBounds(math.Rect{W: float32(width), H: float32(height)})
}

// HandleEvent applies one input event. It returns true when the viewer
// should quit.
func (v *Viewer) HandleEvent(e input.Event) bool {
	switch e.Type {
	case input.EventQuit:
		return true

	case input.EventWindowResize:
		v.Resize(e.Width, e.Height)

	case input.EventMouseDown:
		switch e.Button {
		case input.ButtonLeft:
			v.pointerDown(pointer(e))
		case input.ButtonRight:
			v.orbitOn = true
			v.layer.SetSuppressed(true)
		}

	case input.EventMouseMove:
		if v.orbitOn {
			v.view.Orbit.HandleDrag(float32(e.RelX), float32(e.RelY))
			return false
		}
		v.layer.OnPointerMove(pointer(e))

	case input.EventMouseUp:
		switch e.Button {
		case input.ButtonLeft:
			v.layer.OnPointerUp(pointer(e))
		case input.ButtonRight:
			v.orbitOn = false
			v.layer.SetSuppressed(false)
		}

	case input.EventMouseWheel:
		v.view.Orbit.HandleZoom(e.Wheel)

	case input.EventMouseLeave:
		v.layer.OnPointerLeave()

	case input.EventKeyDown:
		return v.keyDown(e)
	}
	return false
}

func (v *Viewer) keyDown(e input.Event) bool {
	switch {
	case e.Key == sdl.SCANCODE_ESCAPE:
		if v.scene.HasSelection() {
			v.scene.ClearSelection()
			return false
		}
		return true
	case e.Key == sdl.SCANCODE_Z && e.Ctrl():
		v.Undo()
	case e.Key == sdl.SCANCODE_Y && e.Ctrl():
		v.Redo()
	case e.Key == sdl.SCANCODE_B:
		v.SetShowVolumeBounds(!v.showBounds)
	}
	return false
}

// Undo reverts the last edit and moves the tool handles with it.
func (v *Viewer) Undo() bool {
	if !v.buffer.Undo() {
		return false
	}
	v.tool.Sync()
	return true
}

// Redo reapplies the last undone edit.
func (v *Viewer) Redo() bool {
	if !v.buffer.Redo() {
		return false
	}
	v.tool.Sync()
	return true
}

// pointerDown gives the layer the first chance at a click. A click that no
// volume captured selects the item under the pointer instead. Clicks made
// while the camera orbits are ignored.
func (v *Viewer) pointerDown(e interaction.PointerEvent) {
	if v.layer.Suppressed() {
		return
	}
	v.layer.OnPointerDown(e)
	if v.layer.State() == interaction.Captured {
		return
	}
	item, ok := v.scene.Pick(v.view.RayForScreenPoint(e.Position))
	if !ok {
		v.scene.ClearSelection()
		return
	}
	v.scene.Select(item)
}

func (v *Viewer) selectionChanged(item *scene.Item) {
	if item == nil {
		v.tool.Deactivate()
		v.log.Debug("selection cleared")
		return
	}
	v.tool.Activate(item)
	v.log.Debug("item selected", zap.String("item", item.Name))
}

// Render draws one frame: scene, interaction overlay, then the orientation cube.
func (v *Viewer) Render() error {
	full := math.Rect{W: float32(v.width), H: float32(v.height)}
	if err := v.pass.Render(full); err != nil {
		return err
	}
	if v.widget != nil {
		return v.widget.Render(v.widget.Rect(v.width, v.height))
	}
	return nil
}

func pointer(e input.Event) interaction.PointerEvent {
	p := interaction.PointerEvent{Position: math.Vec2{X: float32(e.MouseX), Y: float32(e.MouseY)}}
	switch e.Button {
	case input.ButtonLeft:
		p.Button = interaction.ButtonLeft
	case input.ButtonMiddle:
		p.Button = interaction.ButtonMiddle
	case input.ButtonRight:
		p.Button = interaction.ButtonRight
	}
	return p
}

func sceneBounds(sc *scene.Scene) picking.AABB {
	b := picking.EmptyAABB()
	for _, item := range sc.Items() {
		b = b.Union(item.WorldBounds())
	}
	return b
}

// DemoScene builds a small assembly to edit.
func DemoScene() *scene.Scene {
	sc := scene.New()

	base := scene.NewItem("base", model.Cube("base", 8, 1, 6).Untextured(), [4]float32{0.55, 0.6, 0.65, 1})
	base.SetTransform(math.Translate(0, -0.5, 0))
	sc.Add(base)

	bracket := scene.NewItem("bracket", model.Cube("bracket", 1, 3, 2).Untextured(), [4]float32{0.8, 0.45, 0.2, 1})
	bracket.SetTransform(math.Translate(-2.5, 1.5, 0))
	sc.Add(bracket)

	pin := scene.NewItem("pin", model.Cube("pin", 0.6, 0.6, 2.5).Untextured(), [4]float32{0.3, 0.55, 0.8, 1})
	pin.SetTransform(math.Translate(2, 0.3, 1))
	sc.Add(pin)

	return sc
}
