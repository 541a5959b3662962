package rendercontext

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/partview/internal/engine/lighting"
	"github.com/Faultbox/partview/internal/logger"
	"github.com/Faultbox/partview/pkg/math"
)

// passCapabilities are enabled by Enter in this order.
var passCapabilities = []Capability{Light0, Light1, DepthTest, Blend, Normalize, Lighting, ColorMaterial}

// releaseCapabilities are disabled on the final release in this order.
var releaseCapabilities = []Capability{ColorMaterial, Lighting, Light0, Light1, Normalize, Blend, DepthTest}

type frame struct {
	rig      lighting.Rig
	released bool
}

// Guard configures the pipeline for a 3D pass and restores it afterwards.
// Passes may nest: closing an inner pass reapplies the lights of the pass
// around it and leaves the shared flags enabled.
type Guard struct {
	target Target
	frames []*frame
	log    *zap.Logger
}

// NewGuard creates a guard over target.
func NewGuard(target Target) *Guard {
	return &Guard{target: target, log: logger.Named("rendercontext")}
}

// Canvas returns the drawing surface of the guarded target.
func (g *Guard) Canvas() Canvas {
	return g.target
}

// Depth returns the number of open passes.
func (g *Guard) Depth() int {
	return len(g.frames)
}

// Enter opens a pass for view inside rect. The returned release function
// must be called exactly once; extra calls are ignored.
func (g *Guard) Enter(view View, rect math.Rect, rig lighting.Rig) (release func()) {
	d := g.target

	d.ClearDepth(1)
	d.PushAttrib(AttribViewport)
	d.Viewport(rect)
	d.SetRasterState(DefaultRasterState())
	applyLights(d, rig)

	for _, c := range passCapabilities {
		d.Enable(c)
	}

	d.MatrixMode(Projection)
	d.PushMatrix()
	d.LoadMatrix(view.ProjectionMatrix())

	d.MatrixMode(ModelView)
	d.PushMatrix()
	d.LoadMatrix(view.ViewMatrix())

	f := &frame{rig: rig}
	g.frames = append(g.frames, f)

	return func() { g.release(f) }
}

// Do runs draw inside a pass. The pass is closed on every exit path,
// including a panic in draw.
func (g *Guard) Do(view View, rect math.Rect, rig lighting.Rig, draw func() error) error {
	release := g.Enter(view, rect, rig)
	defer release()

	if err := draw(); err != nil {
		return fmt.Errorf("draw pass: %w", err)
	}
	return nil
}

func (g *Guard) release(f *frame) {
	if f.released {
		return
	}

	// Unwind passes opened after f that were never closed.
	for len(g.frames) > 0 {
		top := g.frames[len(g.frames)-1]
		if top != f {
			g.log.Warn("closing nested pass left open")
		}
		g.pop()
		if top == f {
			return
		}
	}
}

func (g *Guard) pop() {
	d := g.target
	top := g.frames[len(g.frames)-1]
	top.released = true
	g.frames = g.frames[:len(g.frames)-1]

	d.MatrixMode(Projection)
	d.PopMatrix()

	d.MatrixMode(ModelView)
	d.PopMatrix()

	if len(g.frames) > 0 {
		applyLights(d, g.frames[len(g.frames)-1].rig)
	} else {
		for _, c := range releaseCapabilities {
			d.Disable(c)
		}
	}

	d.PopAttrib()
}

func applyLights(d Device, rig lighting.Rig) {
	for i, l := range rig.Lights {
		ambient := lighting.Color{}
		if i == 0 {
			ambient = rig.Ambient
		}
		d.SetLight(i, LightParams{
			Ambient:  ambient,
			Diffuse:  l.Diffuse,
			Specular: l.Specular,
			Position: l.Position(),
		})
	}
}
