package app

import (
	"go.uber.org/multierr"

	"github.com/Faultbox/partview/internal/engine/interaction"
	"github.com/Faultbox/partview/internal/engine/lighting"
	"github.com/Faultbox/partview/internal/engine/rendercontext"
	"github.com/Faultbox/partview/internal/engine/scene"
	"github.com/Faultbox/partview/pkg/math"
)

// selectionTint is blended into the selected item's color.
var selectionTint = [4]float32{1, 0.9, 0.5, 1}

// scenePass draws the scene items and then notifies its after-draw
// listeners, which draw their own passes on top.
type scenePass struct {
	guard *rendercontext.Guard
	view  rendercontext.View
	scene *scene.Scene
	rig   lighting.Rig

	afterDraw []interaction.AfterDrawListener
}

var _ interaction.RenderTarget = (*scenePass)(nil)

// AddAfterDrawListener implements interaction.RenderTarget.
func (p *scenePass) AddAfterDrawListener(l interaction.AfterDrawListener) {
	p.afterDraw = append(p.afterDraw, l)
}

// Render draws the scene into rect. Listener errors are collected; every
// listener runs even when an earlier one failed.
func (p *scenePass) Render(rect math.Rect) error {
	err := p.guard.Do(p.view, rect, p.rig, func() error {
		canvas := p.guard.Canvas()
		selected := p.scene.SelectedItem()
		for _, item := range p.scene.Items() {
			if item.Mesh == nil {
				continue
			}
			color := item.Color
			if item == selected {
				color = tint(color, selectionTint)
			}
			canvas.DrawMesh(item.Mesh, item.Transform(), color)
		}
		return nil
	})
	for _, l := range p.afterDraw {
		err = multierr.Append(err, l.AfterDraw(rect))
	}
	return err
}

func tint(c, t [4]float32) [4]float32 {
	return [4]float32{c[0] * t[0], c[1] * t[1], c[2] * t[2], c[3] * t[3]}
}
