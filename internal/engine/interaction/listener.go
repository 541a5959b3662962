package interaction

import (
	"github.com/Faultbox/partview/internal/engine/rendercontext"
	"github.com/Faultbox/partview/pkg/math"
)

// DrawPass is handed to draw listeners while the layer's pass is open.
type DrawPass struct {
	Canvas rendercontext.Canvas
	View   WorldView
	Rect   math.Rect
}

// DrawListener draws overlay content inside the layer's pass.
// Opaque content of every listener is drawn before any transparent content.
type DrawListener interface {
	DrawOpaque(p DrawPass)
	DrawTransparent(p DrawPass)
}

// AfterDrawListener is notified after a render target finished its own content.
type AfterDrawListener interface {
	AfterDraw(rect math.Rect) error
}

// RenderTarget accepts after-draw listeners.
type RenderTarget interface {
	AddAfterDrawListener(l AfterDrawListener)
}

// DrawFuncs adapts plain functions to DrawListener. Register it by pointer
// so RemoveDrawListener can find it again.
type DrawFuncs struct {
	Opaque      func(p DrawPass)
	Transparent func(p DrawPass)
}

func (f *DrawFuncs) DrawOpaque(p DrawPass) {
	if f.Opaque != nil {
		f.Opaque(p)
	}
}

func (f *DrawFuncs) DrawTransparent(p DrawPass) {
	if f.Transparent != nil {
		f.Transparent(p)
	}
}
