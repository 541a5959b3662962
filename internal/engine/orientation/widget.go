// Package orientation draws a small labeled cube that mirrors the main
// camera's orientation.
package orientation

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/partview/internal/engine/lighting"
	"github.com/Faultbox/partview/internal/engine/model"
	"github.com/Faultbox/partview/internal/engine/rendercontext"
	"github.com/Faultbox/partview/internal/logger"
	"github.com/Faultbox/partview/pkg/math"
)

const (
	DefaultSize     = 200
	DefaultDistance = 3
	labelSize       = 256
)

// Labels are painted on the cube faces in model face order.
var Labels = [model.FaceCount]string{
	model.FaceTop:    "Top",
	model.FaceLeft:   "Left",
	model.FaceRight:  "Right",
	model.FaceBottom: "Bottom",
	model.FaceBack:   "Back",
	model.FaceFront:  "Front",
}

// ViewSource is the camera whose orientation the widget mirrors.
type ViewSource interface {
	InverseViewMatrix() math.Mat4
}

// TextureUploader turns an image into a texture handle.
type TextureUploader interface {
	UploadTexture(img *image.RGBA) (uint32, error)
}

// Widget is the orientation cube.
type Widget struct {
	Size     int
	Distance float32
	Margin   int

	source ViewSource
	guard  *rendercontext.Guard
	rig    lighting.Rig
	cube   *model.Mesh
	log    *zap.Logger
}

// New creates a widget mirroring source and drawing through guard.
func New(source ViewSource, guard *rendercontext.Guard) *Widget {
	return &Widget{
		Size:     DefaultSize,
		Distance: DefaultDistance,
		source:   source,
		guard:    guard,
		rig:      lighting.DefaultRig(),
		cube:     model.Cube("orientation-cube", 1, 1, 1),
		log:      logger.Named("orientation"),
	}
}

// SetLighting replaces the rig used by the widget pass.
func (w *Widget) SetLighting(rig lighting.Rig) { w.rig = rig }

// Init paints the face labels and uploads them as the cube's textures.
func (w *Widget) Init(uploader TextureUploader) error {
	textures := make([]uint32, 0, len(Labels))
	for _, name := range Labels {
		tex, err := uploader.UploadTexture(PaintLabel(name, labelSize))
		if err != nil {
			return fmt.Errorf("upload %s label: %w", name, err)
		}
		textures = append(textures, tex)
	}
	w.cube.Textures = textures
	w.log.Debug("orientation labels uploaded", zap.Int("textures", len(textures)))
	return nil
}

// Mesh returns the labeled cube.
func (w *Widget) Mesh() *model.Mesh { return w.cube }

// Rect returns the widget viewport in GL coordinates for a window of the
// given size, anchored to the top-left corner.
func (w *Widget) Rect(windowW, windowH int) math.Rect {
	return math.Rect{
		X: float32(w.Margin),
		Y: float32(windowH - w.Size - w.Margin),
		W: float32(w.Size),
		H: float32(w.Size),
	}
}

// Render draws the cube into rect.
func (w *Widget) Render(rect math.Rect) error {
	v := w.view(rect)
	return w.guard.Do(v, rect, w.rig, func() error {
		w.guard.Canvas().DrawMesh(w.cube, math.Identity(), [4]float32{1, 1, 1, 1})
		return nil
	})
}

type cubeView struct {
	proj, view math.Mat4
}

func (v cubeView) ProjectionMatrix() math.Mat4 { return v.proj }
func (v cubeView) ViewMatrix() math.Mat4       { return v.view }

func (w *Widget) view(rect math.Rect) cubeView {
	return cubeView{
		proj: math.Perspective(math32.Pi/4, rect.Aspect(), 0.1, 100),
		view: w.ViewMatrix(),
	}
}

// ViewMatrix returns the widget's camera: the main camera's rotation with
// its translation replaced by a fixed distance from the cube.
func (w *Widget) ViewMatrix() math.Mat4 {
	inv := w.source.InverseViewMatrix()
	forward := inv.TransformNormal(math.UnitZ.Neg()).Normalize()
	up := inv.TransformNormal(math.UnitY).Normalize()

	rotation := math.LookAt(math.Vec3{}, forward, up)
	return math.Translate(0, 0, -w.Distance).Mul(rotation)
}
