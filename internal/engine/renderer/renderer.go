// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/partview/internal/engine/model"
	"github.com/Faultbox/partview/internal/engine/rendercontext"
	"github.com/Faultbox/partview/internal/logger"
	"github.com/Faultbox/partview/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	VSync  bool
}

// Renderer draws through the OpenGL 2.1 fixed-function pipeline.
// It implements rendercontext.Target.
type Renderer struct {
	config   Config
	textures []uint32
}

var _ rendercontext.Target = (*Renderer)(nil)

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Setup default OpenGL state
	gl.ClearColor(0.1, 0.1, 0.15, 1.0) // Dark blue-gray background
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() error {
	logger.Info("closing renderer", zap.Int("textures", len(r.textures)))
	if len(r.textures) > 0 {
		gl.DeleteTextures(int32(len(r.textures)), &r.textures[0])
		r.textures = nil
	}
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x on close", code)
	}
	return nil
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.Flush()
}

// UploadTexture creates a 2D texture from img.
func (r *Renderer) UploadTexture(img *image.RGBA) (uint32, error) {
	b := img.Bounds()
	if b.Empty() {
		return 0, fmt.Errorf("upload texture: empty image")
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	if tex == 0 {
		return 0, fmt.Errorf("upload texture: no texture name available")
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.textures = append(r.textures, tex)
	logger.Debug("texture uploaded", zap.Uint32("texture", tex), zap.Int("width", b.Dx()), zap.Int("height", b.Dy()))
	return tex, nil
}

// DrawMesh draws mesh with transform applied on top of the model-view matrix.
func (r *Renderer) DrawMesh(mesh *model.Mesh, transform math.Mat4, color [4]float32) {
	gl.PushMatrix()
	gl.MultMatrixf(transform.Ptr())
	gl.Color4fv(&color[0])

	for _, g := range mesh.Groups {
		tex := mesh.Texture(g)
		if tex != 0 {
			gl.Enable(gl.TEXTURE_2D)
			gl.BindTexture(gl.TEXTURE_2D, tex)
		}

		gl.Begin(gl.TRIANGLES)
		for _, idx := range mesh.Indices[g.StartIndex : g.StartIndex+g.IndexCount] {
			v := &mesh.Vertices[idx]
			gl.Normal3fv(&v.Normal[0])
			gl.TexCoord2fv(&v.TexCoord[0])
			gl.Vertex3fv(&v.Position[0])
		}
		gl.End()

		if tex != 0 {
			gl.BindTexture(gl.TEXTURE_2D, 0)
			gl.Disable(gl.TEXTURE_2D)
		}
	}

	gl.PopMatrix()
}

// DrawLines draws unlit line segments. vertices holds xyz pairs per segment.
func (r *Renderer) DrawLines(vertices []float32, transform math.Mat4, color [4]float32) {
	gl.PushAttrib(gl.ENABLE_BIT | gl.CURRENT_BIT)
	gl.PushMatrix()
	gl.MultMatrixf(transform.Ptr())
	gl.Disable(gl.LIGHTING)
	gl.Color4fv(&color[0])

	gl.Begin(gl.LINES)
	for i := 0; i+2 < len(vertices); i += 3 {
		gl.Vertex3f(vertices[i], vertices[i+1], vertices[i+2])
	}
	gl.End()

	gl.PopMatrix()
	gl.PopAttrib()
}
