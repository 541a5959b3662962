// Package rendercontext guards the fixed-function pipeline state shared by
// every 3D pass drawn in a frame.
package rendercontext

import (
	"github.com/Faultbox/partview/internal/engine/lighting"
	"github.com/Faultbox/partview/internal/engine/model"
	"github.com/Faultbox/partview/pkg/math"
)

// Capability is a pipeline flag toggled with Enable/Disable.
type Capability int

const (
	Light0 Capability = iota
	Light1
	DepthTest
	Blend
	Normalize
	Lighting
	ColorMaterial
)

var capabilityNames = [...]string{
	Light0:        "Light0",
	Light1:        "Light1",
	DepthTest:     "DepthTest",
	Blend:         "Blend",
	Normalize:     "Normalize",
	Lighting:      "Lighting",
	ColorMaterial: "ColorMaterial",
}

func (c Capability) String() string {
	if int(c) < len(capabilityNames) {
		return capabilityNames[c]
	}
	return "Capability(?)"
}

// MatrixMode selects the matrix stack affected by matrix calls.
type MatrixMode int

const (
	Projection MatrixMode = iota
	ModelView
)

func (m MatrixMode) String() string {
	if m == Projection {
		return "Projection"
	}
	return "ModelView"
}

// Attrib selects the attribute group saved by PushAttrib.
type Attrib int

const (
	AttribViewport Attrib = iota
)

// RasterState holds the fixed rasterizer settings of a 3D pass.
type RasterState struct {
	SmoothShading  bool
	FrontFaceCCW   bool
	CullBack       bool
	DepthLessEqual bool
}

// DefaultRasterState returns smooth shading, CCW front faces, back-face
// culling and a less-or-equal depth test.
func DefaultRasterState() RasterState {
	return RasterState{SmoothShading: true, FrontFaceCCW: true, CullBack: true, DepthLessEqual: true}
}

// LightParams configures one fixed-function light.
type LightParams struct {
	Ambient  lighting.Color
	Diffuse  lighting.Color
	Specular lighting.Color
	Position [4]float32
}

// Device is the state-setting surface of the graphics API.
type Device interface {
	ClearDepth(depth float32)
	PushAttrib(a Attrib)
	PopAttrib()
	Viewport(r math.Rect)
	SetRasterState(s RasterState)
	SetLight(index int, p LightParams)
	Enable(c Capability)
	Disable(c Capability)
	MatrixMode(m MatrixMode)
	PushMatrix()
	PopMatrix()
	LoadMatrix(m math.Mat4)
}

// Canvas issues geometry inside a guarded pass.
// Transforms are applied on top of the current model-view matrix.
type Canvas interface {
	DrawMesh(mesh *model.Mesh, transform math.Mat4, color [4]float32)
	DrawLines(vertices []float32, transform math.Mat4, color [4]float32)
}

// Target is a device that can also draw.
type Target interface {
	Device
	Canvas
}

// View supplies the matrices of a pass.
type View interface {
	ProjectionMatrix() math.Mat4
	ViewMatrix() math.Mat4
}
