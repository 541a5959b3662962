package renderer

import (
	"github.com/go-gl/gl/v2.1/gl"

	"github.com/Faultbox/partview/internal/engine/rendercontext"
	"github.com/Faultbox/partview/pkg/math"
)

var capabilities = map[rendercontext.Capability]uint32{
	rendercontext.Light0:        gl.LIGHT0,
	rendercontext.Light1:        gl.LIGHT1,
	rendercontext.DepthTest:     gl.DEPTH_TEST,
	rendercontext.Blend:         gl.BLEND,
	rendercontext.Normalize:     gl.NORMALIZE,
	rendercontext.Lighting:      gl.LIGHTING,
	rendercontext.ColorMaterial: gl.COLOR_MATERIAL,
}

var lights = [2]uint32{gl.LIGHT0, gl.LIGHT1}

func (r *Renderer) ClearDepth(depth float32) {
	gl.ClearDepth(float64(depth))
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

func (r *Renderer) PushAttrib(a rendercontext.Attrib) {
	gl.PushAttrib(gl.VIEWPORT_BIT)
}

func (r *Renderer) PopAttrib() {
	gl.PopAttrib()
}

func (r *Renderer) Viewport(rect math.Rect) {
	gl.Viewport(int32(rect.X), int32(rect.Y), int32(rect.W), int32(rect.H))
}

func (r *Renderer) SetRasterState(s rendercontext.RasterState) {
	if s.SmoothShading {
		gl.ShadeModel(gl.SMOOTH)
	} else {
		gl.ShadeModel(gl.FLAT)
	}
	if s.FrontFaceCCW {
		gl.FrontFace(gl.CCW)
	} else {
		gl.FrontFace(gl.CW)
	}
	if s.CullBack {
		gl.CullFace(gl.BACK)
	} else {
		gl.CullFace(gl.FRONT)
	}
	if s.DepthLessEqual {
		gl.DepthFunc(gl.LEQUAL)
	} else {
		gl.DepthFunc(gl.LESS)
	}
	gl.ColorMaterial(gl.FRONT_AND_BACK, gl.AMBIENT_AND_DIFFUSE)
}

func (r *Renderer) SetLight(index int, p rendercontext.LightParams) {
	if index < 0 || index >= len(lights) {
		return
	}
	light := lights[index]
	gl.Lightfv(light, gl.AMBIENT, &p.Ambient[0])
	gl.Lightfv(light, gl.DIFFUSE, &p.Diffuse[0])
	gl.Lightfv(light, gl.SPECULAR, &p.Specular[0])
	gl.Lightfv(light, gl.POSITION, &p.Position[0])
}

func (r *Renderer) Enable(c rendercontext.Capability) {
	if glCap, ok := capabilities[c]; ok {
		gl.Enable(glCap)
	}
}

func (r *Renderer) Disable(c rendercontext.Capability) {
	if glCap, ok := capabilities[c]; ok {
		gl.Disable(glCap)
	}
}

func (r *Renderer) MatrixMode(m rendercontext.MatrixMode) {
	if m == rendercontext.Projection {
		gl.MatrixMode(gl.PROJECTION)
	} else {
		gl.MatrixMode(gl.MODELVIEW)
	}
}

func (r *Renderer) PushMatrix() {
	gl.PushMatrix()
}

func (r *Renderer) PopMatrix() {
	gl.PopMatrix()
}

func (r *Renderer) LoadMatrix(m math.Mat4) {
	gl.LoadMatrixf(m.Ptr())
}
