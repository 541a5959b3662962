package orientation

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/partview/internal/engine/model"
	"github.com/Faultbox/partview/internal/engine/rendercontext"
	"github.com/Faultbox/partview/pkg/math"
)

type viewAt struct {
	view math.Mat4
}

func (v viewAt) InverseViewMatrix() math.Mat4 { return v.view.Inverse() }

type uploads struct {
	images []*image.RGBA
	fail   bool
}

func (u *uploads) UploadTexture(img *image.RGBA) (uint32, error) {
	if u.fail {
		return 0, errors.New("no context")
	}
	u.images = append(u.images, img)
	return uint32(len(u.images)), nil
}

func assertMatNear(t *testing.T, want, got math.Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "element %d", i)
	}
}

func TestViewMatrixFollowsRotationOnly(t *testing.T) {
	guard := rendercontext.NewGuard(rendercontext.NewTraceDevice(nil, nil))

	front := New(viewAt{math.LookAt(math.Vec3{Z: 10}, math.Vec3{}, math.UnitY)}, guard)
	assertMatNear(t, math.Translate(0, 0, -DefaultDistance), front.ViewMatrix())

	// Same orientation from a different position gives the same widget view.
	moved := New(viewAt{math.LookAt(math.Vec3{X: 50, Y: 3, Z: 10}, math.Vec3{X: 50, Y: 3}, math.UnitY)}, guard)
	assertMatNear(t, front.ViewMatrix(), moved.ViewMatrix())
}

func TestViewMatrixFromSide(t *testing.T) {
	guard := rendercontext.NewGuard(rendercontext.NewTraceDevice(nil, nil))
	w := New(viewAt{math.LookAt(math.Vec3{X: 10}, math.Vec3{}, math.UnitY)}, guard)

	// Looking down -X, the cube's +X face points at the widget camera.
	p := w.ViewMatrix().TransformPoint(math.Vec3{X: 0.5})
	assert.InDelta(t, 0, p.X, 1e-4)
	assert.InDelta(t, -DefaultDistance+0.5, p.Z, 1e-4)
}

func TestRenderUsesGuard(t *testing.T) {
	trace := rendercontext.NewTraceDevice(nil, nil)
	guard := rendercontext.NewGuard(trace)
	w := New(viewAt{math.Identity()}, guard)

	rect := w.Rect(800, 600)
	assert.Equal(t, math.Rect{X: 0, Y: 400, W: 200, H: 200}, rect)

	require.NoError(t, w.Render(rect))
	calls := trace.Calls()
	assert.Contains(t, calls, "Viewport(0,400,200,200)")
	assert.Contains(t, calls, "DrawMesh(orientation-cube)")
	assert.Equal(t, 0, guard.Depth())
	require.NoError(t, trace.Balanced())
}

func TestInitUploadsLabels(t *testing.T) {
	w := New(viewAt{math.Identity()}, nil)
	up := &uploads{}

	require.NoError(t, w.Init(up))
	require.Len(t, up.images, model.FaceCount)
	assert.Equal(t, []uint32{1, 2, 3, 4, 5, 6}, w.Mesh().Textures)
	assert.Equal(t, uint32(5), w.Mesh().Texture(w.Mesh().Groups[model.FaceBack]))

	err := w.Init(&uploads{fail: true})
	assert.ErrorContains(t, err, "upload Top label")
}

func TestPaintLabel(t *testing.T) {
	img := PaintLabel("Front", 256)
	require.Equal(t, image.Rect(0, 0, 256, 256), img.Bounds())

	white := color.RGBA{255, 255, 255, 255}
	assert.Equal(t, white, img.RGBAAt(0, 0))
	assert.Equal(t, white, img.RGBAAt(255, 255))

	dark := 0
	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			if img.RGBAAt(x, y).R < 128 {
				dark++
			}
		}
	}
	assert.Greater(t, dark, 500, "expected visible text pixels")

	other := PaintLabel("Back", 256)
	assert.NotEqual(t, img.Pix, other.Pix)

	blank := PaintLabel("", 64)
	assert.Equal(t, white, blank.RGBAAt(32, 32))
}
