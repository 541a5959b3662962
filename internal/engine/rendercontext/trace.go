package rendercontext

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/partview/internal/engine/model"
	"github.com/Faultbox/partview/pkg/math"
)

// TraceDevice records every call it receives and forwards it to an optional
// inner target. It also tracks stack depths and enabled flags so a frame can
// be checked for leaked state.
type TraceDevice struct {
	inner Target
	log   *zap.Logger

	calls   []string
	mode    MatrixMode
	attribs int
	stacks  [2]int
	enabled map[Capability]bool
}

// NewTraceDevice creates a trace device. inner and log may be nil.
func NewTraceDevice(inner Target, log *zap.Logger) *TraceDevice {
	return &TraceDevice{inner: inner, log: log, enabled: make(map[Capability]bool)}
}

func (t *TraceDevice) record(format string, args ...any) {
	call := fmt.Sprintf(format, args...)
	t.calls = append(t.calls, call)
	if t.log != nil {
		t.log.Debug("gl", zap.String("call", call))
	}
}

// Calls returns a copy of the recorded calls.
func (t *TraceDevice) Calls() []string {
	return append([]string(nil), t.calls...)
}

// Reset clears the recorded calls. Tracked state is kept.
func (t *TraceDevice) Reset() {
	t.calls = t.calls[:0]
}

// Enabled reports whether c is currently enabled.
func (t *TraceDevice) Enabled(c Capability) bool {
	return t.enabled[c]
}

// Balanced returns an error describing every stack or flag left open.
func (t *TraceDevice) Balanced() error {
	var err error
	if t.attribs != 0 {
		err = multierr.Append(err, fmt.Errorf("attrib stack depth %d", t.attribs))
	}
	for m, depth := range t.stacks {
		if depth != 0 {
			err = multierr.Append(err, fmt.Errorf("%s stack depth %d", MatrixMode(m), depth))
		}
	}
	for _, c := range passCapabilities {
		if t.enabled[c] {
			err = multierr.Append(err, fmt.Errorf("%s left enabled", c))
		}
	}
	return err
}

func (t *TraceDevice) ClearDepth(depth float32) {
	t.record("ClearDepth(%g)", depth)
	if t.inner != nil {
		t.inner.ClearDepth(depth)
	}
}

func (t *TraceDevice) PushAttrib(a Attrib) {
	t.record("PushAttrib(%d)", a)
	t.attribs++
	if t.inner != nil {
		t.inner.PushAttrib(a)
	}
}

func (t *TraceDevice) PopAttrib() {
	t.record("PopAttrib()")
	t.attribs--
	if t.inner != nil {
		t.inner.PopAttrib()
	}
}

func (t *TraceDevice) Viewport(r math.Rect) {
	t.record("Viewport(%g,%g,%g,%g)", r.X, r.Y, r.W, r.H)
	if t.inner != nil {
		t.inner.Viewport(r)
	}
}

func (t *TraceDevice) SetRasterState(s RasterState) {
	t.record("SetRasterState(%+v)", s)
	if t.inner != nil {
		t.inner.SetRasterState(s)
	}
}

func (t *TraceDevice) SetLight(index int, p LightParams) {
	t.record("SetLight(%d,%v)", index, p)
	if t.inner != nil {
		t.inner.SetLight(index, p)
	}
}

func (t *TraceDevice) Enable(c Capability) {
	t.record("Enable(%s)", c)
	t.enabled[c] = true
	if t.inner != nil {
		t.inner.Enable(c)
	}
}

func (t *TraceDevice) Disable(c Capability) {
	t.record("Disable(%s)", c)
	t.enabled[c] = false
	if t.inner != nil {
		t.inner.Disable(c)
	}
}

func (t *TraceDevice) MatrixMode(m MatrixMode) {
	t.record("MatrixMode(%s)", m)
	t.mode = m
	if t.inner != nil {
		t.inner.MatrixMode(m)
	}
}

func (t *TraceDevice) PushMatrix() {
	t.record("PushMatrix(%s)", t.mode)
	t.stacks[t.mode]++
	if t.inner != nil {
		t.inner.PushMatrix()
	}
}

func (t *TraceDevice) PopMatrix() {
	t.record("PopMatrix(%s)", t.mode)
	t.stacks[t.mode]--
	if t.inner != nil {
		t.inner.PopMatrix()
	}
}

func (t *TraceDevice) LoadMatrix(m math.Mat4) {
	t.record("LoadMatrix(%s,%v)", t.mode, m)
	if t.inner != nil {
		t.inner.LoadMatrix(m)
	}
}

func (t *TraceDevice) DrawMesh(mesh *model.Mesh, transform math.Mat4, color [4]float32) {
	t.record("DrawMesh(%s)", mesh.Name)
	if t.inner != nil {
		t.inner.DrawMesh(mesh, transform, color)
	}
}

func (t *TraceDevice) DrawLines(vertices []float32, transform math.Mat4, color [4]float32) {
	t.record("DrawLines(%d)", len(vertices)/6)
	if t.inner != nil {
		t.inner.DrawLines(vertices, transform, color)
	}
}
