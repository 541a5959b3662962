package rendercontext

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/partview/internal/engine/lighting"
	"github.com/Faultbox/partview/pkg/math"
)

type fixedView struct {
	proj, view math.Mat4
}

func (v fixedView) ProjectionMatrix() math.Mat4 { return v.proj }
func (v fixedView) ViewMatrix() math.Mat4       { return v.view }

func testView() fixedView {
	return fixedView{
		proj: math.Perspective(1, 1.5, 0.1, 100),
		view: math.LookAt(math.Vec3{Z: 10}, math.Vec3{}, math.UnitY),
	}
}

func count(calls []string, prefix string) int {
	n := 0
	for _, c := range calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func TestEnterReleaseBalanced(t *testing.T) {
	trace := NewTraceDevice(nil, nil)
	g := NewGuard(trace)

	release := g.Enter(testView(), math.Rect{W: 640, H: 480}, lighting.DefaultRig())
	assert.Equal(t, 1, g.Depth())
	for _, c := range passCapabilities {
		assert.True(t, trace.Enabled(c), "%s should be enabled inside a pass", c)
	}

	release()
	assert.Equal(t, 0, g.Depth())
	require.NoError(t, trace.Balanced())

	calls := trace.Calls()
	assert.Equal(t, count(calls, "PushMatrix"), count(calls, "PopMatrix"))
	assert.Equal(t, count(calls, "PushAttrib"), count(calls, "PopAttrib"))
	assert.Equal(t, len(passCapabilities), count(calls, "Disable("))
}

func TestReleaseIdempotent(t *testing.T) {
	trace := NewTraceDevice(nil, nil)
	g := NewGuard(trace)

	release := g.Enter(testView(), math.Rect{W: 100, H: 100}, lighting.DefaultRig())
	release()
	n := len(trace.Calls())
	release()

	assert.Len(t, trace.Calls(), n, "second release must not touch the device")
	require.NoError(t, trace.Balanced())
}

func TestRenderSequenceRepeatable(t *testing.T) {
	trace := NewTraceDevice(nil, nil)
	g := NewGuard(trace)
	draw := func() error { return nil }

	require.NoError(t, g.Do(testView(), math.Rect{W: 800, H: 600}, lighting.DefaultRig(), draw))
	first := trace.Calls()
	trace.Reset()

	require.NoError(t, g.Do(testView(), math.Rect{W: 800, H: 600}, lighting.DefaultRig(), draw))
	second := trace.Calls()

	assert.Equal(t, first, second)
	require.NoError(t, trace.Balanced())
}

func TestEnterSequence(t *testing.T) {
	trace := NewTraceDevice(nil, nil)
	g := NewGuard(trace)
	view := testView()

	g.Enter(view, math.Rect{X: 10, Y: 20, W: 200, H: 200}, lighting.DefaultRig())
	calls := trace.Calls()

	require.GreaterOrEqual(t, len(calls), 4)
	assert.Equal(t, "ClearDepth(1)", calls[0])
	assert.Equal(t, "PushAttrib(0)", calls[1])
	assert.Equal(t, "Viewport(10,20,200,200)", calls[2])
	assert.True(t, strings.HasPrefix(calls[len(calls)-1], "LoadMatrix(ModelView"))
	assert.Equal(t, 2, count(calls, "SetLight("))
}

func TestDoReleasesOnError(t *testing.T) {
	trace := NewTraceDevice(nil, nil)
	g := NewGuard(trace)
	boom := errors.New("boom")

	err := g.Do(testView(), math.Rect{W: 1, H: 1}, lighting.DefaultRig(), func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, g.Depth())
	require.NoError(t, trace.Balanced())
}

func TestDoReleasesOnPanic(t *testing.T) {
	trace := NewTraceDevice(nil, nil)
	g := NewGuard(trace)

	assert.Panics(t, func() {
		_ = g.Do(testView(), math.Rect{W: 1, H: 1}, lighting.DefaultRig(), func() error { panic("draw failed") })
	})
	assert.Equal(t, 0, g.Depth())
	require.NoError(t, trace.Balanced())
}

func TestNestedPassKeepsOuterState(t *testing.T) {
	trace := NewTraceDevice(nil, nil)
	g := NewGuard(trace)
	outerRig := lighting.DefaultRig()
	innerRig := lighting.NewRig(lighting.Gray(0), lighting.Light{Direction: math.UnitX}, lighting.Light{Direction: math.UnitY})

	err := g.Do(testView(), math.Rect{W: 800, H: 600}, outerRig, func() error {
		inner := g.Do(testView(), math.Rect{W: 200, H: 200}, innerRig, func() error {
			assert.Equal(t, 2, g.Depth())
			return nil
		})
		assert.Equal(t, 1, g.Depth())
		for _, c := range passCapabilities {
			assert.True(t, trace.Enabled(c), "%s should stay enabled for the outer pass", c)
		}
		calls := trace.Calls()
		assert.True(t, strings.HasPrefix(calls[len(calls)-1], "PopAttrib"))
		return inner
	})
	require.NoError(t, err)
	require.NoError(t, trace.Balanced())
}

func TestOutOfOrderReleaseUnwinds(t *testing.T) {
	trace := NewTraceDevice(nil, nil)
	g := NewGuard(trace)

	outer := g.Enter(testView(), math.Rect{W: 10, H: 10}, lighting.DefaultRig())
	inner := g.Enter(testView(), math.Rect{W: 5, H: 5}, lighting.DefaultRig())

	outer()
	assert.Equal(t, 0, g.Depth())
	inner()
	require.NoError(t, trace.Balanced())
}

func TestBalancedReportsLeaks(t *testing.T) {
	trace := NewTraceDevice(nil, nil)
	g := NewGuard(trace)
	g.Enter(testView(), math.Rect{W: 10, H: 10}, lighting.DefaultRig())

	err := trace.Balanced()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Projection stack depth 1")
	assert.Contains(t, err.Error(), "DepthTest left enabled")
}
