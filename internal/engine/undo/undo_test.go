package undo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/partview/pkg/math"
)

type item struct {
	m math.Mat4
}

func (i *item) Transform() math.Mat4     { return i.m }
func (i *item) SetTransform(m math.Mat4) { i.m = m }

type selection struct {
	item *item
}

func (s *selection) HasSelection() bool { return s.item != nil }
func (s *selection) Selected() Transformable {
	if s.item == nil {
		return nil
	}
	return s.item
}

func TestCaptureIdenticalRecordsNothing(t *testing.T) {
	it := &item{m: math.Translate(1, 2, 3)}
	buf := NewBuffer(10)
	changes := 0
	r := NewRecorder(buf, &selection{item: it}, func() { changes++ })

	assert.False(t, r.CaptureIfChanged(math.Translate(1, 2, 3)))
	assert.Equal(t, 0, buf.Len())
	assert.Equal(t, 0, changes)
}

func TestCaptureChangedRecordsOne(t *testing.T) {
	original := math.Translate(1, 2, 3)
	moved := original
	moved[12] += 1e-6

	it := &item{m: moved}
	buf := NewBuffer(10)
	changes := 0
	r := NewRecorder(buf, &selection{item: it}, func() { changes++ })

	require.True(t, r.CaptureIfChanged(original))
	assert.Equal(t, 1, buf.Len())
	assert.Equal(t, 1, changes)

	cmd, ok := buf.Last().(*TransformCommand)
	require.True(t, ok)
	assert.Same(t, it, cmd.Item)
	assert.Equal(t, original, cmd.Before)
	assert.Equal(t, moved, cmd.After)
}

func TestCaptureWithoutSelection(t *testing.T) {
	buf := NewBuffer(10)
	r := NewRecorder(buf, &selection{}, nil)

	assert.False(t, r.CaptureIfChanged(math.Translate(5, 0, 0)))
	assert.Equal(t, 0, buf.Len())
}

func TestUndoRedo(t *testing.T) {
	it := &item{m: math.Identity()}
	buf := NewBuffer(10)
	r := NewRecorder(buf, &selection{item: it}, nil)

	it.SetTransform(math.Translate(4, 0, 0))
	require.True(t, r.CaptureIfChanged(math.Identity()))

	require.True(t, buf.Undo())
	assert.Equal(t, math.Identity(), it.m)
	assert.True(t, buf.CanRedo())
	assert.False(t, buf.CanUndo())

	require.True(t, buf.Redo())
	assert.Equal(t, math.Translate(4, 0, 0), it.m)
	assert.False(t, buf.Redo())
}

func TestBufferCapacity(t *testing.T) {
	it := &item{}
	buf := NewBuffer(3)
	for i := 0; i < 5; i++ {
		buf.Add(&TransformCommand{Item: it, Before: math.Translate(float32(i), 0, 0), After: math.Translate(float32(i+1), 0, 0)})
	}
	assert.Equal(t, 3, buf.Len())

	cmd := buf.Last().(*TransformCommand)
	assert.Equal(t, math.Translate(5, 0, 0), cmd.After)

	for buf.Undo() {
	}
	// The two oldest commands were dropped.
	assert.Equal(t, math.Translate(2, 0, 0), it.m)
}

func TestAddClearsRedo(t *testing.T) {
	it := &item{}
	buf := NewBuffer(0)
	buf.Add(&TransformCommand{Item: it, After: math.Identity()})
	buf.Undo()
	require.True(t, buf.CanRedo())

	buf.Add(&TransformCommand{Item: it, After: math.Identity()})
	assert.False(t, buf.CanRedo())
}
