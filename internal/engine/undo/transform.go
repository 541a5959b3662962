package undo

import (
	"github.com/Faultbox/partview/pkg/math"
)

// Transformable is an item with a world transform.
type Transformable interface {
	Transform() math.Mat4
	SetTransform(m math.Mat4)
}

// Selection exposes the currently selected item.
type Selection interface {
	HasSelection() bool
	Selected() Transformable
}

// TransformCommand moves an item between two transforms.
type TransformCommand struct {
	Item   Transformable
	Before math.Mat4
	After  math.Mat4
}

// Do applies After.
func (c *TransformCommand) Do() { c.Item.SetTransform(c.After) }

// Undo restores Before.
func (c *TransformCommand) Undo() { c.Item.SetTransform(c.Before) }

// Recorder appends a TransformCommand when a gesture changed the selection.
type Recorder struct {
	buffer    *Buffer
	selection Selection
	onChange  func()
}

// NewRecorder creates a recorder. onChange may be nil.
func NewRecorder(buffer *Buffer, selection Selection, onChange func()) *Recorder {
	return &Recorder{buffer: buffer, selection: selection, onChange: onChange}
}

// CaptureIfChanged records an edit from original to the selected item's
// current transform. Nothing is recorded without a selection or when the
// transforms are identical.
func (r *Recorder) CaptureIfChanged(original math.Mat4) bool {
	if !r.selection.HasSelection() {
		return false
	}
	item := r.selection.Selected()
	if item == nil {
		return false
	}
	current := item.Transform()
	if current == original {
		return false
	}

	r.buffer.Add(&TransformCommand{Item: item, Before: original, After: current})
	if r.onChange != nil {
		r.onChange()
	}
	return true
}
