// Package undo records reversible scene edits.
package undo

// DefaultCapacity is the number of commands kept when no capacity is given.
const DefaultCapacity = 50

// Command is a reversible edit.
type Command interface {
	Do()
	Undo()
}

// Buffer is a bounded undo/redo stack. Adding a command clears the redo
// stack; the oldest command is dropped when the buffer is full.
type Buffer struct {
	capacity int
	undo     []Command
	redo     []Command
}

// NewBuffer creates a buffer holding at most capacity commands.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{capacity: capacity}
}

// Add records a command that has already been applied.
func (b *Buffer) Add(c Command) {
	if len(b.undo) >= b.capacity {
		b.undo = b.undo[1:]
	}
	b.undo = append(b.undo, c)
	b.redo = b.redo[:0]
}

// Undo reverts the last command. Returns false if there is nothing to undo.
func (b *Buffer) Undo() bool {
	if len(b.undo) == 0 {
		return false
	}
	c := b.undo[len(b.undo)-1]
	b.undo = b.undo[:len(b.undo)-1]
	c.Undo()
	b.redo = append(b.redo, c)
	return true
}

// Redo reapplies the last undone command. Returns false if there is nothing to redo.
func (b *Buffer) Redo() bool {
	if len(b.redo) == 0 {
		return false
	}
	c := b.redo[len(b.redo)-1]
	b.redo = b.redo[:len(b.redo)-1]
	c.Do()
	b.undo = append(b.undo, c)
	return true
}

// Len returns the number of undoable commands.
func (b *Buffer) Len() int { return len(b.undo) }

// CanUndo reports whether Undo would do anything.
func (b *Buffer) CanUndo() bool { return len(b.undo) > 0 }

// CanRedo reports whether Redo would do anything.
func (b *Buffer) CanRedo() bool { return len(b.redo) > 0 }

// Last returns the most recent undoable command, or nil.
func (b *Buffer) Last() Command {
	if len(b.undo) == 0 {
		return nil
	}
	return b.undo[len(b.undo)-1]
}
