// Package scene holds the editable items of a view and the current selection.
package scene

import (
	"github.com/Faultbox/partview/internal/engine/model"
	"github.com/Faultbox/partview/internal/engine/picking"
	"github.com/Faultbox/partview/internal/engine/undo"
	"github.com/Faultbox/partview/pkg/math"
)

// Item is a placed mesh.
type Item struct {
	Name  string
	Mesh  *model.Mesh
	Color [4]float32

	transform math.Mat4
}

// NewItem creates an item at the identity transform.
func NewItem(name string, mesh *model.Mesh, color [4]float32) *Item {
	return &Item{Name: name, Mesh: mesh, Color: color, transform: math.Identity()}
}

// Transform returns the item's local-to-world matrix.
func (i *Item) Transform() math.Mat4 { return i.transform }

// SetTransform sets the item's local-to-world matrix.
func (i *Item) SetTransform(m math.Mat4) { i.transform = m }

// LocalBounds returns the mesh bounds in item space.
func (i *Item) LocalBounds() picking.AABB {
	if i.Mesh == nil {
		return picking.EmptyAABB()
	}
	b := i.Mesh.Bounds
	return picking.AABB{
		Min: math.Vec3{X: b.Min[0], Y: b.Min[1], Z: b.Min[2]},
		Max: math.Vec3{X: b.Max[0], Y: b.Max[1], Z: b.Max[2]},
	}
}

// WorldBounds returns the item bounds in world space.
func (i *Item) WorldBounds() picking.AABB {
	return i.LocalBounds().Transform(i.transform)
}

// Scene is an ordered list of items with at most one selected.
type Scene struct {
	items    []*Item
	selected *Item
	onSelect []func(*Item)
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add appends an item.
func (s *Scene) Add(item *Item) {
	s.items = append(s.items, item)
}

// Items returns the items in insertion order.
func (s *Scene) Items() []*Item {
	return s.items
}

// HasSelection reports whether an item is selected.
func (s *Scene) HasSelection() bool {
	return s.selected != nil
}

// SelectedItem returns the selected item, or nil.
func (s *Scene) SelectedItem() *Item {
	return s.selected
}

// Selected returns the selected item as an undo target.
func (s *Scene) Selected() undo.Transformable {
	if s.selected == nil {
		return nil
	}
	return s.selected
}

// Select makes item the selection. Passing nil clears it.
func (s *Scene) Select(item *Item) {
	if item == s.selected {
		return
	}
	s.selected = item
	for _, fn := range s.onSelect {
		fn(item)
	}
}

// ClearSelection deselects the current item.
func (s *Scene) ClearSelection() {
	s.Select(nil)
}

// OnSelectionChanged registers fn to run after every selection change.
func (s *Scene) OnSelectionChanged(fn func(*Item)) {
	s.onSelect = append(s.onSelect, fn)
}

// Pick returns the item whose world bounds the ray enters first.
func (s *Scene) Pick(r picking.Ray) (*Item, bool) {
	var best *Item
	bestDist := float32(0)
	for _, item := range s.items {
		t, ok := r.IntersectAABB(item.WorldBounds())
		if ok && (best == nil || t < bestDist) {
			best, bestDist = item, t
		}
	}
	return best, best != nil
}
