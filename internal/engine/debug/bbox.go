// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/Faultbox/partview/internal/engine/interaction"
	"github.com/Faultbox/partview/internal/engine/picking"
	"github.com/Faultbox/partview/pkg/math"
)

// WireframeVertexCount is the number of vertices for a box wireframe (12 edges × 2).
const WireframeVertexCount = 24

// DefaultPadding is the default padding around volume bounds.
const DefaultPadding = 0.05

// BoundsColor is the line color used for volume bounds.
var BoundsColor = [4]float32{1, 0.8, 0, 1}

// WireframeVertices creates line vertices for a wireframe box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
func WireframeVertices(minX, minY, minZ, maxX, maxY, maxZ float32) []float32 {
	return []float32{
		// Bottom face (4 edges)
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face (4 edges)
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges (4 edges)
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// BoundsWireframe creates wireframe vertices for a box grown by padding on all
// sides. An empty box yields no vertices.
func BoundsWireframe(b picking.AABB, padding float32) []float32 {
	if b.IsEmpty() {
		return nil
	}
	return WireframeVertices(
		b.Min.X-padding, b.Min.Y-padding, b.Min.Z-padding,
		b.Max.X+padding, b.Max.Y+padding, b.Max.Z+padding,
	)
}

// VolumeBounds draws the world bounds of every volume in a registry.
// It is registered as a draw listener on the interaction layer.
type VolumeBounds struct {
	Registry *interaction.Registry
	Padding  float32
	Color    [4]float32
}

// NewVolumeBounds creates a bounds overlay for the registry.
func NewVolumeBounds(r *interaction.Registry) *VolumeBounds {
	return &VolumeBounds{Registry: r, Padding: DefaultPadding, Color: BoundsColor}
}

// DrawOpaque draws nothing; bounds are drawn on top of the opaque content.
func (v *VolumeBounds) DrawOpaque(interaction.DrawPass) {}

// DrawTransparent draws one wireframe per volume that has geometry.
func (v *VolumeBounds) DrawTransparent(p interaction.DrawPass) {
	if v.Registry == nil || p.Canvas == nil {
		return
	}
	for _, vol := range v.Registry.Volumes() {
		b, ok := vol.WorldBounds()
		if !ok {
			continue
		}
		verts := BoundsWireframe(b, v.Padding)
		if len(verts) == 0 {
			continue
		}
		p.Canvas.DrawLines(verts, math.Identity(), v.Color)
	}
}
