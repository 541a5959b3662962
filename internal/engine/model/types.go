// Package model provides the mesh layout used for handle and indicator geometry.
package model

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// TextureGroup groups triangles by texture index for batched rendering.
// A negative TextureIdx means the group is drawn untextured.
type TextureGroup struct {
	TextureIdx int
	StartIndex int32
	IndexCount int32
}

// Mesh holds indexed triangle data.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Groups   []TextureGroup
	Bounds   Bounds

	// Textures holds uploaded texture handles indexed by TextureGroup.TextureIdx.
	Textures []uint32
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Texture returns the texture handle of group g, or 0 when untextured.
func (m *Mesh) Texture(g TextureGroup) uint32 {
	if g.TextureIdx < 0 || g.TextureIdx >= len(m.Textures) {
		return 0
	}
	return m.Textures[g.TextureIdx]
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
