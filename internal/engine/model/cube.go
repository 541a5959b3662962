package model

// Cube face order. Each face is a separate texture group so it can carry its own label.
const (
	FaceTop = iota
	FaceLeft
	FaceRight
	FaceBottom
	FaceBack
	FaceFront
	FaceCount
)

type faceDef struct {
	normal  [3]float32
	corners [4][3]float32 // counter-clockwise seen from outside
}

var cubeFaces = [FaceCount]faceDef{
	FaceTop: {
		normal:  [3]float32{0, 1, 0},
		corners: [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},
	},
	FaceLeft: {
		normal:  [3]float32{-1, 0, 0},
		corners: [4][3]float32{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}},
	},
	FaceRight: {
		normal:  [3]float32{1, 0, 0},
		corners: [4][3]float32{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},
	},
	FaceBottom: {
		normal:  [3]float32{0, -1, 0},
		corners: [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
	},
	FaceBack: {
		normal:  [3]float32{0, 0, -1},
		corners: [4][3]float32{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}},
	},
	FaceFront: {
		normal:  [3]float32{0, 0, 1},
		corners: [4][3]float32{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
	},
}

var quadUV = [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

// Cube builds an axis-aligned box of the given size centered at the origin.
// Faces follow the FaceTop..FaceFront order, one texture group per face.
func Cube(name string, sx, sy, sz float32) *Mesh {
	half := [3]float32{sx / 2, sy / 2, sz / 2}
	m := &Mesh{
		Name:     name,
		Vertices: make([]Vertex, 0, FaceCount*4),
		Indices:  make([]uint32, 0, FaceCount*6),
		Groups:   make([]TextureGroup, 0, FaceCount),
		Bounds: Bounds{
			Min: [3]float32{-half[0], -half[1], -half[2]},
			Max: half,
		},
	}

	for face, def := range cubeFaces {
		base := uint32(len(m.Vertices))
		for i, c := range def.corners {
			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{c[0] * half[0], c[1] * half[1], c[2] * half[2]},
				Normal:   def.normal,
				TexCoord: quadUV[i],
			})
		}
		start := int32(len(m.Indices))
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
		m.Groups = append(m.Groups, TextureGroup{TextureIdx: face, StartIndex: start, IndexCount: 6})
	}
	return m
}

// Untextured clears the texture index of every group.
func (m *Mesh) Untextured() *Mesh {
	for i := range m.Groups {
		m.Groups[i].TextureIdx = -1
	}
	return m
}
