// Package mesh holds the static vertex data the demos upload once at startup.
package mesh

type Position3f struct {
	X, Y, Z float32
}

func (p Position3f) Slice() []float32 {
	return []float32{p.X, p.Y, p.Z}
}

type Color struct {
	R, G, B float32
}

func (c Color) Slice() []float32 {
	return []float32{c.R, c.G, c.B}
}

// Vertex is one corner of the triangle with its color.
type Vertex struct {
	Pos   Position3f
	Color Color
}

func NewVertex(pos, color [3]float32) Vertex {
	return Vertex{
		Pos:   Position3f{pos[0], pos[1], pos[2]},
		Color: Color{color[0], color[1], color[2]},
	}
}

// Positions flattens the vertex positions into x,y,z triples.
func Positions(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*3)
	for _, v := range vertices {
		out = append(out, v.Pos.Slice()...)
	}
	return out
}

// Colors flattens the vertex colors into r,g,b triples.
func Colors(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*3)
	for _, v := range vertices {
		out = append(out, v.Color.Slice()...)
	}
	return out
}

// Triangle returns the three colored vertices of the rotating triangle demo.
func Triangle() []Vertex {
	return []Vertex{
		NewVertex([3]float32{0.0, 0.5, 0.0}, [3]float32{1.0, 0.0, 0.0}),
		NewVertex([3]float32{0.5, -0.2, 0.0}, [3]float32{0.0, 1.0, 0.0}),
		NewVertex([3]float32{-0.5, -0.2, 0.0}, [3]float32{1.0, 0.0, 1.0}),
	}
}

// QuadVertices covers clip space with two triangles, two floats per vertex.
var QuadVertices = []float32{
	-1.0, 1.0, -1.0, -1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0, -1.0, 1.0, 1.0,
}

// QuadVertexCount is the number of vertices in QuadVertices.
const QuadVertexCount = 6
