package renderer

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// VBO is an array buffer object.
type VBO struct {
	id uint32
}

func NewVBO() *VBO {
	v := &VBO{}
	gl.GenBuffers(1, &v.id)
	return v
}

func (v *VBO) bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, v.id)
}

// Data uploads data with STATIC_DRAW usage and returns v for chaining.
func (v *VBO) Data(data []float32) *VBO {
	v.bind()
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return v
}

func (v *VBO) Delete() {
	gl.DeleteBuffers(1, &v.id)
}

// VAO is a vertex array object.
type VAO struct {
	id      uint32
	buffers []*VBO
}

func NewVAO() *VAO {
	a := &VAO{}
	gl.GenVertexArrays(1, &a.id)
	return a
}

func (a *VAO) Bind() {
	gl.BindVertexArray(a.id)
}

// Buffer attaches vbo to attribute index as tightly packed float vectors of
// size components. The VAO takes ownership of vbo.
func (a *VAO) Buffer(index uint32, vbo *VBO, size int32) {
	a.Bind()
	gl.EnableVertexAttribArray(index)
	vbo.bind()
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	a.buffers = append(a.buffers, vbo)
}

// Delete releases the vertex array and the buffers attached to it.
func (a *VAO) Delete() {
	for _, b := range a.buffers {
		b.Delete()
	}
	a.buffers = nil
	gl.DeleteVertexArrays(1, &a.id)
}
