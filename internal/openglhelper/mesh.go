package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Attribute describes one float vertex attribute in an interleaved layout
type Attribute struct {
	Location uint32
	Size     int32 // float components
}

// Mesh is a non-indexed triangle list with interleaved float attributes
type Mesh struct {
	vao         *VertexArrayObject
	vbo         *BufferObject
	vertexCount int32
}

// NewMesh uploads interleaved vertices laid out as attrs, in order.
func NewMesh(vertices []float32, attrs ...Attribute) (*Mesh, error) {
	stride := 0
	for _, a := range attrs {
		stride += int(a.Size)
	}
	if stride == 0 || len(vertices)%stride != 0 {
		return nil, fmt.Errorf("vertex data of %d floats does not match stride %d", len(vertices), stride)
	}

	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)

	offset := 0
	for _, a := range attrs {
		vao.SetFloatAttrib(a.Location, a.Size, stride, offset)
		offset += int(a.Size)
	}

	vao.Unbind()
	vbo.Unbind()

	return &Mesh{
		vao:         vao,
		vbo:         vbo,
		vertexCount: int32(len(vertices) / stride),
	}, nil
}

// Draw renders the mesh with the currently bound shader
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
}
