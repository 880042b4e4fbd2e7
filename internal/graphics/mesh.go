package graphics

import (
	"fmt"

	"spx-editor/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh is an uploaded triangle list with position, normal and uv attributes.
type Mesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

// NewMesh uploads interleaved vertices laid out as scene.FloatsPerVertex floats.
func NewMesh(vertices []float32) (*Mesh, error) {
	if len(vertices) == 0 || len(vertices)%scene.FloatsPerVertex != 0 {
		return nil, fmt.Errorf("mesh: %d floats is not a whole number of vertices", len(vertices))
	}

	m := &Mesh{count: int32(len(vertices) / scene.FloatsPerVertex)}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(scene.FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m, nil
}

// NewKindMesh uploads the primitive mesh for kind.
func NewKindMesh(kind scene.Kind) (*Mesh, error) {
	m, err := NewMesh(scene.Vertices(kind))
	if err != nil {
		return nil, fmt.Errorf("%s mesh: %w", kind, err)
	}
	return m, nil
}

// Draw issues the draw call. The caller binds the shader and textures.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

// Delete frees the GPU buffers.
func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
}
