package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/LTSACH/graphics-course/internal/logger"
)

// Attrib describes one interleaved vertex attribute.
type Attrib struct {
	Location uint32
	Size     int32 // number of floats
}

// Mesh is a VAO/VBO pair holding interleaved float32 vertex data.
type Mesh struct {
	vao     uint32
	vbo     uint32
	count   int32 // vertices currently uploaded
	floats  int32 // floats per vertex
	dynamic bool
}

// NewMesh uploads the given interleaved vertices and configures the
// attribute layout. Dynamic meshes expect SetVertices calls every frame.
func NewMesh(vertices []float32, attribs []Attrib, dynamic bool) *Mesh {
	m := &Mesh{dynamic: dynamic}
	for _, a := range attribs {
		m.floats += a.Size
	}
	m.count = int32(len(vertices)) / m.floats

	usage := uint32(gl.STATIC_DRAW)
	if dynamic {
		usage = gl.DYNAMIC_DRAW
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), usage)

	stride := m.floats * 4
	var offset uintptr
	for _, a := range attribs {
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, stride, offset)
		gl.EnableVertexAttribArray(a.Location)
		offset += uintptr(a.Size) * 4
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("mesh created",
		zap.Uint32("vao", m.vao),
		zap.Uint32("vbo", m.vbo),
		zap.Int32("vertices", m.count),
	)
	return m
}

// SetVertices replaces the buffer contents. The layout must match the one
// given at creation.
func (m *Mesh) SetVertices(vertices []float32) {
	m.count = int32(len(vertices)) / m.floats

	usage := uint32(gl.STATIC_DRAW)
	if m.dynamic {
		usage = gl.DYNAMIC_DRAW
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), usage)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw issues the draw call for all uploaded vertices.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

// Delete releases the GL objects.
func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
}
