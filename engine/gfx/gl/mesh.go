package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/quadwave/quadwave/engine/core"
)

// mesh owns one VAO plus its vertex and element buffers. Data is uploaded
// once as STATIC_DRAW and never touched again.
type mesh struct {
	vao, vbo, ebo uint32
	indexCount    int
}

func newMesh(desc core.MeshDesc) (*mesh, error) {
	if len(desc.Vertices) == 0 || len(desc.Indices) == 0 {
		return nil, fmt.Errorf("mesh: empty vertex or index data")
	}
	m := &mesh{indexCount: len(desc.Indices)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(desc.Vertices)*4, gl.Ptr(desc.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(desc.Indices)*4, gl.Ptr(desc.Indices), gl.STATIC_DRAW)

	for _, a := range desc.Layout.Attributes {
		gl.EnableVertexAttribArray(uint32(a.Location))
		gl.VertexAttribPointer(uint32(a.Location), int32(a.Size), glAttribType(a.Type), false,
			int32(desc.Layout.Stride), unsafe.Pointer(uintptr(a.Offset)))
	}

	// Unbind the VAO first; the element buffer binding lives inside it.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m, nil
}

func (m *mesh) IndexCount() int { return m.indexCount }

func (m *mesh) release() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}

func glAttribType(t core.AttribType) uint32 {
	switch t {
	case core.AttribFloat32:
		return gl.FLOAT
	default:
		return gl.FLOAT
	}
}
