package glbackend

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/quadwave/quadwave/engine/core"
)

// RendererGL implements core.Renderer on an OpenGL 3.3 core context. Every
// object it hands out stays tracked here and is released exactly once, in
// Shutdown, after the loop exits.
type RendererGL struct {
	win       core.Window
	pipelines []*pipeline
	meshes    []*mesh
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	return &RendererGL{win: win}, nil
}

func (r *RendererGL) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	p, err := newPipeline(desc)
	r.pipelines = append(r.pipelines, p)
	return p, err
}

func (r *RendererGL) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	m, err := newMesh(desc)
	if err != nil {
		return nil, err
	}
	r.meshes = append(r.meshes, m)
	return m, nil
}

// Draw binds the pipeline, writes the uniforms and issues one indexed draw
// over the requested index range. GL errors are not checked here; the only
// checked failure points are compile and link, at creation time.
func (r *RendererGL) Draw(cmd core.DrawCmd) {
	p, ok := cmd.Pipe.(*pipeline)
	if !ok {
		return
	}
	m, ok := cmd.Mesh.(*mesh)
	if !ok {
		return
	}

	p.bind()
	for name, value := range cmd.Uniforms {
		p.setUniform(name, value)
	}

	gl.BindVertexArray(m.vao)
	count := cmd.IndexCount
	if count <= 0 {
		count = m.indexCount - cmd.IndexOffset
	}
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, unsafe.Pointer(uintptr(cmd.IndexOffset*4)))
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Shutdown() {
	for _, m := range r.meshes {
		m.release()
	}
	r.meshes = nil
	for _, p := range r.pipelines {
		p.release()
	}
	r.pipelines = nil
}
