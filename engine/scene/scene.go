package scene

import (
	"log"

	"github.com/quadwave/quadwave/engine/core"
)

const (
	flatIndexOffset = 0
	waveIndexOffset = indicesPerQuad
)

// QuadScene renders two static quads: one flat-colored, one with a wave
// distortion animated by an elapsed-time uniform.
type QuadScene struct {
	flat core.Pipeline
	wave core.Pipeline
	mesh core.Mesh

	waveUniforms map[string]any // reused every frame
}

func New() *QuadScene { return &QuadScene{} }

// OnStart compiles both shader programs and uploads the quad geometry.
// Compile/link diagnostics are reported and rendering continues with the
// returned handle; compile and link are the only checked failure points
// after startup.
func (s *QuadScene) OnStart(e *core.Engine) {
	var err error
	s.flat, err = e.Renderer.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertexSource,
		FragmentSource: flatFragmentSource,
	})
	if err != nil {
		log.Printf("flat pipeline: %v", err)
	}

	s.wave, err = e.Renderer.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertexSource,
		FragmentSource: waveFragmentSource,
	})
	if err != nil {
		log.Printf("wave pipeline: %v", err)
	}

	s.mesh, err = e.Renderer.CreateMesh(core.MeshDesc{
		Vertices: twoQuadVertices(),
		Indices:  twoQuadIndices(),
		Layout:   quadVertexLayout,
	})
	if err != nil {
		panic(err)
	}

	s.waveUniforms = map[string]any{"time": float32(0)}
}

// OnRender issues the two draw calls, in order: the flat quad, then the wave
// quad with a fresh elapsed-time value.
func (s *QuadScene) OnRender(e *core.Engine) {
	e.Renderer.Draw(core.DrawCmd{
		Pipe:        s.flat,
		Mesh:        s.mesh,
		IndexOffset: flatIndexOffset,
		IndexCount:  indicesPerQuad,
	})

	s.waveUniforms["time"] = float32(e.Window.Time())
	e.Renderer.Draw(core.DrawCmd{
		Pipe:        s.wave,
		Mesh:        s.mesh,
		Uniforms:    s.waveUniforms,
		IndexOffset: waveIndexOffset,
		IndexCount:  indicesPerQuad,
	})
}

func (s *QuadScene) OnEvent(e *core.Engine, ev core.Event) {}
func (s *QuadScene) OnShutdown(e *core.Engine)             {}
