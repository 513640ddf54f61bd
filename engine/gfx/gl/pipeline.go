package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/quadwave/quadwave/engine/core"
)

// pipeline owns one linked GL program. Uniform locations are cached on first
// lookup; the cache lives as long as the program does.
type pipeline struct {
	prog   uint32
	linked bool
	blend  bool
	locs   map[string]int32
}

func newPipeline(desc core.PipelineDesc) (*pipeline, error) {
	prog, linked, err := linkProgram(desc.VertexSource, desc.FragmentSource)
	return &pipeline{
		prog:   prog,
		linked: linked,
		blend:  desc.Blend,
		locs:   make(map[string]int32),
	}, err
}

func (p *pipeline) Linked() bool { return p.linked }

func (p *pipeline) bind() {
	gl.UseProgram(p.prog)
	if p.blend {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}
}

func (p *pipeline) uniformLocation(name string) int32 {
	loc, ok := p.locs[name]
	if !ok {
		loc = gl.GetUniformLocation(p.prog, gl.Str(name+"\x00"))
		p.locs[name] = loc
	}
	return loc
}

func (p *pipeline) setUniform(name string, value any) {
	loc := p.uniformLocation(name)
	if loc < 0 {
		return
	}
	switch v := value.(type) {
	case float32:
		gl.Uniform1f(loc, v)
	case float64:
		gl.Uniform1f(loc, float32(v))
	case int32:
		gl.Uniform1i(loc, v)
	case int:
		gl.Uniform1i(loc, int32(v))
	case [2]float32:
		gl.Uniform2f(loc, v[0], v[1])
	case [4]float32:
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	case [16]float32:
		gl.UniformMatrix4fv(loc, 1, false, &v[0])
	}
}

func (p *pipeline) release() {
	if p.prog != 0 {
		gl.DeleteProgram(p.prog)
		p.prog = 0
	}
}
