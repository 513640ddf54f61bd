package core

import "time"

// App defines the application hooks driven by Run.
type App interface {
	OnStart(e *Engine)           // called once after window/renderer init
	OnRender(e *Engine)          // called once per frame, between clear and present
	OnEvent(e *Engine, ev Event) // window events
	OnShutdown(e *Engine)        // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	start    time.Time
}

func NewEngine(win Window, rend Renderer) *Engine {
	return &Engine{Window: win, Renderer: rend, start: time.Now()}
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	FramebufferSize() (int, int)
	SetTitle(title string)
	Time() float64 // monotonic elapsed seconds since the windowing layer initialized
	SetEventCallback(cb func(Event))
}

// Renderer abstraction. Meshes carry no update operation: geometry is
// uploaded once and immutable for the process lifetime.
type Renderer interface {
	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateMesh(desc MeshDesc) (Mesh, error)
	Draw(cmd DrawCmd)
	Clear(r, g, b, a float32)
	Resize(w, h int)
	Shutdown()
}

// Pipeline is a linked shader program handle. Linked reports whether the
// program actually linked; draws through an unlinked pipeline are
// best-effort (see PipelineDesc).
type Pipeline interface {
	Linked() bool
}

// Mesh is a GPU-resident vertex/index geometry handle.
type Mesh interface {
	IndexCount() int
}

// PipelineDesc describes one shader program: a vertex stage and a fragment
// stage, compiled and linked at creation time. Creation never fails fatally;
// compile/link diagnostics come back as an error next to a handle the caller
// may still use.
type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	Blend          bool
}

// MeshDesc describes an interleaved vertex buffer plus index buffer.
type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

// VertexLayout maps interleaved buffer bytes to shader attribute locations.
type VertexLayout struct {
	Stride     int // bytes per vertex
	Attributes []VertexAttrib
}

type VertexAttrib struct {
	Location int
	Size     int // components
	Type     AttribType
	Offset   int // bytes from vertex start
}

// DrawCmd is one indexed draw: a sub-range of the mesh's index buffer drawn
// with the given pipeline. Uniforms are written before the draw call.
type DrawCmd struct {
	Pipe        Pipeline
	Mesh        Mesh
	Uniforms    map[string]any
	IndexOffset int // in indices, not bytes
	IndexCount  int
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor [4]float32 // RGBA
}
