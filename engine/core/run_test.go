package core

import (
	"errors"
	"testing"
)

// Doubles for the loop contract. They record the order of calls so the
// per-frame sequence (clear, render, swap, poll) can be asserted.

type seqWindow struct {
	calls      *[]string
	framesLeft int
	cb         func(Event)
	emitResize bool
}

func (w *seqWindow) PollEvents() {
	*w.calls = append(*w.calls, "poll")
	if w.emitResize && w.cb != nil {
		w.emitResize = false
		w.cb(EventResize{W: 320, H: 240})
	}
	w.framesLeft--
}
func (w *seqWindow) SwapBuffers()                 { *w.calls = append(*w.calls, "swap") }
func (w *seqWindow) ShouldClose() bool            { return w.framesLeft <= 0 }
func (w *seqWindow) FramebufferSize() (int, int)  { return 320, 240 }
func (w *seqWindow) SetTitle(string)              {}
func (w *seqWindow) Time() float64                { return 0 }
func (w *seqWindow) SetEventCallback(cb func(Event)) { w.cb = cb }

type seqRenderer struct {
	calls    *[]string
	resizes  []int
	shutdown bool
}

func (r *seqRenderer) CreatePipeline(PipelineDesc) (Pipeline, error) { return nil, nil }
func (r *seqRenderer) CreateMesh(MeshDesc) (Mesh, error)             { return nil, nil }
func (r *seqRenderer) Draw(DrawCmd)                                  {}
func (r *seqRenderer) Clear(_, _, _, _ float32)                      { *r.calls = append(*r.calls, "clear") }
func (r *seqRenderer) Resize(w, _ int)                               { r.resizes = append(r.resizes, w) }
func (r *seqRenderer) Shutdown()                                     { r.shutdown = true }

type seqApp struct {
	calls  *[]string
	events []Event
}

func (a *seqApp) OnStart(*Engine)  { *a.calls = append(*a.calls, "start") }
func (a *seqApp) OnRender(*Engine) { *a.calls = append(*a.calls, "render") }
func (a *seqApp) OnEvent(_ *Engine, ev Event) {
	a.events = append(a.events, ev)
}
func (a *seqApp) OnShutdown(*Engine) { *a.calls = append(*a.calls, "stop") }

func runWith(t *testing.T, win *seqWindow, rend *seqRenderer, app *seqApp) {
	t.Helper()
	err := Run(app, Config{Width: 320, Height: 240},
		func(Config) (Window, error) { return win, nil },
		func(Window, Config) (Renderer, error) { return rend, nil })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunFrameOrdering(t *testing.T) {
	var calls []string
	win := &seqWindow{calls: &calls, framesLeft: 2}
	rend := &seqRenderer{calls: &calls}
	app := &seqApp{calls: &calls}

	runWith(t, win, rend, app)

	want := []string{
		"start",
		"clear", "render", "swap", "poll",
		"clear", "render", "swap", "poll",
		"stop",
	}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls[%d] = %q, want %q (full: %v)", i, calls[i], want[i], calls)
		}
	}
	if !rend.shutdown {
		t.Fatal("renderer was not shut down")
	}
}

func TestRunExitsWithinOneIterationOfClose(t *testing.T) {
	var calls []string
	win := &seqWindow{calls: &calls, framesLeft: 1}
	rend := &seqRenderer{calls: &calls}
	app := &seqApp{calls: &calls}

	runWith(t, win, rend, app)

	renders := 0
	for _, c := range calls {
		if c == "render" {
			renders++
		}
	}
	if renders != 1 {
		t.Fatalf("rendered %d frames after close was signalled, want 1", renders)
	}
}

func TestRunForwardsResizeToRendererAndApp(t *testing.T) {
	var calls []string
	win := &seqWindow{calls: &calls, framesLeft: 1, emitResize: true}
	rend := &seqRenderer{calls: &calls}
	app := &seqApp{calls: &calls}

	runWith(t, win, rend, app)

	// One resize at startup, one from the event.
	if len(rend.resizes) != 2 {
		t.Fatalf("renderer resizes = %v, want 2 entries", rend.resizes)
	}
	if len(app.events) != 1 {
		t.Fatalf("app events = %v, want the resize event", app.events)
	}
	if _, ok := app.events[0].(EventResize); !ok {
		t.Fatalf("app got %T, want EventResize", app.events[0])
	}
}

func TestRunPropagatesWindowError(t *testing.T) {
	boom := errors.New("no display")
	err := Run(&seqApp{calls: new([]string)}, Config{},
		func(Config) (Window, error) { return nil, boom },
		func(Window, Config) (Renderer, error) { t.Fatal("renderer must not be built"); return nil, nil })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}
