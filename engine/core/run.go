package core

import (
	"log"
	"runtime"
	"time"

	"github.com/quadwave/quadwave/engine/profiler"
)

// Run wires the platform window + renderer and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := NewEngine(win, rend)
	win.SetEventCallback(func(ev Event) {
		app.OnEvent(eng, ev)
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			rend.Resize(fw, fh)
		}
	})

	app.OnStart(eng)

	var frames profiler.Recorder
	clear := cfg.ClearColor

	for !win.ShouldClose() {
		frameStart := time.Now()

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		app.OnRender(eng)

		// Present, then let the platform deliver pending events. A close
		// request arriving here flips ShouldClose before the next iteration.
		win.SwapBuffers()
		win.PollEvents()

		frames.Record(time.Since(frameStart))
	}

	app.OnShutdown(eng)
	log.Printf("engine exit after %s (%s)", eng.Uptime().Round(time.Millisecond), frames.Summary())
	return nil
}
