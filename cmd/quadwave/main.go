package main

import (
	"log"

	"github.com/quadwave/quadwave/engine/colors"
	"github.com/quadwave/quadwave/engine/core"
	glbackend "github.com/quadwave/quadwave/engine/gfx/gl"
	"github.com/quadwave/quadwave/engine/platform"
	"github.com/quadwave/quadwave/engine/scene"
)

func main() {
	cfg := core.Config{
		Title:      "Two Quads One Shader Effect",
		Width:      800,
		Height:     600,
		VSync:      true,
		ClearColor: [4]float32(colors.DarkGray),
	}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(scene.New(), cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
