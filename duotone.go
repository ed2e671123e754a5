// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package duotone is a minimal real-time rendering demo: it opens a
// window, clears it to a color that follows the cursor, draws a
// triangle, and toggles between two shader pipelines on Space.
package duotone

import (
	"embed"
	"image"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/duotone-dev/duotone/base/errors"
	"github.com/duotone-dev/duotone/base/logx"
	"github.com/duotone-dev/duotone/gpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

//go:embed shaders/*.wgsl
var shadersFS embed.FS

// pipeline names, indexed by the 1-based selector
const (
	pipelineOne = "one"
	pipelineTwo = "two"
)

// maxFrameFails is how many consecutive frame acquire failures are
// tolerated before the demo gives up. A single failure is normal
// after a surface loss; a run of them means the device is gone.
const maxFrameFails = 10

// pipelineName returns the pipeline name for the given 1-based
// selector, falling back to the first pipeline for anything else.
func pipelineName(sel int) string {
	if sel == 2 {
		return pipelineTwo
	}
	return pipelineOne
}

// App is the demo application: one window, one surface, two graphics
// pipelines, and the clear color that tracks the cursor.
type App struct {
	// Config has the settings the app was started with.
	Config *Config

	// ClearColor is the current background clear color.
	ClearColor wgpu.Color

	gp      *gpu.GPU
	surface *gpu.Surface
	system  *gpu.GraphicsSystem
	window  *glfw.Window

	// winSize is the window size in screen coordinates, which is what
	// cursor positions are reported in. The surface itself tracks the
	// framebuffer size in pixels.
	winSize image.Point

	// current is the 1-based selector for the active pipeline.
	current int

	// reloads carries shader file paths from the fsnotify watcher
	// goroutine to the render loop, which owns all GPU calls.
	reloads chan string

	watcher  *shaderWatcher
	released bool
}

// NewApp opens the window, sets up the full GPU context and the two
// pipelines, and installs the event callbacks. Call [App.Run] to start
// the frame loop and [App.Release] when done.
// IMPORTANT: must be called on the main initial thread.
func NewApp(cfg *Config) (*App, error) {
	if err := gpu.Init(); err != nil {
		return nil, err
	}
	window, wsurf, err := gpu.GLFWCreateWindow(image.Point{cfg.Width, cfg.Height}, cfg.Title)
	if err != nil {
		gpu.Terminate()
		return nil, err
	}
	ap := &App{
		Config:     cfg,
		ClearColor: InitialClearColor,
		window:     window,
		current:    1,
		reloads:    make(chan string, 4),
	}
	ww, wh := window.GetSize()
	ap.winSize = image.Point{ww, wh}

	ap.gp = gpu.NewGPU()
	ap.gp.HighPerformance = cfg.HighPerformance
	ap.gp.ForceFallbackAdapter = cfg.FallbackAdapter
	if err := ap.gp.Config(cfg.Title, wsurf); err != nil {
		ap.Release()
		return nil, err
	}
	fw, fh := window.GetFramebufferSize()
	sf, err := gpu.NewSurface(ap.gp, wsurf, image.Point{fw, fh}, 1, gpu.UndefinedType)
	if err != nil {
		ap.Release()
		return nil, err
	}
	sf.SetVSync(cfg.VSync)
	ap.surface = sf
	logx.Info("surface", "format", sf.Format.String())

	ap.system = gpu.NewGraphicsSystem(ap.gp, cfg.Title, sf)
	if err := ap.addPipeline(pipelineOne, cfg.ShaderOne); err != nil {
		ap.Release()
		return nil, err
	}
	if err := ap.addPipeline(pipelineTwo, cfg.ShaderTwo); err != nil {
		ap.Release()
		return nil, err
	}
	if err := ap.system.Config(); err != nil {
		ap.Release()
		return nil, err
	}
	ap.installCallbacks()
	if cfg.Reload {
		ap.watcher = errors.Log1(newShaderWatcher(ap.reloads, cfg.ShaderOne, cfg.ShaderTwo))
	}
	return ap, nil
}

// addPipeline adds a pipeline with shader source from the given file,
// or the embedded default for the pipeline name if the file is empty.
func (ap *App) addPipeline(name, file string) error {
	pl := ap.system.AddGraphicsPipeline(name)
	pl.SetAlphaBlend(false)
	sh := pl.AddShader(name)
	var err error
	if file != "" {
		err = sh.OpenFile(file)
	} else {
		err = sh.OpenFileFS(shadersFS, "shaders/"+name+".wgsl")
	}
	if err != nil {
		return err
	}
	pl.AddEntry(sh, gpu.VertexShader, "vs_main")
	pl.AddEntry(sh, gpu.FragmentShader, "fs_main")
	return nil
}

func (ap *App) installCallbacks() {
	ap.window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		if ap.released {
			return
		}
		ap.ClearColor = CursorColor(x, y, ap.winSize)
	})
	ap.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if ap.released {
			return
		}
		switch {
		case key == glfw.KeySpace && action == glfw.Press:
			ap.TogglePipeline()
		case key == glfw.KeyEscape && action == glfw.Release:
			w.SetShouldClose(true)
		default:
			logx.Debug("key event", "key", key, "action", action)
		}
	})
	ap.window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		if ap.released {
			return
		}
		ap.winSize = image.Point{width, height}
	})
	ap.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		if ap.released {
			return
		}
		// Surface ignores zero (minimized) and unchanged sizes.
		// Content scale changes arrive here too, as a new pixel size.
		ap.system.SetSize(image.Point{width, height})
	})
}

// TogglePipeline switches between the two pipelines.
func (ap *App) TogglePipeline() {
	if ap.current == 1 {
		ap.current = 2
	} else {
		ap.current = 1
	}
	logx.Info("switched pipeline", "current", pipelineName(ap.current))
}

// CurrentPipeline returns the active pipeline per the selector.
func (ap *App) CurrentPipeline() *gpu.GraphicsPipeline {
	return ap.system.PipelineByName(pipelineName(ap.current))
}

// renderFrame renders one frame: clear to the current color, draw the
// triangle with the current pipeline, present.
func (ap *App) renderFrame() error {
	sy := ap.system
	sy.SetClearValue(ap.ClearColor)
	rp, err := sy.BeginRenderPass()
	if err != nil { // surface reconfigured itself; skip this frame
		return err
	}
	if err := ap.CurrentPipeline().BindPipeline(rp); err != nil {
		// still present the cleared frame: the surface texture is
		// acquired and must not be left dangling
		rp.End()
		return sy.EndRenderPass(rp)
	}
	rp.Draw(3, 1, 0, 0)
	rp.End()
	return sy.EndRenderPass(rp)
}

// reloadShader recompiles the shader for the pipeline using the given
// source file and rebuilds that pipeline. A source that fails to
// compile leaves the existing pipeline running.
func (ap *App) reloadShader(fname string) {
	name := pipelineOne
	if fname == ap.Config.ShaderTwo {
		name = pipelineTwo
	}
	pl := ap.system.PipelineByName(name)
	if pl == nil {
		return
	}
	sh := pl.ShaderByName(name)
	if sh == nil {
		return
	}
	if err := sh.OpenFile(fname); err != nil {
		logx.Warn("shader reload failed, keeping current pipeline", "file", fname, "err", err)
		return
	}
	if err := pl.Config(true); err != nil {
		logx.Warn("pipeline rebuild failed", "pipeline", name, "err", err)
		return
	}
	logx.Info("reloaded shader", "file", fname, "pipeline", name)
}

// Run is the frame loop: poll window events, render, report the frame
// rate every 10 seconds. Returns when the window is closed, Escape is
// released, or rendering fails repeatedly.
// IMPORTANT: must be called on the main initial thread.
func (ap *App) Run() error {
	frameCount := 0
	frameFails := 0
	stTime := time.Now()

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	for range ticker.C {
		if ap.window.ShouldClose() {
			return nil
		}
		glfw.PollEvents()
		select {
		case fname := <-ap.reloads:
			ap.reloadShader(fname)
		default:
		}
		if err := ap.renderFrame(); err != nil {
			frameFails++
			if frameFails >= maxFrameFails {
				return errors.Errorf("rendering failed %d frames in a row: %w", frameFails, err)
			}
			continue
		}
		frameFails = 0
		frameCount++
		eTime := time.Now()
		dur := eTime.Sub(stTime).Seconds()
		if dur > 10 {
			logx.Info("frame rate", "fps", int(float64(frameCount)/dur))
			frameCount = 0
			stTime = eTime
		}
	}
	return nil
}

// Release destroys everything in reverse creation order.
// Safe to call more than once.
func (ap *App) Release() {
	if ap.released {
		return
	}
	ap.released = true
	if ap.watcher != nil {
		ap.watcher.close()
		ap.watcher = nil
	}
	if ap.system != nil {
		ap.system.Release()
		ap.system = nil
	}
	if ap.surface != nil {
		ap.surface.Release()
		ap.surface = nil
	}
	if ap.gp != nil {
		ap.gp.Release()
		ap.gp = nil
	}
	if ap.window != nil {
		ap.window.Destroy()
		ap.window = nil
	}
	gpu.Terminate()
}
