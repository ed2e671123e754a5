// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package gpu

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/duotone-dev/duotone/base/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, for desktop platform builds.
// other platforms need to provide their own Init() and Terminate() methods.

// Init initializes the WebGPU system for display-enabled use, using glfw.
// Must be called before any other gpu calls.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	if err := glfw.Init(); err != nil {
		return errors.Log(err)
	}
	return nil
}

// Terminate shuts down the WebGPU system; call as last thing before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// GLFWCreateWindow makes a new glfw window of the given size, with no
// client graphics API so WebGPU can own the surface, and returns the
// window along with its WebGPU surface handle. The caller installs its
// own event callbacks on the window and runs glfw.PollEvents on the
// main thread. Init must have been called first.
func GLFWCreateWindow(size image.Point, title string) (*glfw.Window, *wgpu.Surface, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		return nil, nil, errors.Log(err)
	}
	surface := Instance().CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	return window, surface, nil
}
