// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"image/color"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/duotone-dev/duotone/base/errors"
)

// GraphicsSystem manages a set of named GraphicsPipelines that all
// render to a shared target, providing a simple top-level API for the
// whole render process.
type GraphicsSystem struct {
	// optional name of this GraphicsSystem
	Name string

	// GraphicsPipelines by name
	GraphicsPipelines map[string]*GraphicsPipeline

	// Renderer is the rendering target for this system:
	// either a Surface or a RenderTexture.
	Renderer Renderer

	// CommandEncoder is the encoder created in
	// [GraphicsSystem.BeginRenderPass], released in SubmitRender.
	CommandEncoder *wgpu.CommandEncoder

	// logical device for this GraphicsSystem, from the Renderer.
	device Device

	// gpu is our GPU, which has the adapter.
	gpu *GPU
}

// NewGraphicsSystem returns a new GraphicsSystem rendering to the
// given Renderer.
func NewGraphicsSystem(gp *GPU, name string, rd Renderer) *GraphicsSystem {
	sy := &GraphicsSystem{
		Name:              name,
		Renderer:          rd,
		gpu:               gp,
		device:            *rd.Device(),
		GraphicsPipelines: make(map[string]*GraphicsPipeline),
	}
	return sy
}

func (sy *GraphicsSystem) Device() *Device { return &sy.device }
func (sy *GraphicsSystem) GPU() *GPU       { return sy.gpu }
func (sy *GraphicsSystem) Render() *Render { return sy.Renderer.Render() }

// AddGraphicsPipeline adds a new GraphicsPipeline to the system.
func (sy *GraphicsSystem) AddGraphicsPipeline(name string) *GraphicsPipeline {
	pl := NewGraphicsPipeline(name, sy)
	sy.GraphicsPipelines[pl.Name] = pl
	return pl
}

// PipelineByName returns the GraphicsPipeline of the given name,
// or nil if not found.
func (sy *GraphicsSystem) PipelineByName(name string) *GraphicsPipeline {
	return sy.GraphicsPipelines[name]
}

// Config builds all the pipelines, after their shaders and settings
// are in place. Does not need to be called more than once.
func (sy *GraphicsSystem) Config() error {
	var errs []error
	for _, pl := range sy.GraphicsPipelines {
		errs = append(errs, pl.Config(true))
	}
	return errors.Join(errs...)
}

// SetSize updates the rendering target size, e.g., when the window
// is resized. WebGPU has no internal mechanism for tracking this,
// so it must be driven from external events.
func (sy *GraphicsSystem) SetSize(size image.Point) {
	sy.Renderer.SetSize(size)
}

// SetClearColor sets the color to clear the target to at the start
// of each render pass, from a standard Go color.
func (sy *GraphicsSystem) SetClearColor(c color.Color) *GraphicsSystem {
	sy.Render().SetClearColor(c)
	return sy
}

// SetClearValue sets the clear color directly as WebGPU float values,
// for precise per-frame colors.
func (sy *GraphicsSystem) SetClearValue(c wgpu.Color) *GraphicsSystem {
	sy.Render().ClearColor = c
	return sy
}

// NewCommandEncoder returns a new CommandEncoder for encoding
// rendering commands. This is called by BeginRenderPass, with the
// result maintained in CommandEncoder.
func (sy *GraphicsSystem) NewCommandEncoder() (*wgpu.CommandEncoder, error) {
	cmd, err := sy.device.Device.CreateCommandEncoder(nil)
	if errors.Log(err) != nil {
		return nil, err
	}
	return cmd, nil
}

func (sy *GraphicsSystem) beginRenderPass() (*Render, *wgpu.TextureView, error) {
	view, err := sy.Renderer.GetCurrentTexture()
	if err != nil { // already logged; surface reconfigures itself
		return nil, nil, err
	}
	cmd, err := sy.NewCommandEncoder()
	if err != nil {
		return nil, nil, err
	}
	sy.CommandEncoder = cmd
	return sy.Render(), view, nil
}

// BeginRenderPass starts a render pass on the system's target,
// clearing it first, and returns the encoder to which rendering
// commands should be added. Call rp.End and then [EndRenderPass]
// when done.
func (sy *GraphicsSystem) BeginRenderPass() (*wgpu.RenderPassEncoder, error) {
	rd, view, err := sy.beginRenderPass()
	if err != nil {
		return nil, err
	}
	return rd.BeginRenderPass(sy.CommandEncoder, view), nil
}

// BeginRenderPassNoClear starts a render pass that loads the prior
// target contents instead of clearing.
func (sy *GraphicsSystem) BeginRenderPassNoClear() (*wgpu.RenderPassEncoder, error) {
	rd, view, err := sy.beginRenderPass()
	if err != nil {
		return nil, err
	}
	return rd.BeginRenderPassNoClear(sy.CommandEncoder, view), nil
}

// SubmitRender submits the current render commands to the device
// queue and releases the CommandEncoder and the given
// RenderPassEncoder. You must call rp.End prior to calling this.
func (sy *GraphicsSystem) SubmitRender(rp *wgpu.RenderPassEncoder) error {
	cmd := sy.CommandEncoder
	sy.CommandEncoder = nil
	rp.Release() // must happen before Finish
	cmdBuffer, err := cmd.Finish(nil)
	if errors.Log(err) != nil {
		cmd.Release()
		return err
	}
	sy.device.Queue.Submit(cmdBuffer)
	cmdBuffer.Release()
	cmd.Release()
	return nil
}

// EndRenderPass ends the render pass started by [BeginRenderPass]:
// submits the rendering commands to the device and presents the
// result on the Renderer.
func (sy *GraphicsSystem) EndRenderPass(rp *wgpu.RenderPassEncoder) error {
	if err := sy.SubmitRender(rp); err != nil {
		return err
	}
	sy.Renderer.Present()
	return nil
}

// WaitDone waits until the device is done with current processing.
func (sy *GraphicsSystem) WaitDone() {
	sy.device.WaitDone()
}

func (sy *GraphicsSystem) Release() {
	sy.WaitDone()
	for _, pl := range sy.GraphicsPipelines {
		pl.Release()
	}
	sy.GraphicsPipelines = nil
	sy.gpu = nil
}
