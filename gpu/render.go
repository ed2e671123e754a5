// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"image/color"

	"github.com/cogentcore/webgpu/wgpu"
)

// Renderer is the interface for something that can be rendered to:
// a window-backed [Surface] or an offscreen [RenderTexture].
type Renderer interface {
	// Render returns the Render object for managing render passes.
	Render() *Render

	// Device returns the logical device for this rendering target.
	Device() *Device

	// GetCurrentTexture returns the texture view to render into
	// for the current frame.
	GetCurrentTexture() (*wgpu.TextureView, error)

	// SetSize updates the size of the rendering target.
	// It does nothing if the size is zero or unchanged.
	SetSize(size image.Point)

	// Present presents the rendered frame, for surfaces.
	Present()

	// Release releases all resources for the target.
	Release()
}

// Render manages the elements needed for a render pass to a target:
// the clear color, an optional depth buffer, and an optional
// multisampled texture that resolves to the target view.
type Render struct {
	// Format of the target framebuffer we render to.
	Format TextureFormat

	// ClearColor is the color to clear to at the start of a render pass.
	ClearColor wgpu.Color

	// ClearDepth is the depth value to clear to.
	ClearDepth float32

	// ClearStencil is the stencil value to clear to.
	ClearStencil uint32

	// the associated depth buffer, if DepthFormat is set
	depth Texture

	// DepthFormat is the depth buffer format. UndefinedType = no depth buffer.
	DepthFormat Types

	// the multisampled texture that is the actual render target
	// when Format.Samples > 1
	multi Texture

	device Device
}

// Config configures the render pass helper for the given device and
// target format; depthFmt of UndefinedType means no depth buffer.
func (rd *Render) Config(dev *Device, fmt *TextureFormat, depthFmt Types) {
	rd.device = *dev
	rd.Format = *fmt
	rd.DepthFormat = depthFmt
	rd.ClearColor = wgpu.Color{R: 0, G: 0, B: 0, A: 1}
	rd.ClearDepth = 1
	rd.ClearStencil = 0
	rd.config()
}

// config allocates the depth and multisample textures per current format.
func (rd *Render) config() {
	if rd.DepthFormat != UndefinedType {
		rd.depth.device = rd.device
		rd.depth.Format.Defaults()
		rd.depth.Format.Size = rd.Format.Size
		rd.depth.Format.Format = rd.DepthFormat.TextureFormat()
		rd.depth.Format.Samples = rd.Format.Samples
		rd.depth.CreateRenderTexture(wgpu.TextureUsageRenderAttachment)
	}
	if rd.Format.Samples > 1 {
		rd.multi.device = rd.device
		rd.multi.Format = rd.Format
		rd.multi.CreateRenderTexture(wgpu.TextureUsageRenderAttachment)
	}
}

// SetSize reallocates the depth and multisample textures for a new
// target size. The target itself reconfigures separately.
func (rd *Render) SetSize(size image.Point) {
	if rd.Format.Size == size {
		return
	}
	rd.Format.Size = size
	rd.releaseTextures()
	rd.config()
}

// SetClearColor sets the clear color from a standard Go color.
func (rd *Render) SetClearColor(c color.Color) {
	rd.ClearColor = ColorToWGPU(c)
}

func (rd *Render) releaseTextures() {
	rd.depth.Release()
	rd.multi.Release()
}

func (rd *Render) Release() {
	rd.releaseTextures()
}

// ClearRenderPass returns a render pass descriptor that clears the
// framebuffer to the current ClearColor.
func (rd *Render) ClearRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	return rd.renderPass(view, wgpu.LoadOpClear)
}

// LoadRenderPass returns a render pass descriptor that loads the
// previous framebuffer contents.
func (rd *Render) LoadRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	return rd.renderPass(view, wgpu.LoadOpLoad)
}

func (rd *Render) renderPass(view *wgpu.TextureView, load wgpu.LoadOp) *wgpu.RenderPassDescriptor {
	ca := wgpu.RenderPassColorAttachment{
		View:       view,
		LoadOp:     load,
		StoreOp:    wgpu.StoreOpStore,
		ClearValue: rd.ClearColor,
	}
	if rd.Format.Samples > 1 {
		// render into the multisampled texture, resolving to the target view
		ca.View = rd.multi.view
		ca.ResolveTarget = view
	}
	rpd := &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{ca},
	}
	if rd.DepthFormat != UndefinedType {
		rpd.DepthStencilAttachment = &wgpu.RenderPassDepthStencilAttachment{
			View:            rd.depth.view,
			DepthLoadOp:     load,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: rd.ClearDepth,
		}
	}
	return rpd
}

// BeginRenderPass starts a render pass on the given command encoder,
// clearing the frame first according to ClearColor.
// See [Render.BeginRenderPassNoClear] for the non-clearing version.
func (rd *Render) BeginRenderPass(cmd *wgpu.CommandEncoder, view *wgpu.TextureView) *wgpu.RenderPassEncoder {
	return cmd.BeginRenderPass(rd.ClearRenderPass(view))
}

// BeginRenderPassNoClear starts a render pass on the given command
// encoder, loading the prior framebuffer state instead of clearing.
func (rd *Render) BeginRenderPassNoClear(cmd *wgpu.CommandEncoder, view *wgpu.TextureView) *wgpu.RenderPassEncoder {
	return cmd.BeginRenderPass(rd.LoadRenderPass(view))
}

// ColorToWGPU converts a standard Go color to a WebGPU float color.
func ColorToWGPU(c color.Color) wgpu.Color {
	r, g, b, a := c.RGBA()
	return wgpu.Color{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
		A: float64(a) / 0xffff,
	}
}
