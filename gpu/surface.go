// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/duotone-dev/duotone/base/errors"
	"github.com/duotone-dev/duotone/base/logx"
)

// Surface manages the presentable surface for a window, with its own
// logical device, negotiated configuration, and render pass helper.
// The OS-specific surface handle must be created first, e.g., via
// [GLFWCreateWindow] or wgpuglfw, and the window must outlive it.
type Surface struct {
	// Format has the negotiated surface format and current size.
	Format TextureFormat

	// GPU is the physical gpu, for capability queries on reconfigure.
	GPU *GPU

	// render pass helper for this surface
	render Render

	// each surface has its own logical device
	device Device

	// surface is the WebGPU surface handle.
	surface *wgpu.Surface

	// alphaMode is the negotiated composite alpha mode.
	alphaMode wgpu.CompositeAlphaMode

	// presentMode controls frame delivery: Fifo = vsync,
	// Immediate = uncapped.
	presentMode wgpu.PresentMode

	// current acquired frame, released on Present
	curTexture *wgpu.Texture
	curView    *wgpu.TextureView

	// set when the surface must be reconfigured before the next acquire
	needsConfig bool
}

// NewSurface returns a new Surface for the given WebGPU surface handle,
// negotiating the format against the adapter and configuring at the
// given size. samples is the multisampling count (1 = none) and
// depthFmt the depth buffer format (UndefinedType = none); this demo
// framework renders color only, but the render pass supports both.
func NewSurface(gp *GPU, wsurf *wgpu.Surface, size image.Point, samples int, depthFmt Types) (*Surface, error) {
	sf := &Surface{
		GPU:         gp,
		surface:     wsurf,
		presentMode: wgpu.PresentModeFifo,
	}
	dev, err := NewDevice(gp)
	if err != nil {
		return nil, err
	}
	sf.device = *dev

	caps := wsurf.GetCapabilities(gp.Adapter)
	if len(caps.Formats) == 0 {
		return nil, errors.Log(errors.New("gpu.Surface: no texture formats reported for surface"))
	}
	// shader output assumes sRGB; fall back to the first reported
	// format only when no sRGB format is available.
	format := caps.Formats[0]
	for _, ft := range caps.Formats {
		if IsSRGB(ft) {
			format = ft
			break
		}
	}
	sf.Format.Defaults()
	sf.Format.Format = format
	sf.Format.Size = size
	sf.Format.SetMultisample(samples)
	if len(caps.AlphaModes) > 0 {
		sf.alphaMode = caps.AlphaModes[0]
	}
	sf.config()
	sf.render.Config(&sf.device, &sf.Format, depthFmt)
	if Debug {
		logx.Debug("gpu.Surface: configured", "format", sf.Format.String())
	}
	return sf, nil
}

func (sf *Surface) Render() *Render { return &sf.render }

func (sf *Surface) Device() *Device { return &sf.device }

// SetVSync sets whether presentation waits for the display's vertical
// sync (Fifo present mode) or runs uncapped (Immediate). The change
// takes effect at the next frame acquire.
func (sf *Surface) SetVSync(on bool) {
	mode := wgpu.PresentModeImmediate
	if on {
		mode = wgpu.PresentModeFifo
	}
	if sf.presentMode == mode {
		return
	}
	sf.presentMode = mode
	sf.needsConfig = true
}

// config (re)configures the surface per the current Format and modes.
func (sf *Surface) config() {
	w, h := sf.Format.Size32()
	sf.surface.Configure(sf.GPU.Adapter, sf.device.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sf.Format.Format,
		Width:       w,
		Height:      h,
		PresentMode: sf.presentMode,
		AlphaMode:   sf.alphaMode,
	})
	sf.needsConfig = false
}

// SetSize records a new size and flags the surface for reconfiguration
// at the next frame. Zero and unchanged sizes are ignored: minimized
// windows report zero and must not reconfigure.
func (sf *Surface) SetSize(size image.Point) {
	if size.X <= 0 || size.Y <= 0 || size == sf.Format.Size {
		return
	}
	sf.Format.Size = size
	sf.render.SetSize(size)
	sf.needsConfig = true
}

// GetCurrentTexture returns the texture view to render into for the
// current frame, reconfiguring the surface first if needed. If the
// acquire fails (e.g., surface lost or outdated), the surface is
// reconfigured so the next frame can proceed, and the error returned:
// skip the current frame.
func (sf *Surface) GetCurrentTexture() (*wgpu.TextureView, error) {
	if sf.curTexture != nil { // prior frame was never presented
		sf.curView.Release()
		sf.curView = nil
		sf.curTexture.Release()
		sf.curTexture = nil
	}
	if sf.needsConfig {
		sf.config()
	}
	tex, err := sf.surface.GetCurrentTexture()
	if err != nil {
		sf.config()
		return nil, errors.Log(err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, errors.Log(err)
	}
	sf.curTexture = tex
	sf.curView = view
	return view, nil
}

// Present presents the current frame to the window and releases
// the acquired texture.
func (sf *Surface) Present() {
	if sf.curTexture == nil {
		return
	}
	sf.surface.Present()
	sf.curView.Release()
	sf.curView = nil
	sf.curTexture.Release()
	sf.curTexture = nil
}

func (sf *Surface) Release() {
	if sf.curView != nil {
		sf.curView.Release()
		sf.curView = nil
	}
	if sf.curTexture != nil {
		sf.curTexture.Release()
		sf.curTexture = nil
	}
	sf.render.Release()
	if sf.surface != nil {
		sf.surface.Release()
		sf.surface = nil
	}
	sf.device.Release()
}
