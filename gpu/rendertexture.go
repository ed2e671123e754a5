// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// RenderTexture is an offscreen, non-window-backed rendering target,
// functioning like a Surface. It is used for headless rendering,
// e.g., in tests without a display.
type RenderTexture struct {
	// Format has the current image format and dimensions.
	Format TextureFormat

	// NFrames is the number of frames to maintain in the simulated
	// swapchain, e.g., 2 = double-buffering.
	NFrames int

	// Frames that we iterate through in rendering subsequent frames.
	Frames []*Texture

	// render pass helper
	render Render

	// pointer to gpu, for convenience
	GPU *GPU

	// current frame number
	curFrame int

	// device, which we do NOT own: comes from the caller.
	device Device
}

// NewRenderTexture returns a new offscreen render target for the given
// GPU and device. size is the target size (can be updated with SetSize),
// samples the multisampling count (1 = none), depthFmt the depth buffer
// format (UndefinedType = none).
func NewRenderTexture(gp *GPU, dev *Device, size image.Point, samples int, depthFmt Types) *RenderTexture {
	rt := &RenderTexture{GPU: gp, NFrames: 1}
	rt.device = *dev
	rt.Format.Defaults()
	rt.Format.Set(size.X, size.Y, wgpu.TextureFormatRGBA8UnormSrgb)
	rt.Format.SetMultisample(samples)
	rt.render.Config(&rt.device, &rt.Format, depthFmt)
	rt.ConfigFrames()
	return rt
}

func (rt *RenderTexture) Render() *Render { return &rt.render }

func (rt *RenderTexture) Device() *Device { return &rt.device }

// GetCurrentTexture returns the texture view that is the current
// target for rendering, advancing the frame counter.
func (rt *RenderTexture) GetCurrentTexture() (*wgpu.TextureView, error) {
	cf := rt.curFrame
	rt.curFrame = (rt.curFrame + 1) % rt.NFrames
	return rt.Frames[cf].View(), nil
}

// ConfigFrames configures the frames, releasing any existing ones,
// so it is safe for re-use.
func (rt *RenderTexture) ConfigFrames() {
	rt.ReleaseFrames()
	rt.Frames = make([]*Texture, rt.NFrames)
	for i := range rt.NFrames {
		fr := NewTexture(&rt.device)
		fr.ConfigRenderTexture(&rt.device, &rt.Format)
		rt.Frames[i] = fr
	}
}

// SetSize sets the size for the render frames,
// doing nothing if the size is zero or already current.
func (rt *RenderTexture) SetSize(size image.Point) {
	if size.X <= 0 || size.Y <= 0 || size == rt.Format.Size {
		return
	}
	rt.render.SetSize(size)
	rt.Format.Size = size
	rt.ConfigFrames()
}

func (rt *RenderTexture) ReleaseFrames() {
	for _, fr := range rt.Frames {
		fr.Release()
	}
	rt.Frames = nil
}

func (rt *RenderTexture) Release() {
	rt.ReleaseFrames()
	rt.render.Release()
}

// Present is a no-op for offscreen targets.
func (rt *RenderTexture) Present() {}
