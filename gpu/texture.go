// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/duotone-dev/duotone/base/errors"
)

// Texture represents a WebGPU Texture with an associated TextureView,
// in device memory. It is used here for render targets: offscreen
// frames, depth buffers, and multisample buffers.
type Texture struct {
	// Name of the texture, for debugging. Optional.
	Name string

	// Format and size of the texture.
	Format TextureFormat

	// WebGPU texture handle, in device memory
	texture *wgpu.Texture

	// WebGPU texture view
	view *wgpu.TextureView

	// keep track of device for re-creating
	device Device
}

func NewTexture(dev *Device) *Texture {
	tx := &Texture{}
	tx.device = *dev
	tx.Format.Defaults()
	return tx
}

// View returns the texture view, or nil if not created.
func (tx *Texture) View() *wgpu.TextureView {
	return tx.view
}

// ConfigRenderTexture configures the texture as a render target
// frame of the given format, releasing any existing texture.
func (tx *Texture) ConfigRenderTexture(dev *Device, fmt *TextureFormat) error {
	tx.device = *dev
	tx.Format = *fmt
	tx.Format.Samples = 1 // frames are always resolved single-sample
	return tx.CreateRenderTexture(wgpu.TextureUsageRenderAttachment)
}

// CreateRenderTexture creates the texture and view based on the current
// Format, with the given usage. Calls Release first.
func (tx *Texture) CreateRenderTexture(usage wgpu.TextureUsage) error {
	tx.Release()
	t, err := tx.device.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         tx.Name,
		Size:          tx.Format.Extent3D(),
		MipLevelCount: 1,
		SampleCount:   uint32(max(1, tx.Format.Samples)),
		Dimension:     wgpu.TextureDimension2D,
		Format:        tx.Format.Format,
		Usage:         usage,
	})
	if errors.Log(err) != nil {
		return err
	}
	tx.texture = t
	vw, err := t.CreateView(nil)
	if errors.Log(err) != nil {
		t.Release()
		tx.texture = nil
		return err
	}
	tx.view = vw
	return nil
}

func (tx *Texture) Release() {
	if tx.view != nil {
		tx.view.Release()
		tx.view = nil
	}
	if tx.texture != nil {
		tx.texture.Release()
		tx.texture = nil
	}
}
