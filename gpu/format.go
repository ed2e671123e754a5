// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// TextureFormat describes the size and WebGPU format of a texture
// or rendering target.
type TextureFormat struct {
	// Size of the texture
	Size image.Point

	// Texture format: RGBA8UnormSrgb is the default
	Format wgpu.TextureFormat

	// number of samples: set higher for multisampled rendering,
	// otherwise the default of 1
	Samples int

	// number of layers, for texture arrays; 1 for all uses here
	Layers int
}

func (im *TextureFormat) Defaults() {
	im.Format = wgpu.TextureFormatRGBA8UnormSrgb
	im.Samples = 1
	im.Layers = 1
}

// String returns a human-readable version of the format.
func (im *TextureFormat) String() string {
	return fmt.Sprintf("Size: %v  Format: %s  MultiSample: %d", im.Size, TextureFormatName(im.Format), im.Samples)
}

// SetSize sets the width, height.
func (im *TextureFormat) SetSize(w, h int) {
	im.Size = image.Point{X: w, Y: h}
}

// Set sets width, height and format.
func (im *TextureFormat) Set(w, h int, ft wgpu.TextureFormat) {
	im.SetSize(w, h)
	im.Format = ft
}

// SetMultisample sets the number of multisampling samples.
// Values must be a power of 2; 4 is typically sufficient.
func (im *TextureFormat) SetMultisample(nsamp int) {
	im.Samples = max(1, nsamp)
}

// Size32 returns the size as uint32 values.
func (im *TextureFormat) Size32() (width, height uint32) {
	return uint32(im.Size.X), uint32(im.Size.Y)
}

// Extent3D returns the WebGPU Extent3D version of the size.
func (im *TextureFormat) Extent3D() wgpu.Extent3D {
	return wgpu.Extent3D{
		Width:              uint32(im.Size.X),
		Height:             uint32(im.Size.Y),
		DepthOrArrayLayers: uint32(max(1, im.Layers)),
	}
}

// Aspect returns the aspect ratio X / Y.
func (im *TextureFormat) Aspect() float32 {
	if im.Size.Y > 0 {
		return float32(im.Size.X) / float32(im.Size.Y)
	}
	return 1.3
}

// Bounds returns the rectangle defining this texture: 0,0,w,h.
func (im *TextureFormat) Bounds() image.Rectangle {
	return image.Rectangle{Max: im.Size}
}

// IsSRGB returns whether the given texture format is an sRGB
// colorspace format. Shader output assumes an sRGB surface:
// a linear format comes out darker.
func IsSRGB(ft wgpu.TextureFormat) bool {
	switch ft {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	}
	return false
}

// TextureFormatName returns a human-readable name for
// commonly-available surface formats, and the raw enum value
// formatted as a number otherwise.
func TextureFormatName(ft wgpu.TextureFormat) string {
	if nm, ok := textureFormatNames[ft]; ok {
		return nm
	}
	return fmt.Sprintf("TextureFormat(%d)", ft)
}

var textureFormatNames = map[wgpu.TextureFormat]string{
	wgpu.TextureFormatRGBA8UnormSrgb: "RGBA 8bit sRGB colorspace",
	wgpu.TextureFormatRGBA8Unorm:     "RGBA 8bit unsigned linear colorspace",
	wgpu.TextureFormatBGRA8UnormSrgb: "BGRA 8bit sRGB colorspace",
	wgpu.TextureFormatBGRA8Unorm:     "BGRA 8bit unsigned linear colorspace",
}
