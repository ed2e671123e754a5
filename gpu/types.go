// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Types is the list of GPU data types used for rendering targets.
type Types int32

const (
	UndefinedType Types = iota

	// TextureRGBA32 is the standard 8 bits per component R,G,B,A image format.
	TextureRGBA32

	// TextureBGRA32 is the BGRA byte-order variant, common for surfaces.
	TextureBGRA32

	// Depth32 is a standard float32 depth buffer.
	Depth32

	// Depth24Stencil8 is a standard 24 bit float depth with 8 bit stencil.
	Depth24Stencil8
)

// TextureFormat returns the WebGPU TextureFormat for the given type.
func (tp Types) TextureFormat() wgpu.TextureFormat {
	return typeToTextureFormat[tp]
}

var typeToTextureFormat = map[Types]wgpu.TextureFormat{
	UndefinedType:   wgpu.TextureFormatUndefined,
	TextureRGBA32:   wgpu.TextureFormatRGBA8UnormSrgb,
	TextureBGRA32:   wgpu.TextureFormatBGRA8UnormSrgb,
	Depth32:         wgpu.TextureFormatDepth32Float,
	Depth24Stencil8: wgpu.TextureFormatDepth24PlusStencil8,
}
