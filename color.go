// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duotone

import (
	"image"

	"cogentcore.org/core/math32"
	"github.com/cogentcore/webgpu/wgpu"
)

// InitialClearColor is the clear color used before any cursor event.
var InitialClearColor = wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1}

// CursorColor maps a cursor position within a window of the given size
// to a clear color: red tracks the cursor left-to-right, green the
// reverse, and blue top-to-bottom. Components are clamped to [0, 1]
// because drag events can report positions outside the window.
func CursorColor(x, y float64, size image.Point) wgpu.Color {
	if size.X <= 0 || size.Y <= 0 {
		return InitialClearColor
	}
	fx := math32.Clamp(float32(x)/float32(size.X), 0, 1)
	fy := math32.Clamp(float32(y)/float32(size.Y), 0, 1)
	return wgpu.Color{
		R: float64(fx),
		G: float64(1 - fx),
		B: float64(fy),
		A: 1,
	}
}
