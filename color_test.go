// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duotone

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorColor(t *testing.T) {
	sz := image.Point{800, 600}

	c := CursorColor(400, 300, sz)
	assert.InDelta(t, 0.5, c.R, 1.0e-6)
	assert.InDelta(t, 0.5, c.G, 1.0e-6)
	assert.InDelta(t, 0.5, c.B, 1.0e-6)
	assert.Equal(t, 1.0, c.A)

	c = CursorColor(0, 0, sz)
	assert.Equal(t, 0.0, c.R)
	assert.Equal(t, 1.0, c.G)
	assert.Equal(t, 0.0, c.B)

	c = CursorColor(800, 600, sz)
	assert.Equal(t, 1.0, c.R)
	assert.Equal(t, 0.0, c.G)
	assert.Equal(t, 1.0, c.B)
}

func TestCursorColorClamps(t *testing.T) {
	sz := image.Point{800, 600}

	// drags can report positions outside the window
	c := CursorColor(-50, -50, sz)
	assert.Equal(t, 0.0, c.R)
	assert.Equal(t, 1.0, c.G)
	assert.Equal(t, 0.0, c.B)

	c = CursorColor(10000, 10000, sz)
	assert.Equal(t, 1.0, c.R)
	assert.Equal(t, 0.0, c.G)
	assert.Equal(t, 1.0, c.B)
}

func TestCursorColorZeroSize(t *testing.T) {
	c := CursorColor(10, 10, image.Point{})
	assert.Equal(t, InitialClearColor, c)
}
