// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duotone

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cf, err := OpenConfig("")
	require.NoError(t, err)
	assert.Equal(t, "duotone", cf.Title)
	assert.Equal(t, 800, cf.Width)
	assert.Equal(t, 600, cf.Height)
	assert.False(t, cf.VSync)
	assert.Empty(t, cf.ShaderOne)
}

func TestConfigFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "duotone.toml")
	src := `
title = "toggle"
width = 1024
height = 768
vsync = true
shader-one = "one.wgsl"
reload = true
`
	require.NoError(t, os.WriteFile(fname, []byte(src), 0666))

	cf, err := OpenConfig(fname)
	require.NoError(t, err)
	assert.Equal(t, "toggle", cf.Title)
	assert.Equal(t, 1024, cf.Width)
	assert.Equal(t, 768, cf.Height)
	assert.True(t, cf.VSync)
	assert.Equal(t, "one.wgsl", cf.ShaderOne)
	assert.True(t, cf.Reload)
	assert.False(t, cf.Debug) // not in file: default
}

func TestConfigFileMissing(t *testing.T) {
	cf, err := OpenConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
	// defaults still usable
	assert.Equal(t, 800, cf.Width)
}
