// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duotone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineName(t *testing.T) {
	assert.Equal(t, pipelineOne, pipelineName(1))
	assert.Equal(t, pipelineTwo, pipelineName(2))
	// anything else falls back to the first pipeline
	assert.Equal(t, pipelineOne, pipelineName(0))
	assert.Equal(t, pipelineOne, pipelineName(3))
	assert.Equal(t, pipelineOne, pipelineName(-1))
}

func TestEmbeddedShaders(t *testing.T) {
	for _, name := range []string{pipelineOne, pipelineTwo} {
		b, err := shadersFS.ReadFile("shaders/" + name + ".wgsl")
		require.NoError(t, err)
		assert.Contains(t, string(b), "vs_main")
		assert.Contains(t, string(b), "fs_main")
	}
}

func TestAppWindow(t *testing.T) {
	t.Skip("Need display and GPU on CI")
	cfg, err := OpenConfig("")
	require.NoError(t, err)
	app, err := NewApp(cfg)
	require.NoError(t, err)
	defer app.Release()

	assert.Equal(t, InitialClearColor, app.ClearColor)
	assert.Equal(t, pipelineOne, pipelineName(app.current))
	app.TogglePipeline()
	assert.Equal(t, pipelineTwo, pipelineName(app.current))
	require.NotNil(t, app.CurrentPipeline())
	assert.NoError(t, app.renderFrame())
}
