// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/duotone-dev/duotone/base/errors"
)

// GraphicsPipeline manages the shader program(s) and fixed-function
// state for one way of rendering to the System's target. The demo use
// case is multiple trivial pipelines over the same target, switched
// between frames.
type GraphicsPipeline struct {
	// unique name of this pipeline
	Name string

	// System that we belong to and manages the shared render target.
	System *GraphicsSystem

	// Shaders contains the actual shader code loaded for this pipeline.
	// A single shader can have multiple entry points: see Entries.
	Shaders map[string]*Shader

	// Entries contains the entry points into shader code,
	// which are what is actually called.
	Entries map[string]*ShaderEntry

	// Primitive has the settings for graphics primitives,
	// e.g., TriangleList.
	Primitive wgpu.PrimitiveState

	// Multisample settings, matching the render target.
	Multisample wgpu.MultisampleState

	// AlphaBlend enables 1-source-alpha blending; otherwise the new
	// color replaces the old.
	AlphaBlend bool

	layout         *wgpu.PipelineLayout
	renderPipeline *wgpu.RenderPipeline
}

// NewGraphicsPipeline returns a new GraphicsPipeline in the given
// System, with default graphics settings.
func NewGraphicsPipeline(name string, sy *GraphicsSystem) *GraphicsPipeline {
	pl := &GraphicsPipeline{Name: name, System: sy}
	pl.SetGraphicsDefaults()
	return pl
}

// AddShader adds a Shader with the given name to the pipeline.
func (pl *GraphicsPipeline) AddShader(name string) *Shader {
	if pl.Shaders == nil {
		pl.Shaders = make(map[string]*Shader)
	}
	if sh, has := pl.Shaders[name]; has {
		slog.Error("gpu.GraphicsPipeline AddShader", "Shader", name, "already exists in pipeline", pl.Name)
		return sh
	}
	sh := NewShader(name, pl.System.Device())
	pl.Shaders[name] = sh
	return sh
}

// ShaderByName returns the Shader by name.
// Returns nil if not found (error auto logged).
func (pl *GraphicsPipeline) ShaderByName(name string) *Shader {
	sh, ok := pl.Shaders[name]
	if !ok {
		slog.Error("gpu.GraphicsPipeline ShaderByName", "Shader", name, "not found in pipeline", pl.Name)
		return nil
	}
	return sh
}

// AddEntry adds a ShaderEntry for the given shader, [ShaderTypes],
// and entry function name.
func (pl *GraphicsPipeline) AddEntry(sh *Shader, typ ShaderTypes, entry string) *ShaderEntry {
	if pl.Entries == nil {
		pl.Entries = make(map[string]*ShaderEntry)
	}
	name := sh.Name + ":" + entry
	if se, has := pl.Entries[name]; has {
		slog.Error("gpu.GraphicsPipeline AddEntry", "ShaderEntry", name, "already exists in pipeline", pl.Name)
		return se
	}
	se := NewShaderEntry(sh, typ, entry)
	pl.Entries[name] = se
	return se
}

// EntryByType returns the ShaderEntry of the given type.
// Returns nil if not found.
func (pl *GraphicsPipeline) EntryByType(typ ShaderTypes) *ShaderEntry {
	for _, se := range pl.Entries {
		if se.Type == typ {
			return se
		}
	}
	return nil
}

// VertexEntry returns the [ShaderEntry] for [VertexShader].
func (pl *GraphicsPipeline) VertexEntry() *ShaderEntry {
	return pl.EntryByType(VertexShader)
}

// FragmentEntry returns the [ShaderEntry] for [FragmentShader].
func (pl *GraphicsPipeline) FragmentEntry() *ShaderEntry {
	return pl.EntryByType(FragmentShader)
}

// Config builds the underlying render pipeline, once the shaders and
// settings are in place. The rebuild flag forces a rebuild of an
// existing pipeline, e.g., after a shader is recompiled. On error the
// existing pipeline is retained, so a bad rebuild leaves the prior
// one running.
func (pl *GraphicsPipeline) Config(rebuild bool) error {
	if pl.renderPipeline != nil && !rebuild {
		return nil
	}
	dev := pl.System.Device().Device
	// no resource bindings in this framework: empty pipeline layout
	layout, err := dev.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: pl.Name,
	})
	if errors.Log(err) != nil {
		return err
	}
	pd := &wgpu.RenderPipelineDescriptor{
		Label:       pl.Name,
		Layout:      layout,
		Primitive:   pl.Primitive,
		Multisample: pl.Multisample,
	}
	ve := pl.VertexEntry()
	if ve != nil {
		pd.Vertex = wgpu.VertexState{
			Module:     ve.Shader.Module(),
			EntryPoint: ve.Entry,
		}
	}
	fe := pl.FragmentEntry()
	if fe != nil {
		blend := &wgpu.BlendStateReplace
		if pl.AlphaBlend {
			blend = &blendStateAlpha
		}
		pd.Fragment = &wgpu.FragmentState{
			Module:     fe.Shader.Module(),
			EntryPoint: fe.Entry,
			Targets: []wgpu.ColorTargetState{{
				Format:    pl.System.Render().Format.Format,
				Blend:     blend,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		}
	}
	rp, err := dev.CreateRenderPipeline(pd)
	if errors.Log(err) != nil {
		layout.Release()
		return err
	}
	pl.releasePipeline() // replace the old pipeline only once the new one exists
	pl.layout = layout
	pl.renderPipeline = rp
	return nil
}

// blendStateAlpha is standard premultiplied 1-source-alpha blending.
var blendStateAlpha = wgpu.BlendState{
	Color: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		Operation: wgpu.BlendOperationAdd,
	},
	Alpha: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		Operation: wgpu.BlendOperationAdd,
	},
}

// BindPipeline binds this pipeline as the one to use for the next
// commands in the given render pass, building it first if needed.
func (pl *GraphicsPipeline) BindPipeline(rp *wgpu.RenderPassEncoder) error {
	if pl.renderPipeline == nil {
		if err := pl.Config(false); err != nil {
			return err
		}
	}
	rp.SetPipeline(pl.renderPipeline)
	return nil
}

//////// Set graphics options

// SetGraphicsDefaults configures the default settings for a
// graphics rendering pipeline.
func (pl *GraphicsPipeline) SetGraphicsDefaults() *GraphicsPipeline {
	pl.SetTopology(wgpu.PrimitiveTopologyTriangleList)
	pl.SetFrontFace(wgpu.FrontFaceCCW)
	pl.SetCullMode(wgpu.CullModeBack)
	pl.SetAlphaBlend(true)
	pl.SetMultisample(1)
	return pl
}

// SetTopology sets the topology of vertex position data.
// TriangleList is the default.
func (pl *GraphicsPipeline) SetTopology(topo wgpu.PrimitiveTopology) *GraphicsPipeline {
	pl.Primitive.Topology = topo
	return pl
}

// SetFrontFace sets the winding order for what counts as a front face.
func (pl *GraphicsPipeline) SetFrontFace(face wgpu.FrontFace) *GraphicsPipeline {
	pl.Primitive.FrontFace = face
	return pl
}

// SetCullMode sets the face culling mode.
func (pl *GraphicsPipeline) SetCullMode(mode wgpu.CullMode) *GraphicsPipeline {
	pl.Primitive.CullMode = mode
	return pl
}

// SetAlphaBlend sets the color blending function: either
// 1-source-alpha blending or replace. Default is alpha blending.
func (pl *GraphicsPipeline) SetAlphaBlend(alphaBlend bool) *GraphicsPipeline {
	pl.AlphaBlend = alphaBlend
	return pl
}

// SetMultisample sets the multisampling count, which must match the
// render target. 1 = no multisampling.
func (pl *GraphicsPipeline) SetMultisample(ms int) *GraphicsPipeline {
	pl.Multisample.Count = uint32(max(1, ms))
	pl.Multisample.Mask = 0xFFFFFFFF
	pl.Multisample.AlphaToCoverageEnabled = false
	return pl
}

func (pl *GraphicsPipeline) releaseShaders() {
	for _, sh := range pl.Shaders {
		sh.Release()
	}
	pl.Shaders = nil
	pl.Entries = nil
}

func (pl *GraphicsPipeline) releasePipeline() {
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
	if pl.renderPipeline != nil {
		pl.renderPipeline.Release()
		pl.renderPipeline = nil
	}
}

func (pl *GraphicsPipeline) Release() {
	pl.releasePipeline()
	pl.releaseShaders()
}
