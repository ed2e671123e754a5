// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/duotone-dev/duotone/base/errors"
)

// Shader manages a single WGSL shader module, which can have
// multiple entry points: see [ShaderEntry].
type Shader struct {
	// Name of the shader, for debugging and labels.
	Name string

	// module is the compiled WebGPU shader module.
	module *wgpu.ShaderModule

	device Device
}

// NewShader returns a new Shader with the given name, on the given device.
// Use one of the Open methods to compile the WGSL source.
func NewShader(name string, dev *Device) *Shader {
	return &Shader{Name: name, device: *dev}
}

// OpenFile loads WGSL source code from the given file and compiles it.
func (sh *Shader) OpenFile(fname string) error {
	b, err := os.ReadFile(fname)
	if errors.Log(err) != nil {
		return err
	}
	if sh.Name == "" {
		sh.Name = filepath.Base(fname)
	}
	return sh.OpenCode(string(b))
}

// OpenFileFS loads WGSL source code from the given filesystem,
// e.g., an embed.FS, and compiles it.
func (sh *Shader) OpenFileFS(fsys fs.FS, fname string) error {
	b, err := fs.ReadFile(fsys, fname)
	if errors.Log(err) != nil {
		return err
	}
	return sh.OpenCode(string(b))
}

// OpenCode compiles the given WGSL source code into a shader module.
// On error, any existing module is retained, so a failed recompile
// does not take down a previously working shader.
func (sh *Shader) OpenCode(code string) error {
	module, err := sh.device.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          sh.Name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: code},
	})
	if errors.Log(err) != nil {
		return err
	}
	if sh.module != nil {
		sh.module.Release()
	}
	sh.module = module
	return nil
}

// Module returns the compiled shader module, or nil if not yet compiled.
func (sh *Shader) Module() *wgpu.ShaderModule {
	return sh.module
}

func (sh *Shader) Release() {
	if sh.module == nil {
		return
	}
	sh.module.Release()
	sh.module = nil
}

// ShaderTypes is the type of shader entry point.
type ShaderTypes int32

const (
	UnknownShader ShaderTypes = iota
	VertexShader
	FragmentShader
)

// ShaderEntry is an entry point into shader code: Shader plus the
// name of an entry function of the given type, which is what actually
// gets called in the pipeline.
type ShaderEntry struct {
	// Shader has the code
	Shader *Shader

	// Type of entry point
	Type ShaderTypes

	// Entry is the name of the function to call, e.g., vs_main
	Entry string
}

// NewShaderEntry returns a new ShaderEntry for the given shader,
// type and entry function name.
func NewShaderEntry(sh *Shader, typ ShaderTypes, entry string) *ShaderEntry {
	return &ShaderEntry{Shader: sh, Type: typ, Entry: entry}
}
