// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/duotone-dev/duotone/base/errors"
	"github.com/duotone-dev/duotone/base/logx"
)

// Debug enables extra logging of gpu internals. Set before any
// gpu calls are made.
var Debug = false

// theInstance is the global WebGPU instance, created on first use.
var theInstance *wgpu.Instance

// Instance returns the global WebGPU instance, creating it if needed.
func Instance() *wgpu.Instance {
	if theInstance == nil {
		theInstance = wgpu.CreateInstance(nil)
	}
	return theInstance
}

// GPU represents the physical GPU hardware, holding the WebGPU
// instance and adapter. One GPU is shared across all surfaces;
// each surface gets its own logical [Device].
type GPU struct {
	// Instance represents the WebGPU system.
	Instance *wgpu.Instance

	// Adapter represents the physical GPU hardware.
	Adapter *wgpu.Adapter

	// Name is the descriptive name given during Config.
	Name string

	// HighPerformance requests a discrete GPU over an integrated one,
	// when both are present. Set before Config.
	HighPerformance bool

	// ForceFallbackAdapter requests the software fallback adapter,
	// for testing without GPU hardware. Set before Config.
	ForceFallbackAdapter bool
}

// NewGPU returns a new GPU with the global Instance.
func NewGPU() *GPU {
	gp := &GPU{Instance: Instance()}
	return gp
}

// Config configures the GPU by requesting an adapter compatible with
// the given surface, which can be nil for offscreen-only use.
func (gp *GPU) Config(name string, surface *wgpu.Surface) error {
	gp.Name = name
	opts := &wgpu.RequestAdapterOptions{
		CompatibleSurface:    surface,
		ForceFallbackAdapter: gp.ForceFallbackAdapter,
	}
	if gp.HighPerformance {
		opts.PowerPreference = wgpu.PowerPreferenceHighPerformance
	}
	ad, err := gp.Instance.RequestAdapter(opts)
	if errors.Log(err) != nil {
		return err
	}
	gp.Adapter = ad
	if Debug {
		logx.Debug("gpu.GPU: adapter acquired", "name", gp.Name)
	}
	return nil
}

func (gp *GPU) Release() {
	if gp.Adapter != nil {
		gp.Adapter.Release()
		gp.Adapter = nil
	}
}

// NoDisplayGPU returns a GPU and Device usable without any display,
// for offscreen rendering via [RenderTexture], e.g., in tests.
func NoDisplayGPU(name string) (*GPU, *Device, error) {
	gp := NewGPU()
	if err := gp.Config(name, nil); err != nil {
		return nil, nil, err
	}
	dev, err := NewDevice(gp)
	if err != nil {
		return nil, nil, err
	}
	return gp, dev, nil
}
