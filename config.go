// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duotone

import (
	"os"

	"github.com/duotone-dev/duotone/base/errors"
	"github.com/pelletier/go-toml/v2"
)

// Config has the demo settings, loadable from a TOML file and
// overridable from command-line flags.
type Config struct {
	// Title is the window title.
	Title string `toml:"title"`

	// Width and Height are the initial window size.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// VSync makes presentation wait for the display's vertical sync.
	// Off by default, so the frame rate report is meaningful.
	VSync bool `toml:"vsync"`

	// HighPerformance requests a discrete GPU over an integrated one.
	HighPerformance bool `toml:"high-performance"`

	// FallbackAdapter requests the software fallback adapter.
	FallbackAdapter bool `toml:"fallback-adapter"`

	// ShaderOne and ShaderTwo are optional paths to WGSL source files
	// for the two pipelines. Empty uses the embedded defaults.
	ShaderOne string `toml:"shader-one"`
	ShaderTwo string `toml:"shader-two"`

	// Reload watches configured shader files and rebuilds the affected
	// pipeline when they change.
	Reload bool `toml:"reload"`

	// Debug enables debug-level logging.
	Debug bool `toml:"debug"`
}

// Defaults sets the default configuration values.
func (cf *Config) Defaults() {
	cf.Title = "duotone"
	cf.Width = 800
	cf.Height = 600
}

// OpenConfig returns a Config with defaults applied and, if fname is
// non-empty, values loaded from the given TOML file on top.
func OpenConfig(fname string) (*Config, error) {
	cf := &Config{}
	cf.Defaults()
	if fname == "" {
		return cf, nil
	}
	b, err := os.ReadFile(fname)
	if err != nil {
		return cf, errors.Log(err)
	}
	if err := toml.Unmarshal(b, cf); err != nil {
		return cf, errors.Log(err)
	}
	return cf, nil
}
