// Copyright (c) 2026, Duotone Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command duotone opens a window, clears it to a color that follows
// the cursor, and toggles between two shader pipelines on Space.
// Escape or closing the window exits.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/duotone-dev/duotone"
	"github.com/duotone-dev/duotone/base/logx"
	"github.com/duotone-dev/duotone/gpu"
	"github.com/spf13/cobra"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:          "duotone",
		Short:        "clear a window to a cursor-driven color, toggling two shader pipelines on Space",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := duotone.OpenConfig(cfgFile)
			if err != nil {
				return err
			}
			applyFlags(cmd, cfg)
			if cfg.Debug {
				logx.UserLevel = slog.LevelDebug
				gpu.Debug = true
			}
			app, err := duotone.NewApp(cfg)
			if err != nil {
				return err
			}
			defer app.Release()
			return app.Run()
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "TOML config file")
	flags.String("title", "duotone", "window title")
	flags.Int("width", 800, "window width")
	flags.Int("height", 600, "window height")
	flags.Bool("vsync", false, "wait for vertical sync when presenting")
	flags.Bool("high-performance", false, "prefer a discrete GPU")
	flags.Bool("fallback-adapter", false, "use the software fallback adapter")
	flags.String("shader-one", "", "WGSL file for the first pipeline (default: embedded)")
	flags.String("shader-two", "", "WGSL file for the second pipeline (default: embedded)")
	flags.Bool("reload", false, "watch shader files and reload on change")
	flags.Bool("debug", false, "debug logging")
	return cmd
}

// applyFlags overrides config values with any flags explicitly set
// on the command line.
func applyFlags(cmd *cobra.Command, cfg *duotone.Config) {
	flags := cmd.Flags()
	if flags.Changed("title") {
		cfg.Title, _ = flags.GetString("title")
	}
	if flags.Changed("width") {
		cfg.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		cfg.Height, _ = flags.GetInt("height")
	}
	if flags.Changed("vsync") {
		cfg.VSync, _ = flags.GetBool("vsync")
	}
	if flags.Changed("high-performance") {
		cfg.HighPerformance, _ = flags.GetBool("high-performance")
	}
	if flags.Changed("fallback-adapter") {
		cfg.FallbackAdapter, _ = flags.GetBool("fallback-adapter")
	}
	if flags.Changed("shader-one") {
		cfg.ShaderOne, _ = flags.GetString("shader-one")
	}
	if flags.Changed("shader-two") {
		cfg.ShaderTwo, _ = flags.GetString("shader-two")
	}
	if flags.Changed("reload") {
		cfg.Reload, _ = flags.GetBool("reload")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
}
