/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"os"
	"testing"
)

func TestDefaultsMatchRendererDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Window.Width != 500 || cfg.Window.Height != 500 {
		t.Fatalf("Window defaults = %dx%d, want 500x500", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Speed != 60 {
		t.Fatalf("Window.Speed = %v, want 60", cfg.Window.Speed)
	}
	if cfg.Render.Width != 500 || cfg.Render.Height != 500 {
		t.Fatalf("Render defaults = %dx%d, want 500x500", cfg.Render.Width, cfg.Render.Height)
	}
}

func TestEnvOverridesWindowSize(t *testing.T) {
	oldW := os.Getenv(EnvWindowWidth)
	oldH := os.Getenv(EnvWindowHeight)
	_ = os.Setenv(EnvWindowWidth, "800")
	_ = os.Setenv(EnvWindowHeight, "600")
	t.Cleanup(func() {
		_ = os.Setenv(EnvWindowWidth, oldW)
		_ = os.Setenv(EnvWindowHeight, oldH)
	})
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Fatalf("Window = %dx%d, want 800x600", cfg.Window.Width, cfg.Window.Height)
	}
}

func TestEnvOverrideIgnoresInvalidSpeed(t *testing.T) {
	old := os.Getenv(EnvWindowSpeed)
	_ = os.Setenv(EnvWindowSpeed, "not-a-number")
	t.Cleanup(func() { _ = os.Setenv(EnvWindowSpeed, old) })
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Window.Speed != 60 {
		t.Fatalf("Window.Speed = %v, want default 60 for invalid env value", cfg.Window.Speed)
	}
}

func TestMergeIncludesLogging(t *testing.T) {
	dst := Defaults()
	src := Defaults()
	src.Logging.Level = "debug"
	src.Logging.Format = "json"
	src.Logging.Source = true
	src.Logging.File = "/tmp/goturtle.log"
	mergeInto(&dst, &src)
	if dst.Logging.Level != "debug" || dst.Logging.Format != "json" || !dst.Logging.Source {
		t.Fatalf("logging not merged: %+v", dst.Logging)
	}
	if dst.Logging.File != "/tmp/goturtle.log" {
		t.Fatalf("Logging.File = %q", dst.Logging.File)
	}
}

func TestMergeIgnoresZeroValues(t *testing.T) {
	dst := Defaults()
	var src AppConfig // all zero, as from an empty YAML file
	mergeInto(&dst, &src)
	if dst.Window.Width != 500 || dst.Window.Speed != 60 {
		t.Fatalf("zero-value merge clobbered defaults: %+v", dst.Window)
	}
	if dst.Render.OutputDir != "." {
		t.Fatalf("Render.OutputDir = %q, want \".\"", dst.Render.OutputDir)
	}
}

func TestMergeNormalizesLoggingCase(t *testing.T) {
	dst := Defaults()
	src := Defaults()
	src.Logging.Level = "  DEBUG "
	src.Logging.Format = "JSON"
	mergeInto(&dst, &src)
	if dst.Logging.Level != "debug" || dst.Logging.Format != "json" {
		t.Fatalf("logging normalization failed: %+v", dst.Logging)
	}
}

func TestLoggerOptionsFromLoadedConfig(t *testing.T) {
	old := os.Getenv(EnvLogLevel)
	_ = os.Setenv(EnvLogLevel, "error")
	t.Cleanup(func() { _ = os.Setenv(EnvLogLevel, old) })
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	opts := cfg.Logging.LoggerOptions()
	if opts.Level != "error" {
		t.Fatalf("LoggerOptions().Level = %q, want env override to flow through", opts.Level)
	}
	if opts.Format != cfg.Logging.Format || opts.AddSource != cfg.Logging.Source || opts.File != cfg.Logging.File {
		t.Fatalf("LoggerOptions() dropped a field: %+v vs %+v", opts, cfg.Logging)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Defaults()
	cfg.Window.Width = 640
	cfg.Window.Speed = 25
	cfg.Logging.Level = "debug"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file missing after Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Window.Width != 640 || got.Window.Speed != 25 {
		t.Fatalf("round trip lost window settings: %+v", got.Window)
	}
	if got.Logging.Level != "debug" {
		t.Fatalf("round trip lost logging level: %q", got.Logging.Level)
	}
}

func TestEnvOverrideFor(t *testing.T) {
	old := os.Getenv(EnvOutputDir)
	_ = os.Setenv(EnvOutputDir, "/tmp/out")
	t.Cleanup(func() { _ = os.Setenv(EnvOutputDir, old) })
	name, ok := EnvOverrideFor("render.output_dir")
	if !ok || name != EnvOutputDir {
		t.Fatalf("EnvOverrideFor(render.output_dir) = %q, %v", name, ok)
	}
	if _, ok := EnvOverrideFor("window.width"); ok && os.Getenv(EnvWindowWidth) == "" {
		t.Fatalf("EnvOverrideFor reported an override without the env var set")
	}
}
