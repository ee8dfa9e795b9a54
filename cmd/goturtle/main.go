/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"goturtle/display"
	"goturtle/export"
	"goturtle/internal/config"
	"goturtle/internal/crash"
	applog "goturtle/internal/log"
	"goturtle/internal/version"
	"goturtle/lsystem"
	"goturtle/scene"
	"goturtle/turtle"
)

func usage() {
	fmt.Println("GoTurtle — turtle graphics demos")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  goturtle version|-v|--version          Show version")
	fmt.Println("  goturtle koch [n] [-o <file>]          Koch snowflake, n iterations (default 4)")
	fmt.Println("  goturtle fractal [-o <file>]           Sierpinski arrowhead curve")
	fmt.Println("  goturtle play <scene.json> [-o <file>] Replay a scene file")
	fmt.Println("  goturtle config [init]                 Show effective settings; init writes the file")
	fmt.Println()
	fmt.Println("Without -o (or with -show) the drawing is animated in a window")
	fmt.Println("(build with -tags fyne).")
	fmt.Println("With -o the format follows the extension: .png .bmp .pdf .svg")
}

// parseOut splits trailing arguments into an optional -o path and the
// remaining positional arguments.
func parseOut(args []string) (out string, rest []string, err error) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o":
			if i+1 >= len(args) {
				return "", nil, fmt.Errorf("-o requires a file argument")
			}
			out = args[i+1]
			i++
		case "-show":
			out = ""
		default:
			rest = append(rest, args[i])
		}
	}
	return out, rest, nil
}

// render either animates the drawing in a window or writes it to a file
// depending on out.
func render(t *turtle.Turtle, out, title string, cfg config.AppConfig) error {
	l := applog.WithComponent("cli")
	if out == "" {
		return display.Show(t, display.Options{
			Title:  title,
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			Speed:  cfg.Window.Speed,
		})
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(cfg.Render.OutputDir, out)
	}
	l.Info("export drawing", slog.String("path", out))
	w, h := cfg.Render.Width, cfg.Render.Height
	switch strings.ToLower(filepath.Ext(out)) {
	case ".png":
		return export.SavePNG(t, out, export.PNGOptions{Width: w, Height: h})
	case ".bmp":
		return export.SaveBMP(t, out, export.BMPOptions{Width: w, Height: h})
	case ".pdf":
		return export.SavePDF(t, out, export.PDFOptions{Width: float64(w), Height: float64(h)})
	case ".svg":
		return export.SaveSVG(t, out, export.SVGOptions{Width: w, Height: h})
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(out))
	}
}

// kochSide draws one side of the snowflake recursively.
func kochSide(t *turtle.Turtle, n, d int) {
	if n == 0 {
		t.Forward(d)
		return
	}
	kochSide(t, n-1, d)
	t.Turn(-60)
	kochSide(t, n-1, d)
	t.Turn(120)
	kochSide(t, n-1, d)
	t.Turn(-60)
	kochSide(t, n-1, d)
}

func kochSnowflake(n int) *turtle.Turtle {
	t := turtle.New()
	t.MoveTo(50, 370)
	d := int(512.0 / 1.2 / math.Pow(3, float64(n)))
	if d < 1 {
		d = 1
	}
	// The first side rises at 60 degrees so the snowflake sits upright.
	t.Turn(-60)
	for i := 0; i < 3; i++ {
		kochSide(t, n, d)
		t.Turn(120)
	}
	return t
}

func sierpinski() *turtle.Turtle {
	sys := lsystem.System{
		Axiom: "A",
		Rules: map[rune]string{'A': "+B-A-B+", 'B': "-A+B+A-"},
	}
	state := sys.Expand(8)
	t := turtle.New()
	t.MoveTo(40, 500)
	lsystem.Draw(t, state, 2, 60)
	return t
}

func main() {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")
	defer func() { crash.Recover("") }()

	cfg, err := config.Load()
	if err != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", err))
		cfg = config.Defaults()
	}
	// Re-init with the loaded logging section; env overrides already won
	// inside Load, so GTL_LOG_* still takes precedence over the file.
	applog.Init(cfg.Logging.LoggerOptions())
	l = applog.WithComponent("cli")

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("GoTurtle — turtle graphics demos")
			fmt.Println(version.String())
			return
		case "koch":
			out, rest, err := parseOut(args[2:])
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(2)
			}
			n := 4
			if len(rest) > 0 {
				v, err := strconv.Atoi(rest[0])
				if err != nil || v < 0 {
					fmt.Println("koch: iterations must be a non-negative integer")
					os.Exit(2)
				}
				n = v
			}
			l.Info("koch snowflake", slog.Int("iterations", n))
			t := kochSnowflake(n)
			if err := render(t, out, "Koch snowflake", cfg); err != nil {
				l.Error("render failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		case "fractal":
			out, _, err := parseOut(args[2:])
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(2)
			}
			l.Info("sierpinski arrowhead")
			t := sierpinski()
			cfg.Window.Width = 600
			cfg.Window.Height = 600
			cfg.Render.Width = 600
			cfg.Render.Height = 600
			if err := render(t, out, "Sierpinski arrowhead", cfg); err != nil {
				l.Error("render failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		case "config":
			if len(args) > 2 && args[2] == "init" {
				if err := config.Save(cfg); err != nil {
					l.Error("config save failed", slog.Any("err", err))
					fmt.Println("Error:", err)
					os.Exit(1)
				}
				path, _ := config.ConfigPath()
				fmt.Println("Wrote", path)
				return
			}
			path, _ := config.ConfigPath()
			fmt.Println("Config file:", path)
			show := func(key, val string) {
				if env, ok := config.EnvOverrideFor(key); ok {
					fmt.Printf("  %-18s %s (from %s)\n", key, val, env)
					return
				}
				fmt.Printf("  %-18s %s\n", key, val)
			}
			show("window.width", strconv.Itoa(cfg.Window.Width))
			show("window.height", strconv.Itoa(cfg.Window.Height))
			show("window.speed", strconv.FormatFloat(cfg.Window.Speed, 'g', -1, 64))
			show("render.output_dir", cfg.Render.OutputDir)
			show("logging.level", cfg.Logging.Level)
			show("logging.format", cfg.Logging.Format)
			show("logging.source", strconv.FormatBool(cfg.Logging.Source))
			show("logging.file", cfg.Logging.File)
			return
		case "play":
			out, rest, err := parseOut(args[2:])
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(2)
			}
			if len(rest) < 1 {
				fmt.Println("play requires <scene.json>")
				usage()
				os.Exit(2)
			}
			path := rest[0]
			abs, _ := filepath.Abs(path)
			l.Info("play scene", slog.String("path", abs))
			sc, err := scene.Load(abs)
			if err != nil {
				l.Error("scene load failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			t := sc.Play()
			if err := render(t, out, sc.Name, cfg); err != nil {
				l.Error("render failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		}
	}

	usage()
}
