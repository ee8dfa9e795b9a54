/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export renders a turtle's recorded path to files: aliased raster
// images (PNG, BMP) drawn with Bresenham's integer line algorithm, and
// vector documents (PDF, SVG) built from the same segment stream. All
// entry points take an options record with zero-value defaults and a
// terminal output path.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"goturtle/turtle"
)

// DefaultSize is the output width and height used when an options record
// leaves the dimensions unset.
const DefaultSize = 500

// rasterize composes the full path onto a fresh RGBA image of w×h filled
// with bg. Zero dimensions fall back to DefaultSize, negative ones are
// rejected. Image Y grows downward and no flip is applied, matching the
// turtle's coordinate convention.
func rasterize(t *turtle.Turtle, w, h int, bg turtle.Color) (*image.RGBA, error) {
	if w == 0 {
		w = DefaultSize
	}
	if h == 0 {
		h = DefaultSize
	}
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: toRGBA(bg)}, image.Point{}, draw.Src)
	for ls := t.Lines(); ; {
		ln, ok := ls.Next()
		if !ok {
			break
		}
		drawLine(img, ln)
	}
	return img, nil
}

// drawLine rasterizes one segment with Bresenham's error accumulator,
// generalized to all octants. The scan terminates at the first pixel that
// leaves the image and is not resumed, so a segment starting out of bounds
// draws nothing even if it would re-enter. That asymmetry is part of the
// output contract; keep it.
func drawLine(img *image.RGBA, ln turtle.Line) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	x0, y0 := ln.Start.X, ln.Start.Y
	x1, y1 := ln.End.X, ln.End.Y

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	px := toRGBA(ln.Color)
	x, y := x0, y0
	for {
		if x < 0 || y < 0 || x >= w || y >= h {
			return
		}
		img.SetRGBA(x, y, px)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func toRGBA(c turtle.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
