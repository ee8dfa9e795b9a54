/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"fmt"
	"os"

	"goturtle/turtle"
)

// SVGOptions controls vector SVG output. Coordinates are emitted in user
// units that match segment pixels 1:1.
type SVGOptions struct {
	Width, Height int
	Background    turtle.Color
	LineWidth     float64
}

// SaveSVG writes the turtle's path as an SVG document of line elements.
func SaveSVG(t *turtle.Turtle, path string, opt SVGOptions) error {
	w := opt.Width
	if w == 0 {
		w = DefaultSize
	}
	h := opt.Height
	if h == 0 {
		h = DefaultSize
	}
	if w < 0 || h < 0 {
		return fmt.Errorf("invalid document size %dx%d", w, h)
	}
	lw := opt.LineWidth
	if lw <= 0 {
		lw = 1
	}

	var buf bytes.Buffer
	var werr error
	wf := func(format string, args ...any) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(&buf, format, args...)
	}

	wf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	wf("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" width=\"%dpx\" height=\"%dpx\" viewBox=\"0 0 %d %d\">\n", w, h, w, h)
	wf("  <rect x=\"0\" y=\"0\" width=\"%d\" height=\"%d\" fill=\"%s\"/>\n", w, h, svgColor(opt.Background))
	for ls := t.Lines(); ; {
		ln, ok := ls.Next()
		if !ok {
			break
		}
		wf("  <line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"%s\" stroke-width=\"%g\"/>\n",
			ln.Start.X, ln.Start.Y, ln.End.X, ln.End.Y, svgColor(ln.Color), lw)
	}
	wf("</svg>\n")
	if werr != nil {
		return fmt.Errorf("build svg: %w", werr)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func svgColor(c turtle.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
