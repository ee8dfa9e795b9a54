/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"goturtle/turtle"
)

// PDFOptions controls vector PDF output. Units are points (pt); segment
// pixel coordinates map 1:1 to points.
// - Width/Height: page size; zero means DefaultSize pt.
// - Background: page fill (zero value is black, like the raster formats).
// - LineWidth: stroke width in pt; zero means 1.
type PDFOptions struct {
	Width, Height float64
	Background    turtle.Color
	LineWidth     float64
}

// SavePDF writes the turtle's path as a single-page vector PDF. Unlike the
// raster formats the segments keep their exact integer endpoints with no
// clipping; viewers clip to the page themselves.
func SavePDF(t *turtle.Turtle, path string, opt PDFOptions) error {
	w := opt.Width
	if w == 0 {
		w = DefaultSize
	}
	h := opt.Height
	if h == 0 {
		h = DefaultSize
	}
	if w < 0 || h < 0 {
		return fmt.Errorf("invalid page size %vx%v", w, h)
	}
	lw := opt.LineWidth
	if lw <= 0 {
		lw = 1
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
		OrientationStr: "",
	})
	pdf.SetTitle("turtle path", false)
	pdf.AddPageFormat("", gofpdf.SizeType{Wd: w, Ht: h})

	pdf.SetFillColor(int(opt.Background.R), int(opt.Background.G), int(opt.Background.B))
	pdf.Rect(0, 0, w, h, "F")

	pdf.SetLineWidth(lw)
	setDrawColor(pdf, turtle.White)
	for ls := t.Lines(); ; {
		ln, ok := ls.Next()
		if !ok {
			break
		}
		if ln.ColorChanged {
			setDrawColor(pdf, ln.Color)
		}
		pdf.Line(float64(ln.Start.X), float64(ln.Start.Y), float64(ln.End.X), float64(ln.End.Y))
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func setDrawColor(pdf *gofpdf.Fpdf, c turtle.Color) {
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}
