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
	"image/png"
	"os"

	"goturtle/turtle"
)

// PNGOptions controls raster PNG output.
// - Width/Height: output pixel dimensions; zero means DefaultSize.
// - Background: fill color before drawing (zero value is black).
// - Antialias: reserved; only aliased drawing is implemented.
type PNGOptions struct {
	Width, Height int
	Background    turtle.Color
	Antialias     bool
}

// SavePNG renders the turtle's path onto an RGB image and writes it to
// path as 8-bit PNG. The turtle is only read; the same turtle can be
// rendered any number of times.
func SavePNG(t *turtle.Turtle, path string, opt PNGOptions) error {
	img, err := rasterize(t, opt.Width, opt.Height, opt.Background)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close png: %w", err)
	}
	return nil
}
