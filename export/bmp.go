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
	"os"

	"golang.org/x/image/bmp"

	"goturtle/turtle"
)

// BMPOptions controls raster BMP output; the raster itself is identical to
// the PNG one, only the container differs.
type BMPOptions struct {
	Width, Height int
	Background    turtle.Color
}

// SaveBMP renders the turtle's path and writes it to path as BMP.
func SaveBMP(t *turtle.Turtle, path string, opt BMPOptions) error {
	img, err := rasterize(t, opt.Width, opt.Height, opt.Background)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create bmp: %w", err)
	}
	if err := bmp.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode bmp: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close bmp: %w", err)
	}
	return nil
}
