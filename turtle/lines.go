/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package turtle

import "image"

// Line is one colored segment of the walked path, with integer pixel
// endpoints. Lines are produced transiently by the iterator and never
// stored.
type Line struct {
	Start image.Point
	End   image.Point
	Color Color
	// ColorChanged reports whether a SetColor took effect since the
	// previously emitted segment. Renderers that carry stroke-color state
	// (the PDF exporter) use it to skip redundant updates; renderers that
	// set the color per segment ignore it, which is equally correct.
	ColorChanged bool
}

// Lines replays the operation log as a sequence of segments. Every call to
// Turtle.Lines yields a fresh iterator starting at pixel (0,0) with a white
// stroke; replaying the same log always yields the identical sequence.
type Lines struct {
	ops     []op
	i       int
	pen     image.Point
	col     Color
	changed bool
}

// Lines returns an iterator over the segments drawn so far. The iterator
// borrows the log; commands issued after this call are not picked up by it.
func (t *Turtle) Lines() *Lines {
	return &Lines{ops: t.ops[:len(t.ops):len(t.ops)], col: White}
}

// Next returns the next segment, or ok=false once the log is exhausted.
// Pending MoveTo and SetColor operations are folded into the iterator state
// silently; only LineTo emits. Float coordinates truncate toward zero.
func (ls *Lines) Next() (ln Line, ok bool) {
	for ls.i < len(ls.ops) {
		o := ls.ops[ls.i]
		ls.i++
		switch o.kind {
		case opMoveTo:
			ls.pen = image.Pt(int(o.x), int(o.y))
		case opSetColor:
			ls.col = o.col
			ls.changed = true
		case opLineTo:
			end := image.Pt(int(o.x), int(o.y))
			ln = Line{Start: ls.pen, End: end, Color: ls.col, ColorChanged: ls.changed}
			ls.pen = end
			ls.changed = false
			return ln, true
		}
	}
	return Line{}, false
}
