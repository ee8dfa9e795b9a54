/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package turtle implements a recording turtle-graphics cursor: commands move
// a pen over a 2D plane and append to an ordered operation log, which can be
// replayed as colored line segments any number of times. Rendering lives in
// the export and display packages; this package holds only the data model.
package turtle

import "math"

// Color is an 8-bit RGB stroke color. Strokes have no alpha channel.
type Color struct {
	R, G, B uint8
}

// White is the stroke color in effect before any SetColor.
var White = Color{R: 255, G: 255, B: 255}

type opKind uint8

const (
	opMoveTo opKind = iota
	opLineTo
	opSetColor
)

// op is a single recorded drawing operation. x/y are meaningful for opMoveTo
// and opLineTo; col only for opSetColor. Coordinates stay floating point in
// the log; truncation to pixels happens when segments are extracted.
type op struct {
	kind opKind
	x, y float32
	col  Color
}

// Turtle is a drawing cursor with a position, a heading and the append-only
// log of everything it has drawn. A Turtle is not safe for concurrent
// mutation; renderers only ever read the log.
type Turtle struct {
	x, y float32
	h    float32 // degrees, counter-clockwise, 0 along +x; never normalized
	ops  []op
}

// New returns a turtle at the origin, heading 0°, with an empty log.
func New() *Turtle {
	return &Turtle{}
}

// Forward walks dist units along the current heading and records a line to
// the new position. Negative dist walks backwards.
func (t *Turtle) Forward(dist int) {
	rad := float64(t.h) * math.Pi / 180
	t.x += float32(dist) * float32(math.Cos(rad))
	t.y += float32(dist) * float32(math.Sin(rad))
	t.ops = append(t.ops, op{kind: opLineTo, x: t.x, y: t.y})
}

// Turn rotates the heading by deg degrees counter-clockwise. Nothing is
// recorded; the rotation becomes visible with the next Forward. The heading
// is deliberately not reduced mod 360 so Heading reads back the full
// rotation history.
func (t *Turtle) Turn(deg float32) {
	t.h += deg
}

// MoveTo jumps the pen to (nx, ny) without drawing.
func (t *Turtle) MoveTo(nx, ny int) {
	t.x = float32(nx)
	t.y = float32(ny)
	t.ops = append(t.ops, op{kind: opMoveTo, x: t.x, y: t.y})
}

// SetColor records the stroke color for subsequent lines. The cursor does
// not move; the change takes effect at its position in the log, so colors
// interleave correctly with a multi-segment stroke.
func (t *Turtle) SetColor(r, g, b uint8) {
	t.ops = append(t.ops, op{kind: opSetColor, col: Color{R: r, G: g, B: b}})
}

// Position returns the current pen coordinates.
func (t *Turtle) Position() (float32, float32) {
	return t.x, t.y
}

// Heading returns the accumulated heading in degrees, unwrapped.
func (t *Turtle) Heading() float32 {
	return t.h
}
