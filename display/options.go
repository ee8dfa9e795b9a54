/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package display animates a turtle's recorded path in a desktop window,
// one segment per tick, with keyboard playback controls. The window shell
// is Fyne-based and gated behind the "fyne" build tag; the playback state
// machine itself is plain Go and testable headless.
package display

import (
	"math"
	"time"

	"goturtle/turtle"
)

// Options controls the animation window. The zero value gives the
// defaults: a 500x500 interactive window titled "turtle" on a black
// background, advancing 60 segments per second.
type Options struct {
	Title         string
	Width, Height int
	// Speed is the target animation rate in segments per second. The frame
	// delay is round(1000/Speed) milliseconds; zero means 60.
	Speed      float64
	Background turtle.Color
	// NonInteractive ignores every playback key except Escape.
	NonInteractive bool
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "turtle"
	}
	if o.Width == 0 {
		o.Width = 500
	}
	if o.Height == 0 {
		o.Height = 500
	}
	if o.Speed <= 0 {
		o.Speed = 60
	}
	return o
}

// frameDelay converts the speed to the per-tick sleep, in whole
// milliseconds so the bracket keys can adjust it in 1ms steps.
func (o Options) frameDelay() time.Duration {
	return time.Duration(math.Round(1000/o.Speed)) * time.Millisecond
}
