/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package display

import (
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"

	"goturtle/turtle"
)

// animAction is what a key press requires from the window shell beyond the
// animator's own state change.
type animAction int

const (
	actionNone  animAction = iota
	actionReset            // clear the canvas and restart playback
	actionQuit
)

// animator is the playback state machine: pause, single-step, reset, speed
// and exhaustion handling. advance and handleKey must both run on the UI
// thread; only the frame delay is shared with the ticker goroutine, as an
// atomic millisecond count.
type animator struct {
	t           *turtle.Turtle
	lines       *turtle.Lines
	paused      bool
	step        bool
	interactive bool
	delayMs     atomic.Int64
}

func newAnimator(t *turtle.Turtle, opt Options) *animator {
	a := &animator{
		t:           t,
		lines:       t.Lines(),
		interactive: !opt.NonInteractive,
	}
	a.delayMs.Store(opt.frameDelay().Milliseconds())
	return a
}

// advance returns the segment to draw this tick, or ok=false when paused
// or exhausted. Exhaustion pauses playback with the last frame kept; R
// starts over.
func (a *animator) advance() (turtle.Line, bool) {
	if a.paused && !a.step {
		return turtle.Line{}, false
	}
	a.step = false
	ln, ok := a.lines.Next()
	if !ok {
		a.paused = true
		return turtle.Line{}, false
	}
	return ln, true
}

// handleKey applies one key press. Escape always quits; everything else is
// honored only in interactive mode.
func (a *animator) handleKey(key fyne.KeyName) animAction {
	if key == fyne.KeyEscape {
		return actionQuit
	}
	if !a.interactive {
		return actionNone
	}
	switch key {
	case fyne.KeySpace:
		a.paused = !a.paused
	case fyne.KeyS:
		if a.paused {
			a.step = true
		}
	case fyne.KeyR:
		a.paused = false
		a.lines = a.t.Lines()
		return actionReset
	case fyne.KeyLeftBracket:
		a.delayMs.Add(1)
	case fyne.KeyRightBracket:
		if a.delayMs.Load() > 0 {
			a.delayMs.Add(-1)
		}
	}
	return actionNone
}

func (a *animator) delay() time.Duration {
	return time.Duration(a.delayMs.Load()) * time.Millisecond
}
