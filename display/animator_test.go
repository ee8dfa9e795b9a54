/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package display

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"

	"goturtle/turtle"
)

func threeSegments() *turtle.Turtle {
	t := turtle.New()
	t.Forward(10)
	t.Turn(90)
	t.Forward(10)
	t.Turn(90)
	t.Forward(10)
	return t
}

func TestAdvanceUntilExhausted(t *testing.T) {
	a := newAnimator(threeSegments(), Options{}.withDefaults())
	for i := 0; i < 3; i++ {
		if _, ok := a.advance(); !ok {
			t.Fatalf("advance %d returned nothing", i)
		}
	}
	if _, ok := a.advance(); ok {
		t.Fatalf("advance past the log returned a segment")
	}
	if !a.paused {
		t.Fatalf("exhaustion must pause playback")
	}
}

func TestPauseAndStep(t *testing.T) {
	a := newAnimator(threeSegments(), Options{}.withDefaults())

	a.handleKey(fyne.KeySpace)
	if !a.paused {
		t.Fatalf("space did not pause")
	}
	if _, ok := a.advance(); ok {
		t.Fatalf("paused animator advanced")
	}

	// S while paused advances exactly one segment.
	a.handleKey(fyne.KeyS)
	if _, ok := a.advance(); !ok {
		t.Fatalf("single step did not advance")
	}
	if _, ok := a.advance(); ok {
		t.Fatalf("single step advanced more than once")
	}

	a.handleKey(fyne.KeySpace)
	if a.paused {
		t.Fatalf("space did not unpause")
	}
}

func TestStepIgnoredWhileRunning(t *testing.T) {
	a := newAnimator(threeSegments(), Options{}.withDefaults())
	a.handleKey(fyne.KeyS)
	if a.step {
		t.Fatalf("S must be a no-op while unpaused")
	}
}

func TestResetRestartsPlayback(t *testing.T) {
	a := newAnimator(threeSegments(), Options{}.withDefaults())
	first, _ := a.advance()
	a.advance()
	a.advance()
	a.advance() // exhausted, paused

	if got := a.handleKey(fyne.KeyR); got != actionReset {
		t.Fatalf("R returned %v, want actionReset", got)
	}
	if a.paused {
		t.Fatalf("reset must resume playback")
	}
	again, ok := a.advance()
	if !ok {
		t.Fatalf("no segment after reset")
	}
	if again != first {
		t.Fatalf("replay after reset starts at %+v, want %+v", again, first)
	}
}

func TestBracketKeysAdjustDelay(t *testing.T) {
	a := newAnimator(threeSegments(), Options{Speed: 100}.withDefaults())
	if got := a.delay(); got != 10*time.Millisecond {
		t.Fatalf("initial delay %v, want 10ms", got)
	}
	a.handleKey(fyne.KeyLeftBracket)
	if got := a.delay(); got != 11*time.Millisecond {
		t.Fatalf("[ gave %v, want 11ms", got)
	}
	a.handleKey(fyne.KeyRightBracket)
	a.handleKey(fyne.KeyRightBracket)
	if got := a.delay(); got != 9*time.Millisecond {
		t.Fatalf("]] gave %v, want 9ms", got)
	}
}

func TestDelayFlooredAtZero(t *testing.T) {
	a := newAnimator(threeSegments(), Options{Speed: 1000}.withDefaults())
	for i := 0; i < 5; i++ {
		a.handleKey(fyne.KeyRightBracket)
	}
	if got := a.delay(); got != 0 {
		t.Fatalf("delay %v, want floor at 0", got)
	}
}

func TestNonInteractiveIgnoresPlaybackKeys(t *testing.T) {
	a := newAnimator(threeSegments(), Options{NonInteractive: true}.withDefaults())
	a.handleKey(fyne.KeySpace)
	if a.paused {
		t.Fatalf("space honored in non-interactive mode")
	}
	if got := a.handleKey(fyne.KeyR); got != actionNone {
		t.Fatalf("R honored in non-interactive mode")
	}
	if got := a.handleKey(fyne.KeyEscape); got != actionQuit {
		t.Fatalf("escape must quit even when non-interactive, got %v", got)
	}
}

func TestFrameDelayFromSpeed(t *testing.T) {
	cases := []struct {
		speed float64
		want  time.Duration
	}{
		{0, 17 * time.Millisecond},  // default 60fps, round(1000/60)
		{60, 17 * time.Millisecond},
		{50, 20 * time.Millisecond},
		{1000, 1 * time.Millisecond},
	}
	for _, c := range cases {
		got := (Options{Speed: c.speed}).withDefaults().frameDelay()
		if got != c.want {
			t.Fatalf("speed %v: delay %v, want %v", c.speed, got, c.want)
		}
	}
}
