//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package display

import (
	"fmt"
	"image/color"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	applog "goturtle/internal/log"
	"goturtle/turtle"
)

// Show opens a centered window and plays the turtle's path one segment per
// tick until the log is exhausted, then keeps the window open (and the last
// frame visible) until Escape or close. Keyboard controls when interactive:
//
//   - space : pause and unpause
//   - s     : while paused, advance one segment
//   - r     : clear the window and restart playback
//   - [     : slow down (frame delay +1ms)
//   - ]     : speed up (frame delay -1ms, floored at 0)
//
// Show blocks until the window closes and must run on the main goroutine.
func Show(t *turtle.Turtle, opt Options) error {
	opt = opt.withDefaults()
	if opt.Width < 0 || opt.Height < 0 {
		return fmt.Errorf("invalid window size %dx%d", opt.Width, opt.Height)
	}
	l := applog.WithComponent("display")
	l.Info("opening animation window",
		slog.String("title", opt.Title),
		slog.Int("width", opt.Width),
		slog.Int("height", opt.Height))

	fyneApp := app.NewWithID("goturtle")
	w := fyneApp.NewWindow(opt.Title)
	w.Resize(fyne.NewSize(float32(opt.Width), float32(opt.Height)))
	w.SetFixedSize(true)
	w.CenterOnScreen()

	bg := canvas.NewRectangle(color.RGBA{R: opt.Background.R, G: opt.Background.G, B: opt.Background.B, A: 255})
	bg.Resize(fyne.NewSize(float32(opt.Width), float32(opt.Height)))
	content := container.NewWithoutLayout(bg)
	w.SetContent(content)

	a := newAnimator(t, opt)

	stop := make(chan struct{})
	var stopOnce sync.Once
	halt := func() { stopOnce.Do(func() { close(stop) }) }
	w.SetOnClosed(halt)

	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch a.handleKey(ev.Name) {
		case actionQuit:
			w.Close()
		case actionReset:
			// Drop every drawn line, keep the background.
			content.Objects = content.Objects[:1]
			content.Refresh()
		}
	})

	go func() {
		for {
			select {
			case <-stop:
				return
			default:
			}
			fyne.Do(func() {
				ln, ok := a.advance()
				if !ok {
					return
				}
				seg := canvas.NewLine(color.RGBA{R: ln.Color.R, G: ln.Color.G, B: ln.Color.B, A: 255})
				seg.Position1 = fyne.NewPos(float32(ln.Start.X), float32(ln.Start.Y))
				seg.Position2 = fyne.NewPos(float32(ln.End.X), float32(ln.End.Y))
				content.Add(seg)
				content.Refresh()
			})
			time.Sleep(a.delay())
		}
	}()

	w.ShowAndRun()
	halt()
	l.Info("animation window closed")
	return nil
}
