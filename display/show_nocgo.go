//go:build fyne && !cgo

package display

import (
	"fmt"

	"goturtle/turtle"
)

// Show informs the user that the Fyne window requires cgo (OpenGL) and a C
// toolchain. This stub is compiled when the build uses -tags fyne but CGO
// is disabled.
func Show(_ *turtle.Turtle, _ Options) error {
	return fmt.Errorf("the animation window requires cgo (OpenGL). Enable cgo and install a C toolchain, then rebuild with CGO_ENABLED=1 and -tags fyne")
}
