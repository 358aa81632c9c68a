package render

import (
	"fmt"
	"io"

	"github.com/san-kum/algoviz/internal/frame"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Terminal repaints frames in place with ANSI escapes, for inline playback
// outside the full TUI.
type Terminal struct {
	out   io.Writer
	width int
}

func NewTerminal(out io.Writer, width int) *Terminal {
	return &Terminal{out: out, width: width}
}

func (t *Terminal) Render(f frame.Frame) {
	fmt.Fprint(t.out, clearScreen+hideCursor)
	fmt.Fprintf(t.out, "\n  %s\n\n", cyan.Render(f.Algorithm))
	fmt.Fprint(t.out, Frame(f, t.width))
}

func (t *Terminal) Clear() {
	fmt.Fprint(t.out, clearScreen+showCursor)
}
