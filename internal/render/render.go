// Package render draws a single frame as styled terminal text. Rendering is
// stateless: every call repaints entirely from the frame it is given.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/frame"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

const defaultBarWidth = 32

// Frame renders f for a terminal of the given width (0 picks a default).
func Frame(f frame.Frame, width int) string {
	if width <= 0 {
		width = defaultBarWidth
	}

	var b strings.Builder
	switch f.Kind {
	case frame.KindArray:
		renderArray(&b, f, width)
	case frame.KindSearch:
		renderSearch(&b, f)
	case frame.KindBinarySearch:
		renderBinarySearch(&b, f)
	case frame.KindGraph:
		renderGraph(&b, f)
	default:
		b.WriteString(dim.Render("nothing to draw") + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + dim.Render(f.Description) + "\n")
	if f.SourceLine != frame.NoLine {
		b.WriteString("  " + dimmer.Render(fmt.Sprintf("line %d", f.SourceLine+1)) + "\n")
	}
	return b.String()
}

func styleFor(f frame.Frame, i int) lipgloss.Style {
	switch {
	case f.Settled.Has(i):
		return green
	case f.Compared.Has(i):
		return yellow
	case f.Highlighted.Has(i):
		return magenta
	default:
		return white
	}
}

func renderArray(b *strings.Builder, f frame.Frame, width int) {
	maxVal := 1
	for _, v := range f.Values {
		if abs(v) > maxVal {
			maxVal = abs(v)
		}
	}

	for i, v := range f.Values {
		n := abs(v) * width / maxVal
		if n < 1 {
			n = 1
		}
		bar := strings.Repeat("█", n)
		style := styleFor(f, i)
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			dim.Render(fmt.Sprintf("%3d", i)),
			style.Render(bar),
			style.Render(fmt.Sprintf("%d", v))))
	}
}

func renderSearch(b *strings.Builder, f frame.Frame) {
	b.WriteString("  ")
	for i, v := range f.Values {
		cell := fmt.Sprintf("[%d]", v)
		switch {
		case i == f.Cursor && f.Found:
			b.WriteString(green.Render(cell))
		case i == f.Cursor:
			b.WriteString(cyan.Render(cell))
		case f.Cursor != frame.None && i < f.Cursor:
			b.WriteString(dimmer.Render(cell))
		default:
			b.WriteString(white.Render(cell))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n  ")
	for i, v := range f.Values {
		w := len(fmt.Sprintf("[%d]", v))
		if i == f.Cursor {
			b.WriteString(cyan.Render(center("^", w)))
		} else {
			b.WriteString(strings.Repeat(" ", w))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")
	b.WriteString("  " + dim.Render(fmt.Sprintf("target %d", f.Target)) + "\n")
}

func renderBinarySearch(b *strings.Builder, f frame.Frame) {
	b.WriteString("  ")
	for i, v := range f.Values {
		cell := fmt.Sprintf("[%d]", v)
		switch {
		case i == f.Mid && f.Found:
			b.WriteString(green.Render(cell))
		case i == f.Mid:
			b.WriteString(magenta.Render(cell))
		case i >= f.Low && i <= f.High:
			b.WriteString(white.Render(cell))
		default:
			b.WriteString(dimmer.Render(cell))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n  ")
	for i, v := range f.Values {
		w := len(fmt.Sprintf("[%d]", v))
		marks := ""
		if i == f.Low {
			marks += "L"
		}
		if i == f.Mid {
			marks += "M"
		}
		if i == f.High {
			marks += "H"
		}
		if marks != "" {
			b.WriteString(yellow.Render(center(marks, w)))
		} else {
			b.WriteString(strings.Repeat(" ", w))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")
	b.WriteString("  " + dim.Render(fmt.Sprintf("target %d", f.Target)) + "\n")
}

func renderGraph(b *strings.Builder, f frame.Frame) {
	for v, neighbors := range f.Adjacency {
		marker := "  "
		style := white
		switch {
		case v == f.Current:
			marker = cyan.Render("▸ ")
			style = cyan
		case f.Visited.Has(v):
			style = green
		case contains(f.Frontier, v):
			style = yellow
		default:
			style = dim
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n",
			marker,
			style.Render(fmt.Sprintf("%d:", v)),
			dim.Render(fmt.Sprintf("%v", neighbors))))
	}
	if len(f.Frontier) > 0 {
		b.WriteString("  " + yellow.Render(fmt.Sprintf("frontier %v", f.Frontier)) + "\n")
	}
	if len(f.VisitOrder) > 0 {
		b.WriteString("  " + green.Render(fmt.Sprintf("visited %v", f.VisitOrder)) + "\n")
	}
}

func center(s string, w int) string {
	if len(s) >= w {
		return s
	}
	left := (w - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-len(s)-left)
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
