package render

import (
	"strings"
	"testing"

	"github.com/san-kum/algoviz/internal/frame"
)

func TestFrameIsStateless(t *testing.T) {
	f := frame.Frame{
		Kind:        frame.KindArray,
		Description: "compare positions 0 and 1",
		Values:      []int{3, 1, 2},
		Compared:    frame.NewIndexSet(0, 1),
	}

	a := Frame(f, 40)
	// Rendering unrelated frames in between must not change the output.
	Frame(frame.Frame{Kind: frame.KindGraph, Adjacency: [][]int{{1}, {0}}}, 40)
	b := Frame(f, 40)

	if a != b {
		t.Error("render output depends on prior calls")
	}
}

func TestArrayFrameShowsEveryValue(t *testing.T) {
	f := frame.Frame{
		Kind:        frame.KindArray,
		Description: "initial array",
		Values:      []int{64, 34, 25},
		SourceLine:  frame.NoLine,
	}
	out := Frame(f, 40)

	for _, want := range []string{"64", "34", "25", "initial array"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "line ") {
		t.Error("unexpected source line hint")
	}
}

func TestSearchFrameMarksCursor(t *testing.T) {
	f := frame.Frame{
		Kind:   frame.KindSearch,
		Values: []int{5, 2, 7},
		Cursor: 1,
		Target: 7,
	}
	out := Frame(f, 0)

	if !strings.Contains(out, "^") {
		t.Error("missing cursor marker")
	}
	if !strings.Contains(out, "target 7") {
		t.Error("missing target line")
	}
}

func TestBinarySearchFrameMarksBounds(t *testing.T) {
	f := frame.Frame{
		Kind:   frame.KindBinarySearch,
		Values: []int{11, 12, 22, 25, 34, 64, 90},
		Low:    0,
		High:   6,
		Mid:    3,
		Target: 22,
	}
	out := Frame(f, 0)

	for _, want := range []string{"L", "M", "H"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s bound marker", want)
		}
	}
}

func TestGraphFrameListsAdjacencyAndOrder(t *testing.T) {
	f := frame.Frame{
		Kind:       frame.KindGraph,
		Adjacency:  [][]int{{1, 2}, {0}, {0}},
		Visited:    frame.NewIndexSet(0),
		Frontier:   []int{1, 2},
		Current:    0,
		VisitOrder: []int{0},
	}
	out := Frame(f, 0)

	for _, want := range []string{"0:", "1:", "2:", "frontier [1 2]", "visited [0]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestTerminalRendererRepaints(t *testing.T) {
	var buf strings.Builder
	term := NewTerminal(&buf, 20)

	term.Render(frame.Frame{Kind: frame.KindArray, Algorithm: "bubble_sort", Values: []int{1, 2}})
	if !strings.Contains(buf.String(), "bubble_sort") {
		t.Error("missing algorithm header")
	}
	if !strings.Contains(buf.String(), clearScreen) {
		t.Error("expected screen clear before repaint")
	}

	buf.Reset()
	term.Clear()
	if !strings.Contains(buf.String(), showCursor) {
		t.Error("expected cursor restore on clear")
	}
}
