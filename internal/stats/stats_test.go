package stats

import (
	"testing"

	"github.com/san-kum/algoviz/internal/frame"
	"github.com/san-kum/algoviz/internal/produce"
)

func TestCollectBubbleSort(t *testing.T) {
	seq := produce.NewBubbleSort().Produce(produce.Input{Values: []int{3, 1, 2}}, nil)
	s := Collect(seq)

	if s.Frames != 9 {
		t.Errorf("frames = %d, want 9", s.Frames)
	}
	if s.Comparisons != 3 {
		t.Errorf("comparisons = %d, want 3", s.Comparisons)
	}
	if s.Mutations != 2 {
		t.Errorf("mutations = %d, want 2", s.Mutations)
	}
	if s.Settled != 3 {
		t.Errorf("settled = %d, want 3", s.Settled)
	}
}

func TestCollectTraversal(t *testing.T) {
	graph := [][]int{{1, 2}, {0, 3, 4}, {0, 5}, {1}, {1, 5}, {2, 4}}
	seq := produce.NewBFS().Produce(produce.Input{Graph: graph, Start: 0}, nil)
	s := Collect(seq)

	if s.Visited != 6 {
		t.Errorf("visited = %d, want 6", s.Visited)
	}
	if s.Mutations != 0 {
		t.Errorf("mutations = %d, want 0 for a traversal", s.Mutations)
	}
}

func TestCollectEmpty(t *testing.T) {
	s := Collect(nil)
	if s != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestCumulativeIsMonotonic(t *testing.T) {
	seq := produce.NewQuickSort().Produce(produce.Input{Values: []int{5, 3, 8, 1, 9, 2}}, nil)
	curve := Cumulative(seq, NewComparisons())

	if len(curve) != seq.Len() {
		t.Fatalf("curve length %d, want %d", len(curve), seq.Len())
	}
	for i := 1; i < len(curve); i++ {
		if curve[i] < curve[i-1] {
			t.Fatalf("curve decreases at %d: %v -> %v", i, curve[i-1], curve[i])
		}
	}
	if curve[len(curve)-1] == 0 {
		t.Error("expected some comparisons")
	}
}

func TestMetricReset(t *testing.T) {
	m := NewMutations()
	m.Observe(frame.Frame{Values: []int{1, 2}})
	m.Observe(frame.Frame{Values: []int{2, 1}})
	if m.Value() != 1 {
		t.Fatalf("value = %d, want 1", m.Value())
	}
	m.Reset()
	if m.Value() != 0 {
		t.Errorf("value after reset = %d", m.Value())
	}
}
