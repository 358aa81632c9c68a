package produce

import (
	"reflect"
	"sort"
	"testing"

	"github.com/san-kum/algoviz/internal/frame"
)

func sortProducers() []Producer {
	return []Producer{
		NewBubbleSort(),
		NewSelectionSort(),
		NewInsertionSort(),
		NewMergeSort(),
		NewQuickSort(),
	}
}

func TestSortProducersFinalFrame(t *testing.T) {
	inputs := [][]int{
		{3, 1, 2},
		{5, 4, 3, 2, 1},
		{1, 2, 3, 4},
		{7},
		{2, 2, 1, 2},
		{64, 34, 25, 12, 22, 11, 90},
	}

	for _, p := range sortProducers() {
		for _, input := range inputs {
			seq := p.Produce(Input{Values: input}, nil)
			if seq.Empty() {
				t.Fatalf("%s: empty sequence for %v", p.Name(), input)
			}

			final := seq.Final()
			want := append([]int(nil), input...)
			sort.Ints(want)
			if !reflect.DeepEqual(final.Values, want) {
				t.Errorf("%s: final values %v, want %v", p.Name(), final.Values, want)
			}
			for i := range input {
				if !final.Settled.Has(i) {
					t.Errorf("%s: final frame missing settled index %d for %v", p.Name(), i, input)
				}
			}
		}
	}
}

func TestSortProducersDeterministic(t *testing.T) {
	input := []int{64, 34, 25, 12, 22, 11, 90}
	for _, p := range sortProducers() {
		a := p.Produce(Input{Values: input}, nil)
		b := p.Produce(Input{Values: input}, nil)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s: two runs differ on identical input", p.Name())
		}
	}
}

func TestSortProducersDoNotMutateInput(t *testing.T) {
	input := []int{3, 1, 2}
	for _, p := range sortProducers() {
		p.Produce(Input{Values: input}, nil)
		if !reflect.DeepEqual(input, []int{3, 1, 2}) {
			t.Fatalf("%s: mutated caller input to %v", p.Name(), input)
		}
	}
}

func TestBubbleSortFrameEvents(t *testing.T) {
	seq := NewBubbleSort().Produce(Input{Values: []int{3, 1, 2}}, nil)

	type event struct {
		values   []int
		compared []int
		settled  []int
	}
	want := []event{
		{values: []int{3, 1, 2}, settled: []int{}},                    // initial
		{values: []int{3, 1, 2}, compared: []int{0, 1}, settled: []int{}},
		{values: []int{1, 3, 2}, settled: []int{}},                    // swap 0,1
		{values: []int{1, 3, 2}, compared: []int{1, 2}, settled: []int{}},
		{values: []int{1, 2, 3}, settled: []int{}},                    // swap 1,2
		{values: []int{1, 2, 3}, settled: []int{2}},                   // pass 0 settled
		{values: []int{1, 2, 3}, compared: []int{0, 1}, settled: []int{2}},
		{values: []int{1, 2, 3}, settled: []int{1, 2}},                // pass 1 settled
		{values: []int{1, 2, 3}, settled: []int{0, 1, 2}},             // final
	}

	if len(seq) != len(want) {
		t.Fatalf("expected %d frames, got %d", len(want), len(seq))
	}
	for i, w := range want {
		f := seq[i]
		if !reflect.DeepEqual(f.Values, w.values) {
			t.Errorf("frame %d: values %v, want %v", i, f.Values, w.values)
		}
		if got := f.Compared.Indices(); len(w.compared) > 0 && !reflect.DeepEqual(got, w.compared) {
			t.Errorf("frame %d: compared %v, want %v", i, got, w.compared)
		}
		if got := f.Settled.Indices(); !reflect.DeepEqual(got, w.settled) {
			t.Errorf("frame %d: settled %v, want %v", i, got, w.settled)
		}
	}
}

func TestFramesAreSelfContained(t *testing.T) {
	seq := NewBubbleSort().Produce(Input{Values: []int{2, 1}}, nil)
	// The initial frame must still show the pre-swap array after the
	// producer finished mutating its working copy.
	if !reflect.DeepEqual(seq[0].Values, []int{2, 1}) {
		t.Errorf("initial frame aliased working state: %v", seq[0].Values)
	}
	if !reflect.DeepEqual(seq.Final().Values, []int{1, 2}) {
		t.Errorf("final frame not sorted: %v", seq.Final().Values)
	}
}

func TestAnnotationsPopulateSourceLines(t *testing.T) {
	ann := Annotations{"compare": 4, "swap": 6}
	seq := NewBubbleSort().Produce(Input{Values: []int{2, 1}}, ann)

	sawCompare, sawSwap := false, false
	for _, f := range seq {
		switch f.SourceLine {
		case 4:
			sawCompare = true
		case 6:
			sawSwap = true
		case frame.NoLine:
		default:
			t.Errorf("unexpected source line %d", f.SourceLine)
		}
	}
	if !sawCompare || !sawSwap {
		t.Error("annotated steps missing their source lines")
	}
}

func TestQuickSortSettlesPivots(t *testing.T) {
	seq := NewQuickSort().Produce(Input{Values: []int{64, 34, 25, 12, 22, 11, 90}}, nil)

	// Settled sets only ever grow, and every settled index holds its final
	// value from that frame on.
	final := seq.Final()
	prev := 0
	for i, f := range seq {
		if len(f.Settled) < prev {
			t.Fatalf("frame %d: settled set shrank", i)
		}
		prev = len(f.Settled)
		for _, idx := range f.Settled.Indices() {
			if f.Values[idx] != final.Values[idx] {
				t.Errorf("frame %d: settled index %d holds %d, final has %d",
					i, idx, f.Values[idx], final.Values[idx])
			}
		}
	}
}

func TestMergeSortEmitsDivideAndCopyFrames(t *testing.T) {
	seq := NewMergeSort().Produce(Input{Values: []int{3, 1, 4, 1, 5}}, nil)

	divides, compares, places := 0, 0, 0
	for _, f := range seq {
		switch {
		case len(f.Highlighted) > 1 && len(f.Compared) == 0:
			divides++
		case len(f.Compared) == 2:
			compares++
		case len(f.Highlighted) == 1:
			places++
		}
	}
	if divides == 0 {
		t.Error("expected divide frames")
	}
	if compares == 0 {
		t.Error("expected comparison frames")
	}
	if places == 0 {
		t.Error("expected placement frames")
	}
}
