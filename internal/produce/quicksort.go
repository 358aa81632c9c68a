package produce

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/frame"
)

// QuickSort uses the Lomuto partition scheme with the last element of each
// range as pivot.
type QuickSort struct{}

func NewQuickSort() *QuickSort { return &QuickSort{} }

func (s *QuickSort) Name() string   { return "quick_sort" }
func (s *QuickSort) Family() Family { return FamilySort }

func (s *QuickSort) Produce(in Input, ann Annotations) frame.Sequence {
	values := append([]int(nil), in.Values...)
	n := len(values)
	settled := frame.NewIndexSet()
	r := newRecorder(s.Name(), ann)

	r.emit("init", frame.Frame{
		Kind:        frame.KindArray,
		Description: "initial array",
		Values:      values,
		Settled:     settled,
	})

	s.sortRange(r, values, 0, n-1, settled)

	for i := 0; i < n; i++ {
		settled[i] = true
	}
	r.emit("done", frame.Frame{
		Kind:        frame.KindArray,
		Description: "array sorted",
		Values:      values,
		Settled:     settled,
	})

	return r.sequence()
}

func (s *QuickSort) sortRange(r *recorder, values []int, lo, hi int, settled frame.IndexSet) {
	if lo > hi {
		return
	}
	if lo == hi {
		settled[lo] = true
		r.emit("settle", frame.Frame{
			Kind:        frame.KindArray,
			Description: fmt.Sprintf("position %d settled", lo),
			Values:      values,
			Settled:     settled,
		})
		return
	}

	p := s.partition(r, values, lo, hi, settled)
	s.sortRange(r, values, lo, p-1, settled)
	s.sortRange(r, values, p+1, hi, settled)
}

func (s *QuickSort) partition(r *recorder, values []int, lo, hi int, settled frame.IndexSet) int {
	pivot := values[hi]
	r.emit("pivot", frame.Frame{
		Kind:        frame.KindArray,
		Description: fmt.Sprintf("pivot %d at position %d for range [%d..%d]", pivot, hi, lo, hi),
		Values:      values,
		Highlighted: frame.NewIndexSet(hi),
		Settled:     settled,
	})

	i := lo
	for j := lo; j < hi; j++ {
		r.emit("compare", frame.Frame{
			Kind:        frame.KindArray,
			Description: fmt.Sprintf("compare position %d with pivot %d", j, pivot),
			Values:      values,
			Compared:    frame.NewIndexSet(j, hi),
			Highlighted: frame.NewIndexSet(hi),
			Settled:     settled,
		})
		if values[j] < pivot {
			if i != j {
				values[i], values[j] = values[j], values[i]
				r.emit("swap", frame.Frame{
					Kind:        frame.KindArray,
					Description: fmt.Sprintf("move %d below the pivot boundary at %d", values[i], i),
					Values:      values,
					Highlighted: frame.NewIndexSet(i, j),
					Settled:     settled,
				})
			}
			i++
		}
	}

	values[i], values[hi] = values[hi], values[i]
	settled[i] = true
	r.emit("settle", frame.Frame{
		Kind:        frame.KindArray,
		Description: fmt.Sprintf("pivot %d placed at final position %d", pivot, i),
		Values:      values,
		Highlighted: frame.NewIndexSet(i),
		Settled:     settled,
	})

	return i
}
