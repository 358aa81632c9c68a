package produce

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/frame"
)

type SelectionSort struct{}

func NewSelectionSort() *SelectionSort { return &SelectionSort{} }

func (s *SelectionSort) Name() string   { return "selection_sort" }
func (s *SelectionSort) Family() Family { return FamilySort }

func (s *SelectionSort) Produce(in Input, ann Annotations) frame.Sequence {
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

	for i := 0; i < n-1; i++ {
		min := i
		r.emit("candidate", frame.Frame{
			Kind:        frame.KindArray,
			Description: fmt.Sprintf("position %d is the current minimum candidate", i),
			Values:      values,
			Highlighted: frame.NewIndexSet(min),
			Settled:     settled,
		})
		for j := i + 1; j < n; j++ {
			r.emit("compare", frame.Frame{
				Kind:        frame.KindArray,
				Description: fmt.Sprintf("compare position %d with minimum at %d", j, min),
				Values:      values,
				Compared:    frame.NewIndexSet(j, min),
				Highlighted: frame.NewIndexSet(min),
				Settled:     settled,
			})
			if values[j] < values[min] {
				min = j
				r.emit("candidate", frame.Frame{
					Kind:        frame.KindArray,
					Description: fmt.Sprintf("new minimum at position %d", min),
					Values:      values,
					Highlighted: frame.NewIndexSet(min),
					Settled:     settled,
				})
			}
		}
		if min != i {
			values[i], values[min] = values[min], values[i]
			r.emit("swap", frame.Frame{
				Kind:        frame.KindArray,
				Description: fmt.Sprintf("swap positions %d and %d", i, min),
				Values:      values,
				Highlighted: frame.NewIndexSet(i, min),
				Settled:     settled,
			})
		}
		settled[i] = true
		r.emit("settle", frame.Frame{
			Kind:        frame.KindArray,
			Description: fmt.Sprintf("position %d settled", i),
			Values:      values,
			Settled:     settled,
		})
	}

	settled[n-1] = true
	r.emit("done", frame.Frame{
		Kind:        frame.KindArray,
		Description: "array sorted",
		Values:      values,
		Settled:     settled,
	})

	return r.sequence()
}
