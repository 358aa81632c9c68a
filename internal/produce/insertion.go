package produce

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/frame"
)

type InsertionSort struct{}

func NewInsertionSort() *InsertionSort { return &InsertionSort{} }

func (s *InsertionSort) Name() string   { return "insertion_sort" }
func (s *InsertionSort) Family() Family { return FamilySort }

func (s *InsertionSort) Produce(in Input, ann Annotations) frame.Sequence {
	values := append([]int(nil), in.Values...)
	n := len(values)
	r := newRecorder(s.Name(), ann)

	r.emit("init", frame.Frame{
		Kind:        frame.KindArray,
		Description: "first element is trivially sorted",
		Values:      values,
		Highlighted: frame.NewIndexSet(0),
	})

	for i := 1; i < n; i++ {
		key := values[i]
		r.emit("candidate", frame.Frame{
			Kind:        frame.KindArray,
			Description: fmt.Sprintf("insert value %d from position %d into the sorted prefix", key, i),
			Values:      values,
			Highlighted: frame.NewIndexSet(i),
		})
		j := i - 1
		for j >= 0 {
			r.emit("compare", frame.Frame{
				Kind:        frame.KindArray,
				Description: fmt.Sprintf("compare value %d with position %d", key, j),
				Values:      values,
				Compared:    frame.NewIndexSet(j, j+1),
			})
			if values[j] <= key {
				break
			}
			values[j+1] = values[j]
			r.emit("shift", frame.Frame{
				Kind:        frame.KindArray,
				Description: fmt.Sprintf("shift position %d right", j),
				Values:      values,
				Highlighted: frame.NewIndexSet(j + 1),
			})
			j--
		}
		values[j+1] = key
		r.emit("place", frame.Frame{
			Kind:        frame.KindArray,
			Description: fmt.Sprintf("place value %d at position %d", key, j+1),
			Values:      values,
			Highlighted: frame.NewIndexSet(j + 1),
		})
	}

	settled := frame.NewIndexSet()
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
