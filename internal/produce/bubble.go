package produce

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/frame"
)

type BubbleSort struct{}

func NewBubbleSort() *BubbleSort { return &BubbleSort{} }

func (b *BubbleSort) Name() string   { return "bubble_sort" }
func (b *BubbleSort) Family() Family { return FamilySort }

func (b *BubbleSort) Produce(in Input, ann Annotations) frame.Sequence {
	values := append([]int(nil), in.Values...)
	n := len(values)
	settled := frame.NewIndexSet()
	r := newRecorder(b.Name(), ann)

	r.emit("init", frame.Frame{
		Kind:        frame.KindArray,
		Description: "initial array",
		Values:      values,
		Settled:     settled,
	})

	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			r.emit("compare", frame.Frame{
				Kind:        frame.KindArray,
				Description: fmt.Sprintf("compare positions %d and %d", j, j+1),
				Values:      values,
				Compared:    frame.NewIndexSet(j, j+1),
				Settled:     settled,
			})
			if values[j] > values[j+1] {
				values[j], values[j+1] = values[j+1], values[j]
				r.emit("swap", frame.Frame{
					Kind:        frame.KindArray,
					Description: fmt.Sprintf("swap positions %d and %d", j, j+1),
					Values:      values,
					Highlighted: frame.NewIndexSet(j, j+1),
					Settled:     settled,
				})
			}
		}
		settled[n-i-1] = true
		r.emit("settle", frame.Frame{
			Kind:        frame.KindArray,
			Description: fmt.Sprintf("position %d settled", n-i-1),
			Values:      values,
			Settled:     settled,
		})
	}

	settled[0] = true
	r.emit("done", frame.Frame{
		Kind:        frame.KindArray,
		Description: "array sorted",
		Values:      values,
		Settled:     settled,
	})

	return r.sequence()
}
