package produce

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/frame"
)

type LinearSearch struct{}

func NewLinearSearch() *LinearSearch { return &LinearSearch{} }

func (s *LinearSearch) Name() string   { return "linear_search" }
func (s *LinearSearch) Family() Family { return FamilySearch }

func (s *LinearSearch) Produce(in Input, ann Annotations) frame.Sequence {
	values := append([]int(nil), in.Values...)
	r := newRecorder(s.Name(), ann)

	r.emit("init", frame.Frame{
		Kind:        frame.KindSearch,
		Description: fmt.Sprintf("searching for %d", in.Target),
		Values:      values,
		Cursor:      frame.None,
		Target:      in.Target,
	})

	for i, v := range values {
		if v == in.Target {
			r.emit("match", frame.Frame{
				Kind:        frame.KindSearch,
				Description: fmt.Sprintf("found %d at position %d", in.Target, i),
				Values:      values,
				Cursor:      i,
				Target:      in.Target,
				Found:       true,
			})
			return r.sequence()
		}
		r.emit("scan", frame.Frame{
			Kind:        frame.KindSearch,
			Description: fmt.Sprintf("position %d holds %d, not %d", i, v, in.Target),
			Values:      values,
			Cursor:      i,
			Target:      in.Target,
		})
	}

	r.emit("done", frame.Frame{
		Kind:        frame.KindSearch,
		Description: fmt.Sprintf("%d is not in the array", in.Target),
		Values:      values,
		Cursor:      frame.None,
		Target:      in.Target,
	})

	return r.sequence()
}

// BinarySearch assumes its input is sorted ascending; the classifier and CLI
// pass data through as given, so an unsorted input simply animates the
// textbook mistake.
type BinarySearch struct{}

func NewBinarySearch() *BinarySearch { return &BinarySearch{} }

func (s *BinarySearch) Name() string   { return "binary_search" }
func (s *BinarySearch) Family() Family { return FamilySearch }

func (s *BinarySearch) Produce(in Input, ann Annotations) frame.Sequence {
	values := append([]int(nil), in.Values...)
	r := newRecorder(s.Name(), ann)

	lo, hi := 0, len(values)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case values[mid] == in.Target:
			r.emit("match", frame.Frame{
				Kind:        frame.KindBinarySearch,
				Description: fmt.Sprintf("midpoint %d holds %d, target found", mid, values[mid]),
				Values:      values,
				Low:         lo,
				High:        hi,
				Mid:         mid,
				Target:      in.Target,
				Found:       true,
			})
			return r.sequence()
		case values[mid] < in.Target:
			r.emit("narrow", frame.Frame{
				Kind:        frame.KindBinarySearch,
				Description: fmt.Sprintf("midpoint %d holds %d < %d, searching right half", mid, values[mid], in.Target),
				Values:      values,
				Low:         lo,
				High:        hi,
				Mid:         mid,
				Target:      in.Target,
			})
			lo = mid + 1
		default:
			r.emit("narrow", frame.Frame{
				Kind:        frame.KindBinarySearch,
				Description: fmt.Sprintf("midpoint %d holds %d > %d, searching left half", mid, values[mid], in.Target),
				Values:      values,
				Low:         lo,
				High:        hi,
				Mid:         mid,
				Target:      in.Target,
			})
			hi = mid - 1
		}
	}

	r.emit("done", frame.Frame{
		Kind:        frame.KindBinarySearch,
		Description: fmt.Sprintf("%d is not in the array", in.Target),
		Values:      values,
		Low:         lo,
		High:        hi,
		Mid:         frame.None,
		Target:      in.Target,
	})

	return r.sequence()
}
