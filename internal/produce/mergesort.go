package produce

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/frame"
)

type MergeSort struct{}

func NewMergeSort() *MergeSort { return &MergeSort{} }

func (s *MergeSort) Name() string   { return "merge_sort" }
func (s *MergeSort) Family() Family { return FamilySort }

func (s *MergeSort) Produce(in Input, ann Annotations) frame.Sequence {
	values := append([]int(nil), in.Values...)
	n := len(values)
	r := newRecorder(s.Name(), ann)

	r.emit("init", frame.Frame{
		Kind:        frame.KindArray,
		Description: "initial array",
		Values:      values,
	})

	s.sortRange(r, values, 0, n-1)

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

func (s *MergeSort) sortRange(r *recorder, values []int, lo, hi int) {
	if lo >= hi {
		return
	}
	mid := (lo + hi) / 2

	r.emit("divide", frame.Frame{
		Kind:        frame.KindArray,
		Description: fmt.Sprintf("divide range [%d..%d] at %d", lo, hi, mid),
		Values:      values,
		Highlighted: rangeSet(lo, hi),
	})

	s.sortRange(r, values, lo, mid)
	s.sortRange(r, values, mid+1, hi)
	s.merge(r, values, lo, mid, hi)
}

func (s *MergeSort) merge(r *recorder, values []int, lo, mid, hi int) {
	left := append([]int(nil), values[lo:mid+1]...)
	right := append([]int(nil), values[mid+1:hi+1]...)

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		r.emit("compare", frame.Frame{
			Kind:        frame.KindArray,
			Description: fmt.Sprintf("compare %d and %d while merging [%d..%d]", left[i], right[j], lo, hi),
			Values:      values,
			Compared:    frame.NewIndexSet(lo+i, mid+1+j),
		})
		if left[i] <= right[j] {
			values[k] = left[i]
			i++
		} else {
			values[k] = right[j]
			j++
		}
		r.emit("place", frame.Frame{
			Kind:        frame.KindArray,
			Description: fmt.Sprintf("write %d to position %d", values[k], k),
			Values:      values,
			Highlighted: frame.NewIndexSet(k),
		})
		k++
	}
	for i < len(left) {
		values[k] = left[i]
		r.emit("copy", frame.Frame{
			Kind:        frame.KindArray,
			Description: fmt.Sprintf("copy remaining %d to position %d", left[i], k),
			Values:      values,
			Highlighted: frame.NewIndexSet(k),
		})
		i++
		k++
	}
	for j < len(right) {
		values[k] = right[j]
		r.emit("copy", frame.Frame{
			Kind:        frame.KindArray,
			Description: fmt.Sprintf("copy remaining %d to position %d", right[j], k),
			Values:      values,
			Highlighted: frame.NewIndexSet(k),
		})
		j++
		k++
	}
}

func rangeSet(lo, hi int) frame.IndexSet {
	s := frame.NewIndexSet()
	for i := lo; i <= hi; i++ {
		s[i] = true
	}
	return s
}
