// Package stats derives step counters from a frame sequence, in the spirit
// of simulation metrics: observers that fold over every step and report a
// single value.
package stats

import (
	"reflect"

	"github.com/san-kum/algoviz/internal/frame"
)

type Metric interface {
	Name() string
	Observe(f frame.Frame)
	Value() int
	Reset()
}

// Comparisons counts frames that compare two elements or vertices.
type Comparisons struct {
	count int
}

func NewComparisons() *Comparisons { return &Comparisons{} }

func (c *Comparisons) Name() string { return "comparisons" }

func (c *Comparisons) Observe(f frame.Frame) {
	if len(f.Compared) > 0 {
		c.count++
	}
}

func (c *Comparisons) Value() int { return c.count }
func (c *Comparisons) Reset()     { c.count = 0 }

// Mutations counts frames whose values differ from the previous frame, i.e.
// swaps, shifts, and placements.
type Mutations struct {
	prev  []int
	seen  bool
	count int
}

func NewMutations() *Mutations { return &Mutations{} }

func (m *Mutations) Name() string { return "mutations" }

func (m *Mutations) Observe(f frame.Frame) {
	if m.seen && !reflect.DeepEqual(m.prev, f.Values) {
		m.count++
	}
	m.prev = append(m.prev[:0], f.Values...)
	m.seen = true
}

func (m *Mutations) Value() int { return m.count }

func (m *Mutations) Reset() {
	m.prev = nil
	m.seen = false
	m.count = 0
}

// Summary aggregates the standard metrics over a complete sequence.
type Summary struct {
	Frames      int `json:"frames"`
	Comparisons int `json:"comparisons"`
	Mutations   int `json:"mutations"`
	Settled     int `json:"settled"`
	Visited     int `json:"visited"`
}

func Collect(seq frame.Sequence) Summary {
	s := Summary{Frames: seq.Len()}
	if seq.Empty() {
		return s
	}

	comparisons := NewComparisons()
	mutations := NewMutations()
	for _, f := range seq {
		comparisons.Observe(f)
		mutations.Observe(f)
	}

	final := seq.Final()
	s.Comparisons = comparisons.Value()
	s.Mutations = mutations.Value()
	s.Settled = len(final.Settled)
	s.Visited = len(final.Visited)
	return s
}

// Cumulative folds a metric over the sequence, reporting its running value
// at every frame. Used for plotting work-over-time curves.
func Cumulative(seq frame.Sequence, m Metric) []float64 {
	m.Reset()
	out := make([]float64, 0, seq.Len())
	for _, f := range seq {
		m.Observe(f)
		out = append(out, float64(m.Value()))
	}
	return out
}
