package frame

import (
	"encoding/json"
	"sort"
)

type Kind string

const (
	KindArray        Kind = "array"
	KindSearch       Kind = "search"
	KindBinarySearch Kind = "binary_search"
	KindGraph        Kind = "graph"
	KindTree         Kind = "tree" // reserved
)

// NoLine marks a frame with no source-line hint.
const NoLine = -1

// None marks an absent index (graph Current, search Cursor before start).
const None = -1

// IndexSet is a set of element or vertex indices. It marshals as a sorted
// JSON array so exported runs and the websocket feed stay readable.
type IndexSet map[int]bool

func NewIndexSet(indices ...int) IndexSet {
	s := make(IndexSet, len(indices))
	for _, i := range indices {
		s[i] = true
	}
	return s
}

func (s IndexSet) Has(i int) bool { return s[i] }

func (s IndexSet) Clone() IndexSet {
	if s == nil {
		return nil
	}
	c := make(IndexSet, len(s))
	for i := range s {
		c[i] = true
	}
	return c
}

// Indices returns the members in ascending order.
func (s IndexSet) Indices() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func (s IndexSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Indices())
}

func (s *IndexSet) UnmarshalJSON(data []byte) error {
	var indices []int
	if err := json.Unmarshal(data, &indices); err != nil {
		return err
	}
	*s = NewIndexSet(indices...)
	return nil
}

// Frame is one snapshot of algorithm state. Kind selects which payload
// fields are meaningful; the rest stay at their zero values.
type Frame struct {
	Kind        Kind   `json:"kind"`
	Algorithm   string `json:"algorithm"`
	Description string `json:"description"`
	SourceLine  int    `json:"sourceLine"`

	// array kind
	Values      []int    `json:"values,omitempty"`
	Highlighted IndexSet `json:"highlighted,omitempty"`
	Compared    IndexSet `json:"compared,omitempty"`
	Settled     IndexSet `json:"settled,omitempty"`

	// search kind (shares Values)
	Cursor int  `json:"cursor,omitempty"`
	Target int  `json:"target,omitempty"`
	Found  bool `json:"found,omitempty"`

	// binary_search kind (shares Values, Target, Found)
	Low  int `json:"low,omitempty"`
	High int `json:"high,omitempty"`
	Mid  int `json:"mid,omitempty"`

	// graph kind
	Adjacency  [][]int  `json:"adjacency,omitempty"`
	Visited    IndexSet `json:"visited,omitempty"`
	Frontier   []int    `json:"frontier,omitempty"`
	Current    int      `json:"current,omitempty"`
	VisitOrder []int    `json:"visitOrder,omitempty"`
}

// Clone deep-copies every slice and set so the copy cannot alias producer
// working state.
func (f Frame) Clone() Frame {
	c := f
	c.Values = cloneInts(f.Values)
	c.Highlighted = f.Highlighted.Clone()
	c.Compared = f.Compared.Clone()
	c.Settled = f.Settled.Clone()
	c.Frontier = cloneInts(f.Frontier)
	c.VisitOrder = cloneInts(f.VisitOrder)
	if f.Adjacency != nil {
		c.Adjacency = make([][]int, len(f.Adjacency))
		for i, row := range f.Adjacency {
			c.Adjacency[i] = cloneInts(row)
		}
	}
	return c
}

func cloneInts(v []int) []int {
	if v == nil {
		return nil
	}
	c := make([]int, len(v))
	copy(c, v)
	return c
}

// Sequence is the ordered output of one producer invocation. Producers
// guarantee it is non-empty: at minimum an initial and a final frame.
type Sequence []Frame

func (s Sequence) Len() int { return len(s) }

func (s Sequence) Empty() bool { return len(s) == 0 }

// At clamps i into range and returns the frame there. Callers that need
// strict indexing use plain slice access.
func (s Sequence) At(i int) Frame {
	if i < 0 {
		i = 0
	}
	if i >= len(s) {
		i = len(s) - 1
	}
	return s[i]
}

func (s Sequence) Final() Frame { return s[len(s)-1] }
