package produce

import (
	"errors"
	"fmt"

	"github.com/san-kum/algoviz/internal/frame"
)

var (
	ErrEmptyInput      = errors.New("produce: empty input")
	ErrStartOutOfRange = errors.New("produce: start vertex out of range")
)

// Family groups producers by the input shape they consume.
type Family int

const (
	FamilySort Family = iota
	FamilySearch
	FamilyGraph
	FamilyNone
)

func (f Family) String() string {
	switch f {
	case FamilySort:
		return "sort"
	case FamilySearch:
		return "search"
	case FamilyGraph:
		return "graph"
	default:
		return "none"
	}
}

// Input carries every input shape a producer can need; each producer reads
// only the fields its family defines.
type Input struct {
	Values []int
	Target int
	Graph  [][]int
	Start  int
}

// Annotations maps semantic step names ("compare", "swap", "visit", ...) to
// source line indices. They only populate frame source hints and never
// affect control flow.
type Annotations map[string]int

func (a Annotations) Line(step string) int {
	if line, ok := a[step]; ok {
		return line
	}
	return frame.NoLine
}

type Producer interface {
	Name() string
	Family() Family
	Produce(in Input, ann Annotations) frame.Sequence
}

// ValidateInput enforces the producer contract at the boundary. Producers
// themselves assume well-formed input.
func ValidateInput(p Producer, in Input) error {
	switch p.Family() {
	case FamilySort, FamilySearch:
		if len(in.Values) == 0 {
			return fmt.Errorf("%w: %s needs a non-empty array", ErrEmptyInput, p.Name())
		}
	case FamilyGraph:
		if len(in.Graph) == 0 {
			return fmt.Errorf("%w: %s needs a non-empty adjacency list", ErrEmptyInput, p.Name())
		}
		if in.Start < 0 || in.Start >= len(in.Graph) {
			return fmt.Errorf("%w: start %d, %d vertices", ErrStartOutOfRange, in.Start, len(in.Graph))
		}
	}
	return nil
}

// recorder accumulates frames through a producer run. Recursive producers
// pass it down explicitly instead of closing over shared slices.
type recorder struct {
	algorithm string
	ann       Annotations
	frames    []frame.Frame
}

func newRecorder(algorithm string, ann Annotations) *recorder {
	return &recorder{algorithm: algorithm, ann: ann}
}

// emit stamps the algorithm label and source hint, then appends a deep copy
// so later mutation of working state cannot leak into earlier frames.
func (r *recorder) emit(step string, f frame.Frame) {
	f.Algorithm = r.algorithm
	f.SourceLine = r.ann.Line(step)
	r.frames = append(r.frames, f.Clone())
}

func (r *recorder) sequence() frame.Sequence {
	return frame.Sequence(r.frames)
}
