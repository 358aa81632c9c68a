package produce

import "github.com/san-kum/algoviz/internal/frame"

// Unknown is the fallback when classification finds nothing to animate. It
// emits a single informational frame instead of failing.
type Unknown struct{}

func NewUnknown() *Unknown { return &Unknown{} }

func (u *Unknown) Name() string   { return "unknown" }
func (u *Unknown) Family() Family { return FamilyNone }

func (u *Unknown) Produce(in Input, ann Annotations) frame.Sequence {
	values := append([]int(nil), in.Values...)
	r := newRecorder(u.Name(), ann)
	r.emit("init", frame.Frame{
		Kind:        frame.KindArray,
		Description: "no recognizable algorithm, nothing to animate",
		Values:      values,
	})
	return r.sequence()
}
