package engine_test

import (
	"fmt"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/engine"
	"github.com/san-kum/algoviz/internal/frame"
)

type fakeRenderer struct {
	mu     sync.Mutex
	frames []frame.Frame
	clears int
}

func (r *fakeRenderer) Render(f frame.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)
}

func (r *fakeRenderer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears++
}

func (r *fakeRenderer) renderCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

func (r *fakeRenderer) clearCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clears
}

type positionLog struct {
	mu        sync.Mutex
	positions []int
}

func (l *positionLog) listen(pos int, f frame.Frame) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.positions = append(l.positions, pos)
}

func (l *positionLog) seen() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]int(nil), l.positions...)
}

func testSequence(n int) frame.Sequence {
	seq := make(frame.Sequence, n)
	for i := range seq {
		seq[i] = frame.Frame{
			Kind:        frame.KindArray,
			Description: fmt.Sprintf("step %d", i),
			Values:      []int{i},
		}
	}
	return seq
}

var _ = Describe("Engine", func() {
	var (
		r   *fakeRenderer
		log *positionLog
		e   *engine.Engine
	)

	BeforeEach(func() {
		r = &fakeRenderer{}
		log = &positionLog{}
		e = engine.New(r)
		e.AddListener(log.listen)
	})

	Describe("Load", func() {
		It("rejects an empty sequence", func() {
			Expect(e.Load(nil)).To(MatchError(engine.ErrEmptySequence))
		})

		It("resets position and status and clears the output", func() {
			Expect(e.Load(testSequence(5))).To(Succeed())
			e.Seek(3)

			Expect(e.Load(testSequence(4))).To(Succeed())
			Expect(e.Position()).To(Equal(0))
			Expect(e.Status()).To(Equal(engine.StatusIdle))
			Expect(r.clearCount()).To(Equal(2))
		})
	})

	Describe("manual stepping", func() {
		It("is a silent no-op with nothing loaded", func() {
			e.StepForward()
			e.StepBackward()
			e.Seek(7)
			e.Play()
			Expect(r.renderCount()).To(BeZero())
		})

		It("clamps at both ends", func() {
			Expect(e.Load(testSequence(3))).To(Succeed())

			e.StepBackward()
			Expect(e.Position()).To(Equal(0))

			e.StepForward()
			e.StepForward()
			Expect(e.Position()).To(Equal(2))

			e.StepForward()
			Expect(e.Position()).To(Equal(2))
		})

		It("re-renders on every effective step", func() {
			Expect(e.Load(testSequence(3))).To(Succeed())
			e.StepForward()
			e.StepBackward()
			Expect(r.renderCount()).To(Equal(2))
			Expect(log.seen()).To(Equal([]int{1, 0}))
		})

		It("seeks with clamping", func() {
			Expect(e.Load(testSequence(4))).To(Succeed())

			e.Seek(99)
			Expect(e.Position()).To(Equal(3))

			e.Seek(-5)
			Expect(e.Position()).To(Equal(0))
		})
	})

	Describe("autonomous playback", func() {
		It("visits every position in order, then idles at the final frame", func() {
			Expect(e.Load(testSequence(5))).To(Succeed())
			e.SetSpeed(100)
			e.Play()

			Eventually(e.Status, time.Second).Should(Equal(engine.StatusIdle))
			Expect(e.Position()).To(Equal(4))
			Expect(log.seen()).To(Equal([]int{1, 2, 3, 4}))
		})

		It("paces advances by 1000/speed milliseconds", func() {
			Expect(e.Load(testSequence(5))).To(Succeed())
			e.SetSpeed(50) // 20ms per frame, 80ms to finish

			start := time.Now()
			e.Play()
			Eventually(e.Status, time.Second).Should(Equal(engine.StatusIdle))
			elapsed := time.Since(start)

			Expect(elapsed).To(BeNumerically(">=", 70*time.Millisecond))
			Expect(elapsed).To(BeNumerically("<", 500*time.Millisecond))
		})

		It("replays from the start after completing", func() {
			Expect(e.Load(testSequence(3))).To(Succeed())
			e.SetSpeed(200)
			e.Play()
			Eventually(e.Status, time.Second).Should(Equal(engine.StatusIdle))

			e.Play()
			Eventually(e.Status, time.Second).Should(Equal(engine.StatusIdle))
			Expect(log.seen()).To(Equal([]int{1, 2, 0, 1, 2}))
		})

		It("completes a single-frame sequence immediately", func() {
			Expect(e.Load(testSequence(1))).To(Succeed())
			e.Play()
			Expect(e.Status()).To(Equal(engine.StatusIdle))
			Expect(r.renderCount()).To(Equal(1))
		})
	})

	Describe("Pause", func() {
		It("halts advancement and keeps position", func() {
			Expect(e.Load(testSequence(20))).To(Succeed())
			e.SetSpeed(100)
			e.Play()

			Eventually(e.Position, time.Second).Should(BeNumerically(">=", 2))
			e.Pause()
			Expect(e.Status()).To(Equal(engine.StatusPaused))

			held := e.Position()
			Consistently(e.Position, 100*time.Millisecond).Should(Equal(held))
		})

		It("resumes from the paused position without double-advancing", func() {
			Expect(e.Load(testSequence(6))).To(Succeed())
			e.SetSpeed(100)
			e.Play()
			Eventually(e.Position, time.Second).Should(BeNumerically(">=", 1))
			e.Pause()
			e.Play()

			Eventually(e.Status, time.Second).Should(Equal(engine.StatusIdle))
			Expect(log.seen()).To(Equal([]int{1, 2, 3, 4, 5}))
		})
	})

	Describe("Stop", func() {
		It("resets to idle at position 0 and clears the output", func() {
			Expect(e.Load(testSequence(10))).To(Succeed())
			e.SetSpeed(100)
			e.Play()
			Eventually(e.Position, time.Second).Should(BeNumerically(">=", 2))

			e.Stop()
			Expect(e.Status()).To(Equal(engine.StatusIdle))
			Expect(e.Position()).To(Equal(0))
			Expect(r.clearCount()).To(Equal(2))
		})

		It("cancels the pending advance so no frame renders after stop", func() {
			Expect(e.Load(testSequence(10))).To(Succeed())
			e.SetSpeed(100)
			e.Play()
			Eventually(e.Position, time.Second).Should(BeNumerically(">=", 1))

			e.Stop()
			after := r.renderCount()
			Consistently(r.renderCount, 100*time.Millisecond).Should(Equal(after))
		})
	})

	Describe("SetSpeed", func() {
		It("ignores non-positive multipliers", func() {
			e.SetSpeed(-3)
			Expect(e.Speed()).To(Equal(1.0))
			e.SetSpeed(0)
			Expect(e.Speed()).To(Equal(1.0))
			e.SetSpeed(2.5)
			Expect(e.Speed()).To(Equal(2.5))
		})
	})
})
