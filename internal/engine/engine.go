// Package engine owns playback of a frame sequence: position, speed, and
// the playing/paused/idle state machine that drives rendering.
package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/san-kum/algoviz/internal/frame"
)

var ErrEmptySequence = errors.New("engine: empty sequence")

type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusPaused
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	default:
		return "idle"
	}
}

// Renderer consumes one frame per visible state change and must repaint
// fully from that frame alone.
type Renderer interface {
	Render(f frame.Frame)
	Clear()
}

// Listener observes every position change alongside the renderer.
type Listener func(position int, f frame.Frame)

// Engine is built once per session and holds all playback state. The
// scheduled advance fires on a timer goroutine, so a mutex serializes it
// against user calls; every transition away from playing cancels the
// pending timer before touching state.
type Engine struct {
	mu        sync.Mutex
	seq       frame.Sequence
	pos       int
	speed     float64
	status    Status
	timer     *time.Timer
	gen       uint64
	renderer  Renderer
	listeners []Listener
}

func New(r Renderer) *Engine {
	return &Engine{speed: 1.0, renderer: r}
}

// AddListener registers a position callback. Not safe to call concurrently
// with playback; wire listeners up front.
func (e *Engine) AddListener(l Listener) { e.listeners = append(e.listeners, l) }

// Load replaces the current sequence, cancels any pending advance, resets
// position to 0 with status idle, and clears the rendered output.
func (e *Engine) Load(seq frame.Sequence) error {
	if seq.Empty() {
		return ErrEmptySequence
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cancelLocked()
	e.seq = seq
	e.pos = 0
	e.status = StatusIdle
	if e.renderer != nil {
		e.renderer.Clear()
	}
	return nil
}

// Play begins autonomous advancement. No-op without a loaded sequence or
// when already playing; playing from a completed run restarts as-is from
// the retained position.
func (e *Engine) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.seq.Empty() || e.status == StatusPlaying {
		return
	}
	if e.seq.Len() == 1 {
		// nothing to advance through; a single frame completes immediately
		e.renderLocked()
		return
	}
	if e.pos >= e.seq.Len()-1 {
		e.pos = 0
		e.renderLocked()
	}
	e.status = StatusPlaying
	e.scheduleLocked()
}

// Pause halts advancement, keeping the current position.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusPlaying {
		return
	}
	e.cancelLocked()
	e.status = StatusPaused
}

// Stop returns to idle at position 0 and clears the rendered output.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cancelLocked()
	e.status = StatusIdle
	e.pos = 0
	if e.renderer != nil {
		e.renderer.Clear()
	}
}

// StepForward moves one frame ahead, clamped at the end. Allowed in any
// status; a silent no-op with nothing loaded or at the last frame.
func (e *Engine) StepForward() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.seq.Empty() || e.pos >= e.seq.Len()-1 {
		return
	}
	e.pos++
	e.renderLocked()
}

// StepBackward moves one frame back, clamped at 0.
func (e *Engine) StepBackward() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.seq.Empty() || e.pos == 0 {
		return
	}
	e.pos--
	e.renderLocked()
}

// Seek jumps to index, clamped into range, and re-renders immediately.
func (e *Engine) Seek(index int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.seq.Empty() {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= e.seq.Len() {
		index = e.seq.Len() - 1
	}
	e.pos = index
	e.renderLocked()
}

// SetSpeed sets the frames/sec multiplier. Takes effect on the next
// scheduled advance; non-positive values are ignored.
func (e *Engine) SetSpeed(multiplier float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if multiplier > 0 {
		e.speed = multiplier
	}
}

func (e *Engine) Position() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pos
}

func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

func (e *Engine) Speed() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.speed
}

func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.seq.Len()
}

// Current returns the frame at the playback position.
func (e *Engine) Current() (frame.Frame, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.seq.Empty() {
		return frame.Frame{}, false
	}
	return e.seq[e.pos], true
}

// Delay is the interval between autonomous advances at the current speed.
func (e *Engine) Delay() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return delayFor(e.speed)
}

func delayFor(speed float64) time.Duration {
	return time.Duration(float64(time.Second) / speed)
}

// scheduleLocked arms the advance timer. The generation counter marks the
// pending callback; cancelLocked bumps it so a callback that already fired
// but lost the lock race sees itself stale and returns without advancing.
func (e *Engine) scheduleLocked() {
	e.gen++
	gen := e.gen
	e.timer = time.AfterFunc(delayFor(e.speed), func() { e.advance(gen) })
}

func (e *Engine) cancelLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.gen++
}

func (e *Engine) advance(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.gen || e.status != StatusPlaying {
		return
	}
	e.pos++
	e.renderLocked()

	if e.pos >= e.seq.Len()-1 {
		// completed run: retain the final frame, drop back to idle
		e.timer = nil
		e.status = StatusIdle
		return
	}
	e.scheduleLocked()
}

func (e *Engine) renderLocked() {
	f := e.seq[e.pos]
	if e.renderer != nil {
		e.renderer.Render(f)
	}
	for _, l := range e.listeners {
		l(e.pos, f)
	}
}
