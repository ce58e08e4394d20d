package anim

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-viscoconv/dsp/core"
)

// State is the driver lifecycle state.
type State int

const (
	// StateIdle is the state before the first frame.
	StateIdle State = iota

	// StatePlaying means Index holds the current frame.
	StatePlaying

	// StateDone means the sequence ended without repeat.
	StateDone
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// firstFrame is the index of the first animated frame.
const firstFrame = 1

// Driver steps a frame index over a Scene and produces per-frame curve
// updates. It owns the product buffer handed out in frames; a Frame is only
// valid until the next call to Advance or Render.
type Driver struct {
	scene *Scene
	end   int // exclusive upper frame index

	state  State
	index  int
	cycles int

	product []float64
	curves  [4]Curve
}

// NewDriver creates an idle driver for scene.
func NewDriver(scene *Scene) *Driver {
	n := scene.Len()
	end := n - 1
	if scene.cfg.Tail == TailSlide {
		end = 2 * n
	}

	return &Driver{
		scene:   scene,
		end:     end,
		product: make([]float64, n),
	}
}

// Scene returns the scene being animated.
func (d *Driver) Scene() *Scene {
	return d.scene
}

// State returns the lifecycle state.
func (d *Driver) State() State {
	return d.state
}

// Index returns the current frame index, 0 while idle.
func (d *Driver) Index() int {
	return d.index
}

// Cycles returns how many times the sequence has wrapped around.
func (d *Driver) Cycles() int {
	return d.cycles
}

// Frames returns the number of frames in one pass of the sequence.
func (d *Driver) Frames() int {
	return d.end - firstFrame
}

// Reset returns the driver to idle.
func (d *Driver) Reset() {
	d.state = StateIdle
	d.index = 0
	d.cycles = 0
}

// Advance moves to the next frame and renders it. After the last frame the
// sequence restarts at frame 1 when the scene repeats; otherwise the driver
// becomes done and Advance returns false.
func (d *Driver) Advance() (Frame, bool) {
	switch d.state {
	case StateIdle:
		d.state = StatePlaying
		d.index = firstFrame
	case StatePlaying:
		next := d.index + 1
		if next >= d.end {
			if !d.scene.cfg.Repeat {
				d.state = StateDone
				return Frame{}, false
			}
			next = firstFrame
			d.cycles++
		}
		d.index = next
	default:
		return Frame{}, false
	}

	return d.Render(d.index), true
}

// Render builds the frame for index i without changing the driver state.
// Valid indices are 0 through 2N; Render panics outside that range.
func (d *Driver) Render(i int) Frame {
	s := d.scene
	n := s.Len()
	window := s.sliding.Window(i)

	marker := core.ClampIndex(i, 0, n-1)
	prefix := core.ClampIndex(i, 0, n)

	vecmath.MulBlock(d.product, s.scaledRate, window)

	wx, wy := s.t, window
	if s.cfg.KernelView == KernelTrailing {
		wx, wy = s.t[:prefix], window[:prefix]
	}

	d.curves = [4]Curve{
		{ID: CurveMarker, X: s.t[marker : marker+1], Y: s.load[marker : marker+1]},
		{ID: CurveWindow, X: wx, Y: wy},
		{ID: CurveConvolution, X: s.t[:prefix], Y: s.convolved[:prefix]},
		{ID: CurveProduct, X: s.t, Y: d.product},
	}
	return Frame{Index: i, Curves: d.curves[:]}
}
