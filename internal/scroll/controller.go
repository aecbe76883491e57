// Package scroll drives teleprompter auto-scroll: it advances a scrollable
// surface at a user-selected speed, tracks scroll depth as a 0..1 fraction,
// and signals completion once per pass.
package scroll

import "time"

// Surface is the scrollable region the controller advances and observes. The
// rendering layer owns the real position; the controller only reads it and
// nudges it forward. Heights and offsets share one unit (terminal rows here,
// pixels elsewhere).
type Surface interface {
	Offset() float64
	ContentHeight() float64
	ViewportHeight() float64
	SetOffset(float64)
}

// State of the playback machine.
type State int

const (
	StateIdle State = iota
	StateScrolling
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateScrolling:
		return "scrolling"
	case StateCompleted:
		return "completed"
	default:
		return "idle"
	}
}

const (
	// MinSpeed and MaxSpeed bound the unitless speed multiplier.
	MinSpeed = 0.0
	MaxSpeed = 5.0

	// SpeedStep is the UI increment; the controller itself accepts any
	// value inside the range.
	SpeedStep = 0.1

	// baseRate is how many surface units one speed unit covers per second.
	baseRate = 2.0
)

// Controller converts a scroll speed into continuous motion against a
// Surface. All methods are safe no-ops while no surface is attached; nothing
// here ever blocks or panics on caller mistakes.
type Controller struct {
	surface Surface
	state   State
	speed   float64

	lastDepth       float64
	completionFired bool

	onProgress func(float64)
	onComplete func()
}

func NewController() *Controller {
	return &Controller{speed: 1}
}

// Attach connects the controller to a surface. Passing nil detaches it and
// forces playback idle.
func (c *Controller) Attach(s Surface) {
	c.surface = s
	if s == nil {
		c.state = StateIdle
	}
}

// OnProgress registers the depth callback. It may fire many times per
// second; consumers must not assume a cadence.
func (c *Controller) OnProgress(fn func(float64)) { c.onProgress = fn }

// OnComplete registers the end-of-pass callback, fired exactly once each
// time depth reaches 1.
func (c *Controller) OnComplete(fn func()) { c.onComplete = fn }

func (c *Controller) State() State { return c.state }

func (c *Controller) Speed() float64 { return c.speed }

// SetSpeed clamps v into [MinSpeed, MaxSpeed]. Out-of-range values are
// caller bugs, recovered by clamping rather than rejected.
func (c *Controller) SetSpeed(v float64) {
	c.speed = clampSpeed(v)
}

// Toggle flips between idle and scrolling. From completed it restarts from
// the current position; reaching the end never self-resets.
func (c *Controller) Toggle() {
	switch c.state {
	case StateScrolling:
		c.state = StateIdle
	default:
		if c.surface == nil {
			return
		}
		c.state = StateScrolling
	}
}

// Stop forces playback idle. Safe in any state.
func (c *Controller) Stop() {
	if c.state == StateScrolling {
		c.state = StateIdle
	}
}

// Tick advances the surface while scrolling. The caller invokes it once per
// animation frame with the elapsed wall time since the previous frame.
func (c *Controller) Tick(dt time.Duration) {
	if c.state != StateScrolling || c.surface == nil || dt <= 0 {
		return
	}
	span := c.scrollSpan()
	if span <= 0 {
		c.Observe()
		return
	}
	next := c.surface.Offset() + c.speed*baseRate*dt.Seconds()
	if next > span {
		next = span
	}
	c.surface.SetOffset(next)
	c.Observe()
}

// Observe recomputes depth from the surface and reports it. The rendering
// layer calls this on every native position change (wheel, keys, slide
// jumps); Tick calls it after each auto-advance.
func (c *Controller) Observe() {
	if c.surface == nil {
		return
	}
	depth := c.depth()
	c.lastDepth = depth
	if c.onProgress != nil {
		c.onProgress(depth)
	}
	if depth >= 1 {
		if !c.completionFired {
			c.completionFired = true
			if c.state == StateScrolling {
				c.state = StateCompleted
			}
			if c.onComplete != nil {
				c.onComplete()
			}
		}
		return
	}
	// Seeking back below the end re-arms the completion edge trigger.
	c.completionFired = false
}

// Progress returns the depth from the most recent observation.
func (c *Controller) Progress() float64 { return c.lastDepth }

func (c *Controller) depth() float64 {
	span := c.scrollSpan()
	if span <= 0 {
		return 0
	}
	depth := c.surface.Offset() / span
	if depth < 0 {
		return 0
	}
	if depth > 1 {
		return 1
	}
	return depth
}

func (c *Controller) scrollSpan() float64 {
	return c.surface.ContentHeight() - c.surface.ViewportHeight()
}

func clampSpeed(v float64) float64 {
	if v < MinSpeed {
		return MinSpeed
	}
	if v > MaxSpeed {
		return MaxSpeed
	}
	return v
}
