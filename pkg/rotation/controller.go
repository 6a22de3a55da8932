// Package rotation turns pointer gestures into a rotation of the chord
// diagram: direct drags, inertial flings, and the settle back to idle.
package rotation

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/thomaslorincz/ChordDiagram/pkg/chord"
)

// Downscale damps pointer deltas and fling velocities before they are
// applied as degrees.
const Downscale = 4

// State is the controller's interaction state.
type State int

const (
	Idle State = iota
	Dragging
	Flinging
	Settling
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Flinging:
		return "flinging"
	case Settling:
		return "settling"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Listener is notified of rotation changes and rendering hints.
type Listener interface {
	// RotationChanged is called after every change, with the normalised
	// rotation in [0, 360).
	RotationChanged(rotation int)
	// RenderModeChanged passes a redraw-frequency hint to the host.
	RenderModeChanged(mode chord.RenderMode)
}

// Controller owns the diagram rotation and is its only driver: at most one
// of drag or fling is active, and starting a drag cancels a fling.
// It is not safe for concurrent use; ticks and pointer input must be
// serialised on one goroutine.
type Controller struct {
	state    State
	rotation int
	scroller *Scroller
	listener Listener
}

// NewController creates an idle controller. listener may be nil.
func NewController(scroller *Scroller, listener Listener) *Controller {
	if scroller == nil {
		scroller = NewScroller(nil, 1)
	}
	return &Controller{
		scroller: scroller,
		listener: listener,
	}
}

// State returns the current interaction state.
func (c *Controller) State() State { return c.state }

// Rotation returns the rotation in degrees, in [0, 360).
func (c *Controller) Rotation() int { return c.rotation }

// Animating reports whether the controller wants further Tick calls.
func (c *Controller) Animating() bool {
	return c.state == Flinging || c.state == Settling
}

// SetRotation sets the rotation directly. Any integer is accepted.
func (c *Controller) SetRotation(rotation int) {
	c.rotation = chord.NormalizeRotation(rotation)
	c.notifyRotation()
}

// Begin starts a gesture. A running fling is stopped first so that only
// one driver ever moves the rotation.
func (c *Controller) Begin() {
	if c.Animating() {
		c.scroller.ForceFinished()
	}
	c.setState(Dragging)
	c.notifyMode(chord.PreferThroughput)
}

// Drag applies a scroll step. distX and distY are the distance scrolled
// since the last step (previous pointer position minus current), and x, y
// the pointer position relative to the diagram centre. Drags outside a
// gesture are ignored.
func (c *Controller) Drag(distX, distY, x, y float64) {
	if c.state != Dragging {
		return
	}
	theta := int(chord.ProjectRotation(distX, distY, x, y)) / Downscale
	if theta == 0 {
		return
	}
	c.rotation = chord.NormalizeRotation(c.rotation - theta)
	c.notifyRotation()
}

// Fling ends the gesture with an inertial rotation. vx and vy are the
// release velocity in pixels per second; x, y the pointer position
// relative to the centre.
func (c *Controller) Fling(vx, vy, x, y float64) {
	velocity := int(chord.ProjectRotation(vx, vy, x, y)) / Downscale
	c.scroller.Fling(c.rotation, velocity, math.MinInt, math.MaxInt)
	c.setState(Flinging)
}

// Release ends the gesture without a fling.
func (c *Controller) Release() {
	c.scroller.ForceFinished()
	c.setState(Idle)
	c.notifyMode(chord.PreferEfficiency)
}

// Cancel stops any fling or settle immediately.
func (c *Controller) Cancel() {
	if !c.Animating() {
		return
	}
	c.scroller.ForceFinished()
	c.setState(Idle)
	c.notifyMode(chord.PreferEfficiency)
}

// Tick advances the fling by one animation frame and reports whether more
// frames are wanted.
func (c *Controller) Tick() bool {
	switch c.state {
	case Flinging:
		if c.scroller.ComputeOffset() {
			r := chord.NormalizeRotation(c.scroller.Curr())
			if r != c.rotation {
				c.rotation = r
				c.notifyRotation()
			}
		}
		if c.scroller.Finished() {
			c.setState(Settling)
		}
		return true
	case Settling:
		c.setState(Idle)
		c.notifyMode(chord.PreferEfficiency)
	}
	return false
}

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}
	chord.Logger().Debug("rotation: state change",
		slog.String("from", c.state.String()),
		slog.String("to", s.String()),
		slog.Int("rotation", c.rotation))
	c.state = s
}

func (c *Controller) notifyRotation() {
	if c.listener != nil {
		c.listener.RotationChanged(c.rotation)
	}
}

func (c *Controller) notifyMode(m chord.RenderMode) {
	if c.listener != nil {
		c.listener.RenderModeChanged(m)
	}
}
