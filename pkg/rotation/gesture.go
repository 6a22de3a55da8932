package rotation

import (
	"math"
	"time"
)

// PointerEvent is a raw pointer sample in surface coordinates.
type PointerEvent struct {
	X, Y float64
	Time time.Time
}

// DetectorOptions configures gesture recognition. Distances are in
// surface pixels, velocities in pixels per second.
type DetectorOptions struct {
	TouchSlop        float64
	MinFlingVelocity float64
	MaxFlingVelocity float64
	Horizon          time.Duration // velocity is estimated over this window
}

// DefaultDetectorOptions returns the platform defaults at 1x density.
func DefaultDetectorOptions() DetectorOptions {
	return DetectorOptions{
		TouchSlop:        8,
		MinFlingVelocity: 50,
		MaxFlingVelocity: 8000,
		Horizon:          100 * time.Millisecond,
	}
}

// Detector turns down/move/up samples into scroll steps and a fling
// decision.
type Detector struct {
	opts DetectorOptions

	down      bool
	scrolling bool
	downX     float64
	downY     float64
	lastX     float64
	lastY     float64

	samples []PointerEvent
}

// NewDetector creates a detector with the given options.
func NewDetector(opts DetectorOptions) *Detector {
	return &Detector{opts: opts}
}

// Down starts tracking a new gesture.
func (d *Detector) Down(ev PointerEvent) {
	d.down = true
	d.scrolling = false
	d.downX, d.downY = ev.X, ev.Y
	d.lastX, d.lastY = ev.X, ev.Y
	d.samples = append(d.samples[:0], ev)
}

// Move records a sample and returns the scroll distance since the last
// reported step (previous minus current). ok is false while the pointer is
// still inside the touch slop, or when no gesture is in progress.
func (d *Detector) Move(ev PointerEvent) (distX, distY float64, ok bool) {
	if !d.down {
		return 0, 0, false
	}
	d.addSample(ev)

	if !d.scrolling {
		dx := ev.X - d.downX
		dy := ev.Y - d.downY
		if dx*dx+dy*dy <= d.opts.TouchSlop*d.opts.TouchSlop {
			return 0, 0, false
		}
		d.scrolling = true
	}

	distX = d.lastX - ev.X
	distY = d.lastY - ev.Y
	d.lastX, d.lastY = ev.X, ev.Y
	return distX, distY, true
}

// Up ends the gesture. It returns the release velocity and whether it is
// fast enough to count as a fling.
func (d *Detector) Up(ev PointerEvent) (vx, vy float64, fling bool) {
	if !d.down {
		return 0, 0, false
	}
	d.addSample(ev)
	d.down = false

	vx, vy = d.velocity()
	limit := d.opts.MaxFlingVelocity
	if limit > 0 {
		vx = math.Max(-limit, math.Min(limit, vx))
		vy = math.Max(-limit, math.Min(limit, vy))
	}
	fling = math.Abs(vx) > d.opts.MinFlingVelocity || math.Abs(vy) > d.opts.MinFlingVelocity
	return vx, vy, fling
}

// Active reports whether a pointer is down.
func (d *Detector) Active() bool { return d.down }

func (d *Detector) addSample(ev PointerEvent) {
	d.samples = append(d.samples, ev)
	cutoff := ev.Time.Add(-d.opts.Horizon)
	i := 0
	for i < len(d.samples)-1 && d.samples[i].Time.Before(cutoff) {
		i++
	}
	if i > 0 {
		d.samples = append(d.samples[:0], d.samples[i:]...)
	}
}

// velocity is the average velocity across the retained samples.
func (d *Detector) velocity() (vx, vy float64) {
	if len(d.samples) < 2 {
		return 0, 0
	}
	first := d.samples[0]
	last := d.samples[len(d.samples)-1]
	dt := last.Time.Sub(first.Time).Seconds()
	if dt <= 0 {
		return 0, 0
	}
	return (last.X - first.X) / dt, (last.Y - first.Y) / dt
}
