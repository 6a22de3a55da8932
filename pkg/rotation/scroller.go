package rotation

import (
	"math"
	"time"
)

// Clock returns the current time. Scroller and Detector take one so that
// animation ticks are reproducible in tests.
type Clock func() time.Time

// Spline deceleration constants of the platform fling model.
const (
	inflexion      = 0.35 // tension lines cross at this point
	startTension   = 0.5
	endTension     = 1.0
	splineSamples  = 100
	gravityEarth   = 9.80665 // m/s²
	inchesPerMeter = 39.37
	scrollFriction = 0.015
)

var decelerationRate = math.Log(0.78) / math.Log(0.9)

// splinePosition[i] is the fraction of the total fling distance covered
// after i/splineSamples of the fling duration.
var splinePosition = buildSplinePosition()

func buildSplinePosition() [splineSamples + 1]float64 {
	var pos [splineSamples + 1]float64
	p1 := startTension * inflexion
	p2 := 1.0 - endTension*(1.0-inflexion)

	xMin := 0.0
	for i := 0; i < splineSamples; i++ {
		alpha := float64(i) / splineSamples

		xMax := 1.0
		var x, coef float64
		for {
			x = xMin + (xMax-xMin)/2.0
			coef = 3.0 * x * (1.0 - x)
			tx := coef*((1.0-x)*p1+x*p2) + x*x*x
			if math.Abs(tx-alpha) < 1e-5 {
				break
			}
			if tx > alpha {
				xMax = x
			} else {
				xMin = x
			}
		}
		pos[i] = coef*((1.0-x)*startTension+x) + x*x*x
	}
	pos[splineSamples] = 1.0
	return pos
}

// Scroller integrates a one-dimensional fling under friction. It does not
// animate anything itself: callers ask for the position on every frame
// with ComputeOffset. Positions are whole units (degrees for the diagram).
type Scroller struct {
	clock Clock

	physicalCoeff float64

	start    int
	final    int
	curr     int
	min, max int

	startTime time.Time
	duration  time.Duration
	finished  bool
}

// NewScroller creates a finished scroller. density is the surface's pixel
// density relative to 160 dpi; it scales how far a given velocity travels.
func NewScroller(clock Clock, density float64) *Scroller {
	if clock == nil {
		clock = time.Now
	}
	if density <= 0 {
		density = 1
	}
	ppi := density * 160.0
	return &Scroller{
		clock:         clock,
		physicalCoeff: gravityEarth * inchesPerMeter * ppi * 0.84,
		min:           math.MinInt,
		max:           math.MaxInt,
		finished:      true,
	}
}

// Fling starts a fling at start with the given velocity in units per
// second. The resting position is clamped to [min, max].
func (s *Scroller) Fling(start, velocity, min, max int) {
	s.start = start
	s.curr = start
	s.min, s.max = min, max
	s.startTime = s.clock()
	s.finished = false
	s.duration = 0

	total := 0.0
	if velocity != 0 {
		v := math.Abs(float64(velocity))
		s.duration = s.splineFlingDuration(v)
		total = s.splineFlingDistance(v)
		if velocity < 0 {
			total = -total
		}
	}

	final := float64(start) + math.Round(total)
	final = math.Max(final, float64(min))
	final = math.Min(final, float64(max))
	s.final = int(final)
}

func (s *Scroller) splineDeceleration(velocity float64) float64 {
	return math.Log(inflexion * velocity / (scrollFriction * s.physicalCoeff))
}

func (s *Scroller) splineFlingDuration(velocity float64) time.Duration {
	l := s.splineDeceleration(velocity)
	ms := 1000.0 * math.Exp(l/(decelerationRate-1.0))
	return time.Duration(ms) * time.Millisecond
}

func (s *Scroller) splineFlingDistance(velocity float64) float64 {
	l := s.splineDeceleration(velocity)
	return scrollFriction * s.physicalCoeff * math.Exp(decelerationRate/(decelerationRate-1.0)*l)
}

// ComputeOffset advances the position to the current time. It returns
// false once the fling has already finished.
func (s *Scroller) ComputeOffset() bool {
	if s.finished {
		return false
	}

	elapsed := s.clock().Sub(s.startTime)
	if elapsed >= s.duration {
		s.curr = s.final
		s.finished = true
		return true
	}

	t := float64(elapsed) / float64(s.duration)
	index := int(splineSamples * t)
	distanceCoef := 1.0
	if index < splineSamples {
		tInf := float64(index) / splineSamples
		tSup := float64(index+1) / splineSamples
		dInf := splinePosition[index]
		dSup := splinePosition[index+1]
		velocityCoef := (dSup - dInf) / (tSup - tInf)
		distanceCoef = dInf + (t-tInf)*velocityCoef
	}

	curr := s.start + int(math.Round(distanceCoef*float64(s.final-s.start)))
	if curr < s.min {
		curr = s.min
	}
	if curr > s.max {
		curr = s.max
	}
	s.curr = curr
	return true
}

// ForceFinished stops the fling where it is.
func (s *Scroller) ForceFinished() {
	s.finished = true
}

// Finished reports whether the fling is over.
func (s *Scroller) Finished() bool { return s.finished }

// Curr returns the position computed by the last ComputeOffset.
func (s *Scroller) Curr() int { return s.curr }

// Final returns where the fling will come to rest.
func (s *Scroller) Final() int { return s.final }

// Duration returns the total length of the current fling.
func (s *Scroller) Duration() time.Duration { return s.duration }
