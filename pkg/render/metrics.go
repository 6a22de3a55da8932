package render

import (
	"math"

	"github.com/thomaslorincz/ChordDiagram/pkg/chord"
)

// Metrics are the size-dependent radii of a square diagram surface.
type Metrics struct {
	Diameter      float64
	Center        chord.Point
	Radius        float64 // outer edge of the ring; link endpoints sit here
	RingThickness float64
	TextRadius    float64 // label anchors
}

// NewMetrics derives the radii for a surface of the given diameter.
// labelExtent is the largest label width or height, zero when labels are
// hidden; the ring shrinks to leave room for it.
func NewMetrics(diameter, labelExtent float64) Metrics {
	if diameter < 0 {
		diameter = 0
	}
	if labelExtent < 0 {
		labelExtent = 0
	}
	ring := float64(int(0.02 * diameter))
	half := diameter / 2
	return Metrics{
		Diameter:      diameter,
		Center:        chord.Point{X: half, Y: half},
		Radius:        math.Max(0, half-labelExtent-ring),
		RingThickness: ring,
		TextRadius:    math.Max(0, half-labelExtent/2),
	}
}

// HoleRadius is the radius of the background disc that turns the item
// wedges into a ring.
func (m Metrics) HoleRadius() float64 {
	return math.Max(0, m.Radius-m.RingThickness)
}
