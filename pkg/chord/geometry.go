// Geometric utilities for chord diagram layout and interaction.
// Angles are in degrees, 0° at 3 o'clock, growing clockwise on a
// y-down surface.

package chord

import (
	"math"

	"github.com/jbeda/geom"
)

// Point represents a 2D coordinate on the drawing surface.
type Point = geom.Coord

// PointOnCircle converts a polar position around center to Cartesian.
func PointOnCircle(center Point, radius, theta float64) Point {
	rad := theta * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// ProjectRotation translates an (dx, dy) vector into a scalar rotation
// around the centre. x and y are the pointer position relative to the
// centre. The magnitude is the vector length; the sign comes from the dot
// product with the perpendicular of (x, y), so it follows the tangential
// direction of motion regardless of where on the ring the pointer is.
func ProjectRotation(dx, dy, x, y float64) float64 {
	l := math.Sqrt(dx*dx + dy*dy)

	crossX := -y
	crossY := x
	dot := crossX*dx + crossY*dy

	switch {
	case dot > 0:
		return l
	case dot < 0:
		return -l
	}
	return 0
}

// NormalizeRotation maps any integer rotation into [0, 360).
func NormalizeRotation(rotation int) int {
	return ((rotation % 360) + 360) % 360
}

// NormalizeAngle maps any angle into [0, 360).
func NormalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, 360)
	if theta < 0 {
		theta += 360
	}
	return theta
}

// QuadBezier evaluates a quadratic Bézier curve at t.
func QuadBezier(p0, ctrl, p1 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*(u*p0.X+t*ctrl.X) + t*(u*ctrl.X+t*p1.X),
		Y: u*(u*p0.Y+t*ctrl.Y) + t*(u*ctrl.Y+t*p1.Y),
	}
}

// AngleInSlice reports whether theta falls in [start, start+sweep),
// accounting for wrap-around at 360°.
func AngleInSlice(theta, start, sweep float64) bool {
	if sweep >= 360 {
		return true
	}
	d := NormalizeAngle(theta - start)
	return d < sweep
}
