// Package render turns a laid-out chord diagram into a flat list of draw
// commands, and writes those commands out as SVG or PNG.
package render

import (
	"fmt"
	"image/color"

	"github.com/thomaslorincz/ChordDiagram/pkg/chord"
)

// Kind identifies a draw command.
type Kind int

const (
	KindCircle  Kind = iota // filled circle at Center with Radius
	KindWedge               // filled pie slice from Center, Start and Sweep in degrees
	KindSegment             // straight stroke From..To of Width
	KindText                // upright text centred on Center
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindWedge:
		return "wedge"
	case KindSegment:
		return "segment"
	case KindText:
		return "text"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Command is one drawing primitive. Only the fields relevant to Kind are
// set. Angles are screen angles: rotation has already been applied.
type Command struct {
	Kind  Kind
	Color color.RGBA

	Center chord.Point
	Radius float64

	Start float64
	Sweep float64

	From  chord.Point
	To    chord.Point
	Width float64

	Text string
}

// List is a draw command sequence, in painting order.
type List []Command

// Count returns the number of commands of kind k.
func (l List) Count(k Kind) int {
	n := 0
	for _, c := range l {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// Filter returns the commands of kind k, in order.
func (l List) Filter(k Kind) List {
	var out List
	for _, c := range l {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}
