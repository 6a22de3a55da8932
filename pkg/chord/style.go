package chord

import "fmt"

// ItemStyle selects how items are drawn and where links attach.
type ItemStyle int

const (
	StyleArc  ItemStyle = iota // items are wedges of the ring
	StyleNode                  // items are points on the ring
)

// String returns the style name used in files and on the command line.
func (s ItemStyle) String() string {
	switch s {
	case StyleArc:
		return "arc"
	case StyleNode:
		return "node"
	}
	return fmt.Sprintf("ItemStyle(%d)", int(s))
}

// Valid reports whether s is a known style.
func (s ItemStyle) Valid() bool {
	return s == StyleArc || s == StyleNode
}

// ParseItemStyle parses "arc" or "node".
func ParseItemStyle(s string) (ItemStyle, error) {
	switch s {
	case "arc", "":
		return StyleArc, nil
	case "node":
		return StyleNode, nil
	}
	return StyleArc, fmt.Errorf("unknown item style %q", s)
}

// RenderMode is a hint passed to the hosting surface about upcoming redraw
// frequency.
type RenderMode int

const (
	PreferEfficiency RenderMode = iota // idle: release frequent-redraw resources
	PreferThroughput                   // interaction in progress: frequent redraws coming
)

func (m RenderMode) String() string {
	if m == PreferThroughput {
		return "throughput"
	}
	return "efficiency"
}
