package chordfile

import (
	"fmt"
	"strings"

	"github.com/thomaslorincz/ChordDiagram/pkg/chord"
)

// GenerateDOT converts a diagram to an undirected Graphviz graph. Items
// keep their colours and are laid out on a circle by circo, matching the
// ring order.
func GenerateDOT(d *chord.Diagram, title string) string {
	var sb strings.Builder

	sb.WriteString("graph Chord {\n")
	sb.WriteString("    layout=circo;\n")
	sb.WriteString("    node [shape=circle, style=filled, fontname=\"Helvetica\", fontsize=11];\n")
	sb.WriteString("\n")

	if title != "" {
		sb.WriteString("    labelloc=\"t\";\n")
		fmt.Fprintf(&sb, "    label=\"%s\";\n", escapeDOT(title))
		sb.WriteString("\n")
	}

	for _, it := range d.Items() {
		fmt.Fprintf(&sb, "    \"%s\" [fillcolor=\"%s\"];\n", escapeDOT(it.Label()), it.Color().Hex())
	}
	if len(d.Links()) > 0 {
		sb.WriteString("\n")
	}

	for _, l := range d.Links() {
		fmt.Fprintf(&sb, "    \"%s\" -- \"%s\";\n", escapeDOT(l.Item1().Label()), escapeDOT(l.Item2().Label()))
	}

	sb.WriteString("}\n")
	return sb.String()
}

func escapeDOT(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
