package chordfile

import (
	"fmt"

	"github.com/thomaslorincz/ChordDiagram/pkg/chord"
)

// Mutator is the editing surface a document is replayed onto.
// *chordview.View implements it.
type Mutator interface {
	AddItem(label string, color chord.RGB)
	AddLink(a, b string)
	SetItemStyle(style chord.ItemStyle)
	SetShowLabels(show bool)
	SetRotation(rotation int)
}

// Source is a diagram that can be captured into a document.
type Source interface {
	Diagram() *chord.Diagram
	ShowLabels() bool
	Rotation() int
}

// Apply replays doc onto m: style first, then items and links in file
// order. Duplicate, self and dangling entries are left to the diagram,
// which ignores them. A bad style or colour aborts before anything is
// applied.
func Apply(doc *Document, m Mutator) error {
	style, err := chord.ParseItemStyle(doc.Style)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadStyle, err)
	}
	colors := make([]chord.RGB, len(doc.Items))
	for i, it := range doc.Items {
		c, err := chord.ParseRGB(it.Color)
		if err != nil {
			return fmt.Errorf("item %q: %w: %v", it.Label, ErrBadColor, err)
		}
		colors[i] = c
	}

	m.SetItemStyle(style)
	m.SetShowLabels(doc.LabelsShown())
	for i, it := range doc.Items {
		m.AddItem(it.Label, colors[i])
	}
	for _, l := range doc.Links {
		m.AddLink(l[0], l[1])
	}
	m.SetRotation(doc.Rotation)
	return nil
}

// Capture returns the document for the current state of s. Items and
// links keep their registration order.
func Capture(s Source) *Document {
	d := s.Diagram()
	show := s.ShowLabels()
	doc := &Document{
		Style:      d.Style().String(),
		ShowLabels: &show,
		Rotation:   s.Rotation(),
		Items:      make([]Item, 0, d.Len()),
		Links:      make([][2]string, 0, len(d.Links())),
	}
	for _, it := range d.Items() {
		doc.Items = append(doc.Items, Item{Label: it.Label(), Color: it.Color().Hex()})
	}
	for _, l := range d.Links() {
		doc.Links = append(doc.Links, [2]string{l.Item1().Label(), l.Item2().Label()})
	}
	return doc
}

// Demo replays the sample diagram: five items, fully linked. The call
// sequence repeats an item and a link, which the diagram ignores.
func Demo(m Mutator) {
	m.AddItem("1", chord.Blue)
	m.AddItem("2", chord.Red)
	m.AddItem("3", chord.Green)
	m.AddItem("4", chord.Yellow)
	m.AddItem("5", chord.Magenta)
	m.AddItem("5", chord.Magenta)

	m.AddLink("1", "2")
	m.AddLink("1", "3")
	m.AddLink("1", "4")
	m.AddLink("1", "5")

	m.AddLink("2", "3")
	m.AddLink("2", "4")
	m.AddLink("2", "5")

	m.AddLink("3", "4")
	m.AddLink("3", "5")

	m.AddLink("4", "5")
	m.AddLink("4", "5")
	m.AddLink("4", "5")
}
