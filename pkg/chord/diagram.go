// Package chord provides the chord diagram model: labelled items arranged
// around a ring, undirected links between them, and the angular layout that
// assigns every item a slice of the ring and every link its endpoint angles.
package chord

import "log/slog"

// Item is a labelled, coloured entry on the ring.
type Item struct {
	label string
	color RGB

	startAngle  float64
	endAngle    float64
	centerAngle float64

	connections int
	unassigned  int // scratch counter for link angle distribution
}

// Label returns the item's unique label.
func (it *Item) Label() string { return it.label }

// Color returns the item's colour.
func (it *Item) Color() RGB { return it.color }

// StartAngle returns the start of the item's slice in degrees.
func (it *Item) StartAngle() float64 { return it.startAngle }

// EndAngle returns the end of the item's slice in degrees.
func (it *Item) EndAngle() float64 { return it.endAngle }

// CenterAngle returns the middle of the item's slice in degrees.
func (it *Item) CenterAngle() float64 { return it.centerAngle }

// SweepAngle returns the width of the item's slice in degrees.
func (it *Item) SweepAngle() float64 { return it.endAngle - it.startAngle }

// Connections returns the number of links touching the item.
func (it *Item) Connections() int { return it.connections }

// PairKey identifies an unordered pair of item labels. The labels are
// stored sorted so (a, b) and (b, a) produce the same key.
type PairKey struct {
	A, B string
}

// MakePairKey builds the key for the unordered pair {a, b}.
func MakePairKey(a, b string) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}

// Link is an undirected connection between two distinct items.
type Link struct {
	item1 *Item
	item2 *Item

	endpointAngle1 float64
	endpointAngle2 float64
}

// Item1 returns the first endpoint, as given to AddLink.
func (l *Link) Item1() *Item { return l.item1 }

// Item2 returns the second endpoint, as given to AddLink.
func (l *Link) Item2() *Item { return l.item2 }

// EndpointAngle1 returns the angle at which the link leaves Item1.
func (l *Link) EndpointAngle1() float64 { return l.endpointAngle1 }

// EndpointAngle2 returns the angle at which the link leaves Item2.
func (l *Link) EndpointAngle2() float64 { return l.endpointAngle2 }

// Key returns the link's identity.
func (l *Link) Key() PairKey { return MakePairKey(l.item1.label, l.item2.label) }

// Diagram is the ordered registry of items and links.
//
// Every mutating call re-runs the layout before returning, so readers
// always see assigned angles. Invalid input (unknown labels, self-links,
// duplicates) is absorbed as a no-op. A Diagram is not safe for concurrent
// use.
type Diagram struct {
	items     []*Item
	itemIndex map[string]*Item

	links     []*Link
	linkIndex map[PairKey]*Link

	style ItemStyle
}

// New creates an empty diagram with the given item style.
func New(style ItemStyle) *Diagram {
	if !style.Valid() {
		style = StyleArc
	}
	return &Diagram{
		items:     make([]*Item, 0),
		itemIndex: make(map[string]*Item),
		links:     make([]*Link, 0),
		linkIndex: make(map[PairKey]*Link),
		style:     style,
	}
}

// Style returns the current item style.
func (d *Diagram) Style() ItemStyle { return d.style }

// SetStyle changes the item style and re-runs the layout. Unknown styles
// are ignored.
func (d *Diagram) SetStyle(style ItemStyle) {
	if !style.Valid() {
		Logger().Debug("chord: unknown item style ignored", slog.Int("style", int(style)))
		return
	}
	d.style = style
	d.Layout()
}

// Len returns the number of items.
func (d *Diagram) Len() int { return len(d.items) }

// Items returns the items in insertion order. The slice must not be modified.
func (d *Diagram) Items() []*Item { return d.items }

// Links returns the links in registration order. The slice must not be modified.
func (d *Diagram) Links() []*Link { return d.links }

// Item returns the item with the given label, or nil.
func (d *Diagram) Item(label string) *Item { return d.itemIndex[label] }

// Link returns the link between a and b in either order, or nil.
func (d *Diagram) Link(a, b string) *Link { return d.linkIndex[MakePairKey(a, b)] }

// AddItem inserts a new item. If the label already exists the call is a
// no-op and the new colour is dropped.
func (d *Diagram) AddItem(label string, color RGB) {
	if _, ok := d.itemIndex[label]; ok {
		Logger().Debug("chord: duplicate item ignored", slog.String("label", label))
		return
	}
	it := &Item{label: label, color: color}
	d.items = append(d.items, it)
	d.itemIndex[label] = it
	d.Layout()
}

// DeleteItem removes an item and every link that references it. Unknown
// labels are a no-op.
func (d *Diagram) DeleteItem(label string) {
	it, ok := d.itemIndex[label]
	if !ok {
		Logger().Debug("chord: delete of unknown item ignored", slog.String("label", label))
		return
	}

	kept := d.links[:0]
	for _, l := range d.links {
		if l.item1 == it || l.item2 == it {
			l.item1.connections--
			l.item2.connections--
			delete(d.linkIndex, l.Key())
			continue
		}
		kept = append(kept, l)
	}
	for i := len(kept); i < len(d.links); i++ {
		d.links[i] = nil
	}
	d.links = kept

	for i, x := range d.items {
		if x == it {
			d.items = append(d.items[:i], d.items[i+1:]...)
			break
		}
	}
	delete(d.itemIndex, label)
	d.Layout()
}

// AddLink connects two distinct existing items. Self-links, unknown labels
// and pairs that are already linked are ignored.
func (d *Diagram) AddLink(a, b string) {
	if a == b {
		Logger().Debug("chord: self-link ignored", slog.String("label", a))
		return
	}
	item1, ok1 := d.itemIndex[a]
	item2, ok2 := d.itemIndex[b]
	if !ok1 || !ok2 {
		Logger().Debug("chord: link to unknown item ignored", slog.String("a", a), slog.String("b", b))
		return
	}
	key := MakePairKey(a, b)
	if _, exists := d.linkIndex[key]; exists {
		Logger().Debug("chord: duplicate link ignored", slog.String("a", a), slog.String("b", b))
		return
	}

	l := &Link{item1: item1, item2: item2}
	item1.connections++
	item2.connections++
	d.links = append(d.links, l)
	d.linkIndex[key] = l
	d.Layout()
}

// DeleteLink removes the link between a and b. It is a no-op when either
// item is absent or the pair is not linked.
func (d *Diagram) DeleteLink(a, b string) {
	if d.itemIndex[a] == nil || d.itemIndex[b] == nil {
		return
	}
	key := MakePairKey(a, b)
	l, ok := d.linkIndex[key]
	if !ok {
		return
	}

	for i, x := range d.links {
		if x == l {
			d.links = append(d.links[:i], d.links[i+1:]...)
			break
		}
	}
	delete(d.linkIndex, key)
	l.item1.connections--
	l.item2.connections--
	d.Layout()
}

// Layout recomputes item slices and link endpoint angles. It runs
// automatically after every mutation; hosts call it again after a resize.
func (d *Diagram) Layout() {
	d.assignItemAngles()
	d.assignLinkAngles()
}

// assignItemAngles splits [0, 360) into equal contiguous slices in
// insertion order.
func (d *Diagram) assignItemAngles() {
	if len(d.items) == 0 {
		return
	}
	sweep := 360.0 / float64(len(d.items))
	for i, it := range d.items {
		it.unassigned = it.connections
		it.startAngle = float64(i) * sweep
		it.endAngle = float64(i+1) * sweep
		if i == len(d.items)-1 {
			it.endAngle = 360
		}
		it.centerAngle = (it.startAngle + it.endAngle) / 2
	}
}

// assignLinkAngles places each link endpoint on its item. In arc style an
// item's slice is divided into connections+1 sub-angles and links claim
// them in registration order, leaving a margin at both slice edges. In
// node style both endpoints sit on the item's start angle.
func (d *Diagram) assignLinkAngles() {
	for _, l := range d.links {
		if d.style == StyleNode {
			l.endpointAngle1 = l.item1.startAngle
			l.endpointAngle2 = l.item2.startAngle
			continue
		}
		l.endpointAngle1 = claimEndpoint(l.item1)
		l.endpointAngle2 = claimEndpoint(l.item2)
	}
}

func claimEndpoint(it *Item) float64 {
	distribution := it.SweepAngle() / float64(it.connections+1)
	index := it.connections - it.unassigned + 1
	it.unassigned--
	return it.startAngle + distribution*float64(index)
}
