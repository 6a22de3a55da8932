package chord

import (
	"math"
	"testing"
)

func newRGBDiagram(style ItemStyle) *Diagram {
	d := New(style)
	d.AddItem("A", Red)
	d.AddItem("B", Green)
	d.AddItem("C", Blue)
	return d
}

func TestItemSlicesPartitionRing(t *testing.T) {
	for n := 1; n <= 7; n++ {
		d := New(StyleArc)
		for i := 0; i < n; i++ {
			d.AddItem(string(rune('a'+i)), Black)
		}

		total := 0.0
		prevEnd := 0.0
		for i, it := range d.Items() {
			if math.Abs(it.StartAngle()-prevEnd) > 1e-9 {
				t.Errorf("n=%d item %d: start %.4f, expected contiguous with %.4f", n, i, it.StartAngle(), prevEnd)
			}
			if it.EndAngle() <= it.StartAngle() {
				t.Errorf("n=%d item %d: empty slice [%.4f, %.4f)", n, i, it.StartAngle(), it.EndAngle())
			}
			if math.Abs(it.CenterAngle()-(it.StartAngle()+it.EndAngle())/2) > 1e-9 {
				t.Errorf("n=%d item %d: centre %.4f not mid-slice", n, i, it.CenterAngle())
			}
			total += it.SweepAngle()
			prevEnd = it.EndAngle()
		}
		if math.Abs(total-360) > 1e-9 {
			t.Errorf("n=%d: slices sum to %.6f, expected 360", n, total)
		}
	}
}

func TestItemsKeepInsertionOrder(t *testing.T) {
	d := New(StyleArc)
	for _, l := range []string{"zeta", "alpha", "mid"} {
		d.AddItem(l, Black)
	}
	want := []string{"zeta", "alpha", "mid"}
	for i, it := range d.Items() {
		if it.Label() != want[i] {
			t.Errorf("item %d: got %q, want %q", i, it.Label(), want[i])
		}
	}
	if d.Items()[1].StartAngle() != 120 {
		t.Errorf("second item should start at 120, got %.2f", d.Items()[1].StartAngle())
	}
}

func TestAddItemDuplicateKeepsFirstColor(t *testing.T) {
	d := New(StyleArc)
	d.AddItem("A", Red)
	d.AddItem("A", Blue)

	if d.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", d.Len())
	}
	if d.Item("A").Color() != Red {
		t.Errorf("duplicate add should keep the first colour, got %v", d.Item("A").Color())
	}
}

func TestAddLinkIdempotent(t *testing.T) {
	d := newRGBDiagram(StyleArc)
	d.AddLink("A", "B")
	d.AddLink("A", "B")
	d.AddLink("B", "A")

	if len(d.Links()) != 1 {
		t.Errorf("expected 1 link, got %d", len(d.Links()))
	}
	if got := d.Item("A").Connections(); got != 1 {
		t.Errorf("A connections: got %d, want 1", got)
	}
	if got := d.Item("B").Connections(); got != 1 {
		t.Errorf("B connections: got %d, want 1", got)
	}
}

func TestAddLinkRejectsSelfAndUnknown(t *testing.T) {
	d := newRGBDiagram(StyleArc)
	d.AddLink("A", "A")
	d.AddLink("A", "missing")
	d.AddLink("missing", "other")

	if len(d.Links()) != 0 {
		t.Errorf("expected no links, got %d", len(d.Links()))
	}
	if d.Item("A").Connections() != 0 {
		t.Errorf("rejected links must not touch connection counts")
	}
}

func TestPairKeyIsOrderIndependent(t *testing.T) {
	if MakePairKey("a", "b") != MakePairKey("b", "a") {
		t.Error("pair key should not depend on argument order")
	}
	// Pairs whose label hashes could sum to the same value must stay distinct.
	if MakePairKey("Aa", "BB") == MakePairKey("BB", "Ab") {
		t.Error("different pairs produced the same key")
	}
	if MakePairKey("ab", "c") == MakePairKey("a", "bc") {
		t.Error("concatenation-ambiguous pairs produced the same key")
	}
}

func TestDeleteItemCascadesLinks(t *testing.T) {
	d := newRGBDiagram(StyleArc)
	d.AddLink("A", "B")
	d.AddLink("A", "C")
	d.AddLink("B", "C")

	d.DeleteItem("A")

	if d.Item("A") != nil {
		t.Fatal("A should be gone")
	}
	if len(d.Links()) != 1 {
		t.Fatalf("expected only B-C to survive, got %d links", len(d.Links()))
	}
	if d.Link("A", "B") != nil || d.Link("C", "A") != nil {
		t.Error("links referencing A should be removed")
	}
	if got := d.Item("B").Connections(); got != 1 {
		t.Errorf("B connections after cascade: got %d, want 1", got)
	}
	for _, l := range d.Links() {
		if d.Item(l.Item1().Label()) == nil || d.Item(l.Item2().Label()) == nil {
			t.Errorf("link %v references a deleted item", l.Key())
		}
	}

	// Subsequent deletes on the removed pairs are no-ops.
	d.DeleteLink("A", "B")
	d.DeleteLink("A", "C")
	if len(d.Links()) != 1 {
		t.Errorf("no-op deletes changed the link set: %d links", len(d.Links()))
	}

	// Remaining items re-laid out over the full ring.
	if d.Item("B").SweepAngle() != 180 {
		t.Errorf("expected 180° slices after delete, got %.2f", d.Item("B").SweepAngle())
	}
}

func TestDeleteUnknownItemIsNoop(t *testing.T) {
	d := newRGBDiagram(StyleArc)
	d.AddLink("A", "B")

	d.DeleteItem("nope")

	if d.Len() != 3 || len(d.Links()) != 1 {
		t.Errorf("delete of unknown item changed the diagram: %d items, %d links", d.Len(), len(d.Links()))
	}
}

func TestDeleteLink(t *testing.T) {
	d := newRGBDiagram(StyleArc)
	d.AddLink("A", "B")
	d.AddLink("B", "C")

	d.DeleteLink("B", "A")

	if d.Link("A", "B") != nil {
		t.Error("A-B should be removed regardless of argument order")
	}
	if d.Item("A").Connections() != 0 || d.Item("B").Connections() != 1 {
		t.Errorf("connection counts not decremented: A=%d B=%d",
			d.Item("A").Connections(), d.Item("B").Connections())
	}

	d.DeleteLink("A", "missing")
	d.DeleteLink("A", "C")
	if len(d.Links()) != 1 {
		t.Errorf("no-op deletes changed the link set: %d links", len(d.Links()))
	}
}

func TestFullyLinkedTriangleArcStyle(t *testing.T) {
	d := newRGBDiagram(StyleArc)
	d.AddLink("A", "B")
	d.AddLink("A", "C")
	d.AddLink("B", "C")

	for _, it := range d.Items() {
		if it.SweepAngle() != 120 {
			t.Errorf("%s: slice %.2f, want 120", it.Label(), it.SweepAngle())
		}
		if it.Connections() != 2 {
			t.Errorf("%s: connections %d, want 2", it.Label(), it.Connections())
		}
		if it.unassigned != 0 {
			t.Errorf("%s: %d endpoints left unassigned", it.Label(), it.unassigned)
		}
	}

	tests := []struct {
		a, b  string
		want1 float64
		want2 float64
	}{
		{"A", "B", 40, 160},  // first link on A, first link on B
		{"A", "C", 80, 280},  // second on A, first on C
		{"B", "C", 200, 320}, // second on B, second on C
	}
	for _, tc := range tests {
		l := d.Link(tc.a, tc.b)
		if l == nil {
			t.Fatalf("missing link %s-%s", tc.a, tc.b)
		}
		if math.Abs(l.EndpointAngle1()-tc.want1) > 1e-9 || math.Abs(l.EndpointAngle2()-tc.want2) > 1e-9 {
			t.Errorf("%s-%s: endpoints (%.2f, %.2f), want (%.2f, %.2f)",
				tc.a, tc.b, l.EndpointAngle1(), l.EndpointAngle2(), tc.want1, tc.want2)
		}
		for _, end := range []struct {
			it    *Item
			angle float64
		}{{l.Item1(), l.EndpointAngle1()}, {l.Item2(), l.EndpointAngle2()}} {
			if end.angle <= end.it.StartAngle() || end.angle >= end.it.EndAngle() {
				t.Errorf("%s-%s: endpoint %.2f not strictly inside %s [%.2f, %.2f)",
					tc.a, tc.b, end.angle, end.it.Label(), end.it.StartAngle(), end.it.EndAngle())
			}
		}
	}
}

func TestNodeStyleEndpointsCollapse(t *testing.T) {
	d := newRGBDiagram(StyleNode)
	d.AddLink("A", "B")
	d.AddLink("C", "A")

	for _, l := range d.Links() {
		if l.EndpointAngle1() != l.Item1().StartAngle() {
			t.Errorf("%v: endpoint 1 %.2f, want item start %.2f", l.Key(), l.EndpointAngle1(), l.Item1().StartAngle())
		}
		if l.EndpointAngle2() != l.Item2().StartAngle() {
			t.Errorf("%v: endpoint 2 %.2f, want item start %.2f", l.Key(), l.EndpointAngle2(), l.Item2().StartAngle())
		}
	}
}

func TestSetStyleRelayouts(t *testing.T) {
	d := newRGBDiagram(StyleArc)
	d.AddLink("A", "B")
	if d.Link("A", "B").EndpointAngle1() != 60 {
		t.Fatalf("arc endpoint: got %.2f, want 60", d.Link("A", "B").EndpointAngle1())
	}

	d.SetStyle(StyleNode)
	if d.Link("A", "B").EndpointAngle1() != 0 {
		t.Errorf("node endpoint: got %.2f, want 0", d.Link("A", "B").EndpointAngle1())
	}

	d.SetStyle(ItemStyle(42))
	if d.Style() != StyleNode {
		t.Errorf("invalid style should be ignored, got %v", d.Style())
	}
}

func TestLayoutRepeatable(t *testing.T) {
	d := newRGBDiagram(StyleArc)
	d.AddLink("A", "B")
	d.AddLink("A", "C")
	before := d.Link("A", "C").EndpointAngle1()

	d.Layout()
	d.Layout()

	if after := d.Link("A", "C").EndpointAngle1(); after != before {
		t.Errorf("layout not deterministic: %.4f then %.4f", before, after)
	}
}

func TestLabelAnchors(t *testing.T) {
	d := newRGBDiagram(StyleArc)
	center := Point{X: 100, Y: 100}

	anchors := d.LabelAnchors(0, center, 50)
	if len(anchors) != 3 {
		t.Fatalf("expected 3 anchors, got %d", len(anchors))
	}
	// A centres at 60°.
	want := PointOnCircle(center, 50, 60)
	if anchors[0].Anchor.DistanceFrom(want) > 1e-9 {
		t.Errorf("A anchor %v, want %v", anchors[0].Anchor, want)
	}

	rotated := d.LabelAnchors(330, center, 50)
	if math.Abs(rotated[0].Angle-30) > 1e-9 {
		t.Errorf("rotated A angle %.2f, want 30", rotated[0].Angle)
	}
	if d.Item("A").CenterAngle() != 60 {
		t.Error("label placement must not mutate item angles")
	}
}
