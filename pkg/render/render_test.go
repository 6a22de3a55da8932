package render

import (
	"math"
	"testing"

	"github.com/thomaslorincz/ChordDiagram/pkg/chord"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func nearPoint(a, b chord.Point) bool { return near(a.X, b.X) && near(a.Y, b.Y) }

func twoItemScene(rotation int) Scene {
	d := chord.New(chord.StyleArc)
	d.AddItem("A", chord.Red)
	d.AddItem("B", chord.Blue)
	d.AddLink("A", "B")
	return SceneOf(d, rotation, false, NewMetrics(200, 0))
}

func TestNewMetrics(t *testing.T) {
	tests := []struct {
		name                     string
		diameter, extent         float64
		ring, radius, textRadius float64
	}{
		{"no labels", 200, 0, 4, 96, 100},
		{"labels", 500, 30, 10, 210, 235},
		{"small", 40, 0, 0, 20, 20},
		{"labels wider than ring", 20, 40, 0, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMetrics(tc.diameter, tc.extent)
			if m.RingThickness != tc.ring {
				t.Errorf("ring %.2f, want %.2f", m.RingThickness, tc.ring)
			}
			if m.Radius != tc.radius {
				t.Errorf("radius %.2f, want %.2f", m.Radius, tc.radius)
			}
			if m.TextRadius != tc.textRadius {
				t.Errorf("text radius %.2f, want %.2f", m.TextRadius, tc.textRadius)
			}
			if m.Center.X != tc.diameter/2 || m.Center.Y != tc.diameter/2 {
				t.Errorf("centre %v", m.Center)
			}
		})
	}
}

func TestRenderArcStyleWedges(t *testing.T) {
	r := NewRenderer(DefaultOptions())
	l := r.Render(twoItemScene(30))

	wedges := l.Filter(KindWedge)
	if len(wedges) != 2 {
		t.Fatalf("expected 2 wedges, got %d", len(wedges))
	}
	if wedges[0].Start != 30 || wedges[0].Sweep != 180 {
		t.Errorf("A wedge start=%.1f sweep=%.1f, want 30/180", wedges[0].Start, wedges[0].Sweep)
	}
	if wedges[1].Start != 210 || wedges[1].Sweep != 180 {
		t.Errorf("B wedge start=%.1f sweep=%.1f, want 210/180", wedges[1].Start, wedges[1].Sweep)
	}
	if wedges[0].Color != chord.Red.RGBA() || wedges[1].Color != chord.Blue.RGBA() {
		t.Errorf("wedge colours %v %v", wedges[0].Color, wedges[1].Color)
	}

	// Items first, then the hole, then links.
	if l[0].Kind != KindWedge || l[1].Kind != KindWedge || l[2].Kind != KindCircle {
		t.Fatalf("unexpected order: %v %v %v", l[0].Kind, l[1].Kind, l[2].Kind)
	}
	hole := l[2]
	if hole.Radius != 92 || hole.Color != DefaultOptions().Background {
		t.Errorf("hole radius=%.1f colour=%v", hole.Radius, hole.Color)
	}
}

func TestRenderWedgeStartWraps(t *testing.T) {
	r := NewRenderer(DefaultOptions())
	l := r.Render(twoItemScene(350))

	wedges := l.Filter(KindWedge)
	if wedges[0].Start != 350 || wedges[1].Start != 170 {
		t.Errorf("starts %.1f %.1f, want 350 170", wedges[0].Start, wedges[1].Start)
	}
}

func TestRenderSingleItemIsFullCircle(t *testing.T) {
	d := chord.New(chord.StyleArc)
	d.AddItem("solo", chord.Green)
	l := NewRenderer(DefaultOptions()).Render(SceneOf(d, 0, false, NewMetrics(200, 0)))

	if l.Count(KindWedge) != 0 {
		t.Errorf("single item should not draw wedges")
	}
	circles := l.Filter(KindCircle)
	if len(circles) != 2 {
		t.Fatalf("expected ring and hole circles, got %d", len(circles))
	}
	if circles[0].Color != chord.Green.RGBA() || circles[0].Radius != 96 {
		t.Errorf("ring circle %+v", circles[0])
	}
}

func TestRenderNodeStyle(t *testing.T) {
	d := chord.New(chord.StyleNode)
	d.AddItem("A", chord.Red)
	d.AddItem("B", chord.Blue)
	m := NewMetrics(200, 0)
	l := NewRenderer(DefaultOptions()).Render(SceneOf(d, 90, false, m))

	if l.Count(KindWedge) != 0 {
		t.Error("node style should not draw wedges")
	}
	nodes := l.Filter(KindCircle)
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	// A is centred at 90°, plus 90° rotation.
	want := chord.PointOnCircle(m.Center, m.Radius, 180)
	if !nearPoint(nodes[0].Center, want) {
		t.Errorf("node A at %v, want %v", nodes[0].Center, want)
	}
	if nodes[0].Radius != 20 {
		t.Errorf("node radius %.1f, want 20", nodes[0].Radius)
	}
}

func TestRenderLinkGradient(t *testing.T) {
	r := NewRenderer(DefaultOptions())
	s := twoItemScene(30)
	segs := r.Render(s).Filter(KindSegment)

	if len(segs) != 100 {
		t.Fatalf("expected 100 segments, got %d", len(segs))
	}
	if segs[0].Color != chord.Red.RGBA() {
		t.Errorf("first segment %v, want red", segs[0].Color)
	}
	if got, want := segs[50].Color, chord.Blend(chord.Red, chord.Blue, 0.5).RGBA(); got != want {
		t.Errorf("middle segment %v, want %v", got, want)
	}
	if segs[99].Color.B < 250 || segs[99].Color.R > 5 {
		t.Errorf("last segment should be nearly blue, got %v", segs[99].Color)
	}
	for i, sg := range segs {
		if sg.Width != 5 {
			t.Fatalf("segment %d width %.1f", i, sg.Width)
		}
		if i > 0 && !nearPoint(segs[i-1].To, sg.From) {
			t.Fatalf("segment %d does not continue from %d", i, i-1)
		}
	}

	// Endpoints sit mid-slice on the ring: A at 90°+30°, B at 270°+30°.
	m := s.Metrics
	if want := chord.PointOnCircle(m.Center, m.Radius, 120); !nearPoint(segs[0].From, want) {
		t.Errorf("curve starts at %v, want %v", segs[0].From, want)
	}
	if want := chord.PointOnCircle(m.Center, m.Radius, 300); !nearPoint(segs[99].To, want) {
		t.Errorf("curve ends at %v, want %v", segs[99].To, want)
	}
}

func TestRenderSamplesOption(t *testing.T) {
	opts := DefaultOptions()
	opts.Samples = 10
	segs := NewRenderer(opts).Render(twoItemScene(0)).Filter(KindSegment)
	if len(segs) != 10 {
		t.Fatalf("expected 10 segments, got %d", len(segs))
	}
	if got, want := segs[5].Color, chord.Blend(chord.Red, chord.Blue, 0.5).RGBA(); got != want {
		t.Errorf("segment 5 %v, want %v", got, want)
	}
}

func TestNewRendererFillsZeroOptions(t *testing.T) {
	r := NewRenderer(Options{})
	o := r.Options()
	if o.Samples != 100 || o.NodeRadius != 20 || o.LinkWidth != 5 || o.FontSize != 14 {
		t.Errorf("zero options not defaulted: %+v", o)
	}
}

func TestRenderLabels(t *testing.T) {
	d := chord.New(chord.StyleArc)
	d.AddItem("A", chord.Red)
	d.AddItem("B", chord.Blue)
	m := NewMetrics(200, 20)
	r := NewRenderer(DefaultOptions())

	shown := r.Render(SceneOf(d, 45, true, m)).Filter(KindText)
	if len(shown) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(shown))
	}
	if shown[0].Text != "A" || shown[0].Color != chord.Black.RGBA() {
		t.Errorf("label %+v", shown[0])
	}
	// A's centre is 90°; with 45° of rotation it sits at 135° on the text radius.
	if want := chord.PointOnCircle(m.Center, m.TextRadius, 135); !nearPoint(shown[0].Center, want) {
		t.Errorf("label A at %v, want %v", shown[0].Center, want)
	}

	hidden := SceneOf(d, 45, false, m)
	if hidden.Labels != nil {
		t.Error("hidden labels should not be placed")
	}
	if n := r.Render(hidden).Count(KindText); n != 0 {
		t.Errorf("hidden labels drew %d texts", n)
	}
}

func TestRenderEmpty(t *testing.T) {
	r := NewRenderer(DefaultOptions())

	if l := r.Render(SceneOf(chord.New(chord.StyleArc), 0, true, NewMetrics(200, 0))); len(l) != 0 {
		t.Errorf("empty diagram drew %d commands", len(l))
	}
	if l := r.Render(twoItemScene(0)); len(l) == 0 {
		t.Error("sanity: two-item scene should draw")
	}
	s := twoItemScene(0)
	s.Metrics = Metrics{}
	if l := r.Render(s); l != nil {
		t.Errorf("zero-size surface drew %d commands", len(l))
	}
}
