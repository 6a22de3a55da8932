package render

import (
	"image/color"

	"github.com/thomaslorincz/ChordDiagram/pkg/chord"
)

// Options configures the draw command output.
type Options struct {
	NodeRadius float64 // node-style item radius
	LinkWidth  float64 // stroke width of link segments
	Samples    int     // segments per link curve
	FontSize   float64 // label size in points, used by the backends
	Background color.RGBA
	LabelColor color.RGBA
}

// DefaultOptions returns the stock look of the widget.
func DefaultOptions() Options {
	return Options{
		NodeRadius: 20,
		LinkWidth:  5,
		Samples:    100,
		FontSize:   14,
		Background: chord.White.RGBA(),
		LabelColor: chord.Black.RGBA(),
	}
}

// Scene is everything a frame depends on. It is a snapshot: the renderer
// only reads it.
type Scene struct {
	Items      []*chord.Item
	Links      []*chord.Link
	Rotation   int
	Style      chord.ItemStyle
	ShowLabels bool
	Metrics    Metrics
	Labels     []chord.LabelAnchor
}

// SceneOf snapshots a laid-out diagram at the given rotation.
func SceneOf(d *chord.Diagram, rotation int, showLabels bool, m Metrics) Scene {
	s := Scene{
		Items:      d.Items(),
		Links:      d.Links(),
		Rotation:   chord.NormalizeRotation(rotation),
		Style:      d.Style(),
		ShowLabels: showLabels,
		Metrics:    m,
	}
	if showLabels {
		s.Labels = d.LabelAnchors(s.Rotation, m.Center, m.TextRadius)
	}
	return s
}

// Renderer produces draw commands for a Scene.
type Renderer struct {
	opts Options
}

// NewRenderer creates a renderer. Zero-valued size options fall back to
// the defaults.
func NewRenderer(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.NodeRadius <= 0 {
		opts.NodeRadius = def.NodeRadius
	}
	if opts.LinkWidth <= 0 {
		opts.LinkWidth = def.LinkWidth
	}
	if opts.Samples <= 0 {
		opts.Samples = def.Samples
	}
	if opts.FontSize <= 0 {
		opts.FontSize = def.FontSize
	}
	return &Renderer{opts: opts}
}

// Options returns the effective options.
func (r *Renderer) Options() Options { return r.opts }

// Render draws items, then links, then labels.
func (r *Renderer) Render(s Scene) List {
	if s.Metrics.Diameter <= 0 {
		return nil
	}
	var out List
	out = r.drawItems(out, s)
	out = r.drawLinks(out, s)
	if s.ShowLabels {
		out = r.drawLabels(out, s)
	}
	return out
}

func (r *Renderer) drawItems(out List, s Scene) List {
	if len(s.Items) == 0 {
		return out
	}
	m := s.Metrics
	rot := float64(s.Rotation)

	if s.Style == chord.StyleNode {
		for _, it := range s.Items {
			out = append(out, Command{
				Kind:   KindCircle,
				Color:  it.Color().RGBA(),
				Center: chord.PointOnCircle(m.Center, m.Radius, it.CenterAngle()+rot),
				Radius: r.opts.NodeRadius,
			})
		}
		return out
	}

	if len(s.Items) == 1 {
		out = append(out, Command{
			Kind:   KindCircle,
			Color:  s.Items[0].Color().RGBA(),
			Center: m.Center,
			Radius: m.Radius,
		})
	} else {
		for _, it := range s.Items {
			out = append(out, Command{
				Kind:   KindWedge,
				Color:  it.Color().RGBA(),
				Center: m.Center,
				Radius: m.Radius,
				Start:  chord.NormalizeAngle(it.StartAngle() + rot),
				Sweep:  it.SweepAngle(),
			})
		}
	}
	return append(out, Command{
		Kind:   KindCircle,
		Color:  r.opts.Background,
		Center: m.Center,
		Radius: m.HoleRadius(),
	})
}

// drawLinks emits each link as Samples straight segments along the
// quadratic Bezier through the centre. Segment k runs from B(k/N) to
// B((k+1)/N) and takes the colour at t = k/N.
func (r *Renderer) drawLinks(out List, s Scene) List {
	m := s.Metrics
	rot := float64(s.Rotation)
	n := r.opts.Samples

	for _, l := range s.Links {
		p0 := chord.PointOnCircle(m.Center, m.Radius, l.EndpointAngle1()+rot)
		p1 := chord.PointOnCircle(m.Center, m.Radius, l.EndpointAngle2()+rot)
		c1, c2 := l.Item1().Color(), l.Item2().Color()

		prev := p0
		for k := 0; k < n; k++ {
			t := float64(k) / float64(n)
			next := chord.QuadBezier(p0, m.Center, p1, float64(k+1)/float64(n))
			out = append(out, Command{
				Kind:  KindSegment,
				Color: chord.Blend(c1, c2, t).RGBA(),
				From:  prev,
				To:    next,
				Width: r.opts.LinkWidth,
			})
			prev = next
		}
	}
	return out
}

func (r *Renderer) drawLabels(out List, s Scene) List {
	for _, a := range s.Labels {
		out = append(out, Command{
			Kind:   KindText,
			Color:  r.opts.LabelColor,
			Center: a.Anchor,
			Text:   a.Label,
		})
	}
	return out
}
