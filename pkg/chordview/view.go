// Package chordview binds the chord model, the rotation controller and the
// renderer to a host drawing surface. It is the API a host application
// talks to: mutate the diagram, forward pointer events and animation ticks,
// and ask for the frame to draw.
package chordview

import (
	"log/slog"

	"github.com/thomaslorincz/ChordDiagram/pkg/chord"
	"github.com/thomaslorincz/ChordDiagram/pkg/render"
	"github.com/thomaslorincz/ChordDiagram/pkg/rotation"
)

// Surface is the host the view draws on.
type Surface interface {
	// Invalidate asks the host to call RenderFrame again.
	Invalidate()
	// SetRenderMode passes on the controller's redraw-frequency hint.
	SetRenderMode(mode chord.RenderMode)
}

// Options configures a View.
type Options struct {
	Style      chord.ItemStyle
	ShowLabels bool
	Render     render.Options
	Detector   rotation.DetectorOptions
	Clock      rotation.Clock  // nil means time.Now
	Density    float64         // pixel density relative to 160 dpi
	Measurer   render.Measurer // label sizes; nil lays out as if labels were empty
}

// DefaultOptions returns arc style with labels shown.
func DefaultOptions() Options {
	return Options{
		Style:      chord.StyleArc,
		ShowLabels: true,
		Render:     render.DefaultOptions(),
		Detector:   rotation.DefaultDetectorOptions(),
		Density:    1,
	}
}

// View is a chord diagram widget. It is not safe for concurrent use: the
// host calls it from a single event loop.
type View struct {
	surface    Surface
	diagram    *chord.Diagram
	controller *rotation.Controller
	detector   *rotation.Detector
	renderer   *render.Renderer
	measurer   render.Measurer

	showLabels bool
	diameter   float64
	metrics    render.Metrics
	labels     []chord.LabelAnchor
}

// New creates an empty view drawing on surface. surface may be nil.
func New(surface Surface, opts Options) *View {
	v := &View{
		surface:    surface,
		diagram:    chord.New(opts.Style),
		detector:   rotation.NewDetector(opts.Detector),
		renderer:   render.NewRenderer(opts.Render),
		measurer:   opts.Measurer,
		showLabels: opts.ShowLabels,
	}
	v.controller = rotation.NewController(
		rotation.NewScroller(opts.Clock, opts.Density),
		listener{v},
	)
	v.refresh()
	return v
}

// listener keeps the controller callbacks off the View's public API.
type listener struct{ v *View }

func (l listener) RotationChanged(int) {
	l.v.placeLabels()
	l.v.invalidate()
}

func (l listener) RenderModeChanged(mode chord.RenderMode) {
	chord.Logger().Debug("chordview: render mode", slog.String("mode", mode.String()))
	if l.v.surface != nil {
		l.v.surface.SetRenderMode(mode)
	}
}

// Diagram returns the underlying model. Mutate it through the View so the
// surface is invalidated.
func (v *View) Diagram() *chord.Diagram { return v.diagram }

// AddItem adds an item; duplicates are ignored.
func (v *View) AddItem(label string, color chord.RGB) {
	v.diagram.AddItem(label, color)
	v.refresh()
}

// DeleteItem removes an item and its links.
func (v *View) DeleteItem(label string) {
	v.diagram.DeleteItem(label)
	v.refresh()
}

// AddLink links two existing, distinct items.
func (v *View) AddLink(a, b string) {
	v.diagram.AddLink(a, b)
	v.refresh()
}

// DeleteLink removes the link between a and b, if any.
func (v *View) DeleteLink(a, b string) {
	v.diagram.DeleteLink(a, b)
	v.refresh()
}

// SetItemStyle switches between arc and node rendering.
func (v *View) SetItemStyle(style chord.ItemStyle) {
	v.diagram.SetStyle(style)
	v.refresh()
}

// ItemStyle returns the current item style.
func (v *View) ItemStyle() chord.ItemStyle { return v.diagram.Style() }

// SetShowLabels shows or hides item labels. Hidden labels give the ring
// their room back.
func (v *View) SetShowLabels(show bool) {
	if v.showLabels == show {
		return
	}
	v.showLabels = show
	v.refresh()
}

// ShowLabels reports whether labels are drawn.
func (v *View) ShowLabels() bool { return v.showLabels }

// OnResize sets the diagram diameter in surface pixels.
func (v *View) OnResize(diameter float64) {
	if diameter < 0 {
		diameter = 0
	}
	v.diameter = diameter
	v.refresh()
}

// Metrics returns the current ring geometry.
func (v *View) Metrics() render.Metrics { return v.metrics }

// Labels returns the current label placement, nil when labels are hidden.
func (v *View) Labels() []chord.LabelAnchor { return v.labels }

// Rotation returns the diagram rotation in degrees, in [0, 360).
func (v *View) Rotation() int { return v.controller.Rotation() }

// SetRotation rotates the diagram. Any integer is accepted.
func (v *View) SetRotation(rotation int) { v.controller.SetRotation(rotation) }

// State returns the interaction state.
func (v *View) State() rotation.State { return v.controller.State() }

// OnPointerDown starts a gesture, stopping any fling in progress.
func (v *View) OnPointerDown(ev rotation.PointerEvent) {
	v.detector.Down(ev)
	v.controller.Begin()
}

// OnPointerMove rotates the diagram with the pointer once it has left the
// touch slop.
func (v *View) OnPointerMove(ev rotation.PointerEvent) {
	distX, distY, ok := v.detector.Move(ev)
	if !ok {
		return
	}
	x, y := v.relative(ev)
	v.controller.Drag(distX, distY, x, y)
}

// OnPointerUp ends the gesture, flinging if the pointer was released fast
// enough. After a fling the host should call Tick every frame while
// Animating reports true.
func (v *View) OnPointerUp(ev rotation.PointerEvent) {
	if !v.detector.Active() {
		return
	}
	vx, vy, fling := v.detector.Up(ev)
	if !fling {
		v.controller.Release()
		return
	}
	x, y := v.relative(ev)
	v.controller.Fling(vx, vy, x, y)
	v.invalidate()
}

// Cancel stops a fling in progress.
func (v *View) Cancel() { v.controller.Cancel() }

// Tick advances a fling by one frame and reports whether more frames are
// wanted.
func (v *View) Tick() bool { return v.controller.Tick() }

// Animating reports whether the host should keep ticking.
func (v *View) Animating() bool { return v.controller.Animating() }

// Scene snapshots the state the next frame is drawn from.
func (v *View) Scene() render.Scene {
	return render.Scene{
		Items:      v.diagram.Items(),
		Links:      v.diagram.Links(),
		Rotation:   v.controller.Rotation(),
		Style:      v.diagram.Style(),
		ShowLabels: v.showLabels,
		Metrics:    v.metrics,
		Labels:     v.labels,
	}
}

// RenderFrame returns the draw commands for the current state.
func (v *View) RenderFrame() render.List {
	return v.renderer.Render(v.Scene())
}

// RenderOptions returns the effective renderer options.
func (v *View) RenderOptions() render.Options { return v.renderer.Options() }

func (v *View) relative(ev rotation.PointerEvent) (float64, float64) {
	return ev.X - v.metrics.Center.X, ev.Y - v.metrics.Center.Y
}

// refresh recomputes everything that depends on the item set or the
// surface size, then redraws.
func (v *View) refresh() {
	extent := 0.0
	if v.showLabels {
		extent = render.LabelExtent(v.measurer, v.diagram.Items())
	}
	v.metrics = render.NewMetrics(v.diameter, extent)
	v.placeLabels()
	v.invalidate()
}

func (v *View) placeLabels() {
	if !v.showLabels {
		v.labels = nil
		return
	}
	v.labels = v.diagram.LabelAnchors(v.controller.Rotation(), v.metrics.Center, v.metrics.TextRadius)
}

func (v *View) invalidate() {
	if v.surface != nil {
		v.surface.Invalidate()
	}
}
