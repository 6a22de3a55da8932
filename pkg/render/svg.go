package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/thomaslorincz/ChordDiagram/pkg/chord"
)

// WriteSVG writes a draw list as a size×size SVG document on the
// background colour of opts.
func WriteSVG(w io.Writer, l List, size int, opts Options) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:"+cssColor(opts.Background))

	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = DefaultOptions().FontSize
	}

	for _, c := range l {
		switch c.Kind {
		case KindCircle:
			canvas.Circle(round(c.Center.X), round(c.Center.Y), round(c.Radius), "fill:"+cssColor(c.Color))
		case KindWedge:
			canvas.Path(wedgePath(c), "fill:"+cssColor(c.Color))
		case KindSegment:
			d := fmt.Sprintf("M%.2f,%.2f L%.2f,%.2f", c.From.X, c.From.Y, c.To.X, c.To.Y)
			canvas.Path(d, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.1f;stroke-linecap:round",
				cssColor(c.Color), c.Width))
		case KindText:
			canvas.Text(round(c.Center.X), round(c.Center.Y), c.Text,
				fmt.Sprintf("fill:%s;font-size:%.0fpx;font-family:sans-serif;text-anchor:middle;dominant-baseline:middle",
					cssColor(c.Color), fontSize))
		}
	}

	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

// wedgePath is a closed pie slice: centre, out to the start angle, arc
// clockwise over the sweep, back to the centre.
func wedgePath(c Command) string {
	p0 := chord.PointOnCircle(c.Center, c.Radius, c.Start)
	p1 := chord.PointOnCircle(c.Center, c.Radius, c.Start+c.Sweep)
	large := 0
	if c.Sweep > 180 {
		large = 1
	}
	return fmt.Sprintf("M%.2f,%.2f L%.2f,%.2f A%.2f,%.2f 0 %d 1 %.2f,%.2f Z",
		c.Center.X, c.Center.Y, p0.X, p0.Y, c.Radius, c.Radius, large, p1.X, p1.Y)
}

func cssColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func round(v float64) int {
	return int(math.Round(v))
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
