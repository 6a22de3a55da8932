// Native PNG rendering of draw lists.
// Renders at a multiple of the target size and scales down for smooth
// edges, since the primitives below are not anti-aliased.

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/thomaslorincz/ChordDiagram/pkg/chord"
)

// Supersample is the oversampling factor of WritePNG.
const Supersample = 4

// WritePNG rasterises a draw list into a size×size PNG.
func WritePNG(w io.Writer, l List, size int, opts Options) error {
	if size <= 0 {
		return fmt.Errorf("invalid image size %d", size)
	}
	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = DefaultOptions().FontSize
	}
	face, err := newFace(fontSize * Supersample)
	if err != nil {
		return err
	}
	defer face.Close()

	large := image.NewRGBA(image.Rect(0, 0, size*Supersample, size*Supersample))
	Fill(large, opts.Background)
	Rasterize(large, l, Supersample, face)

	final := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(final, final.Bounds(), large, large.Bounds(), draw.Over, nil)

	if err := png.Encode(w, final); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Fill paints the whole image with c.
func Fill(img *image.RGBA, c color.RGBA) {
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Rasterize paints l onto img with every coordinate multiplied by scale.
// Text commands are skipped when face is nil.
func Rasterize(img *image.RGBA, l List, scale float64, face font.Face) {
	if scale <= 0 {
		scale = 1
	}
	ctx := &rasterContext{img: img, face: face}
	for _, c := range l {
		switch c.Kind {
		case KindCircle:
			ctx.fillCircle(c.Center.X*scale, c.Center.Y*scale, c.Radius*scale, c.Color)
		case KindWedge:
			ctx.fillWedge(c.Center.X*scale, c.Center.Y*scale, c.Radius*scale, c.Start, c.Sweep, c.Color)
		case KindSegment:
			ctx.drawLine(c.From.X*scale, c.From.Y*scale, c.To.X*scale, c.To.Y*scale, c.Width*scale, c.Color)
		case KindText:
			if face != nil {
				ctx.drawTextCentered(int(c.Center.X*scale), int(c.Center.Y*scale), c.Text, c.Color)
			}
		}
	}
}

type rasterContext struct {
	img  *image.RGBA
	face font.Face
}

func (ctx *rasterContext) set(x, y int, c color.RGBA) {
	if !image.Pt(x, y).In(ctx.img.Rect) {
		return
	}
	ctx.img.SetRGBA(x, y, c)
}

func (ctx *rasterContext) fillCircle(cx, cy, r float64, c color.RGBA) {
	if r <= 0 {
		return
	}
	for y := int(math.Floor(cy - r)); y <= int(math.Ceil(cy+r)); y++ {
		dy := float64(y) + 0.5 - cy
		if dy*dy > r*r {
			continue
		}
		ext := math.Sqrt(r*r - dy*dy)
		for x := int(math.Round(cx - ext)); x < int(math.Round(cx+ext)); x++ {
			ctx.set(x, y, c)
		}
	}
}

// fillWedge fills the pixels whose centres lie inside the slice.
func (ctx *rasterContext) fillWedge(cx, cy, r, start, sweep float64, c color.RGBA) {
	if r <= 0 || sweep <= 0 {
		return
	}
	for y := int(math.Floor(cy - r)); y <= int(math.Ceil(cy+r)); y++ {
		dy := float64(y) + 0.5 - cy
		for x := int(math.Floor(cx - r)); x <= int(math.Ceil(cx+r)); x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy > r*r {
				continue
			}
			theta := math.Atan2(dy, dx) * 180 / math.Pi
			if chord.AngleInSlice(theta, start, sweep) {
				ctx.set(x, y, c)
			}
		}
	}
}

// drawLine draws a stroke of the given width with round joins.
func (ctx *rasterContext) drawLine(x1, y1, x2, y2, width float64, c color.RGBA) {
	half := math.Max(width/2, 0.5)

	dx := x2 - x1
	dy := y2 - y1
	dist := math.Sqrt(dx*dx + dy*dy)
	ctx.fillCircle(x1, y1, half, c)
	if dist < 1 {
		return
	}

	perpX := -dy / dist
	perpY := dx / dist
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	for i := 0.0; i <= steps; i++ {
		t := i / steps
		px := x1 + dx*t
		py := y1 + dy*t
		for offset := -half; offset <= half; offset += 0.5 {
			ctx.set(int(px+perpX*offset), int(py+perpY*offset), c)
		}
	}
	ctx.fillCircle(x2, y2, half, c)
}

// drawTextCentered draws text centred on (x, y).
func (ctx *rasterContext) drawTextCentered(x, y int, text string, c color.RGBA) {
	width := font.MeasureString(ctx.face, text).Ceil()
	m := ctx.face.Metrics()
	// Centre the cap height on y: caps are roughly 0.7 of the ascent.
	baseline := y + int(float64(m.Ascent.Ceil())*0.35)

	d := &font.Drawer{
		Dst:  ctx.img,
		Src:  image.NewUniform(c),
		Face: ctx.face,
		Dot:  fixed.Point26_6{X: fixed.I(x - width/2), Y: fixed.I(baseline)},
	}
	d.DrawString(text)
}
