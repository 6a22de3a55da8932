package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/thomaslorincz/ChordDiagram/pkg/chord"
)

// Measurer reports the drawn size of a label.
type Measurer interface {
	Measure(text string) (width, height float64)
}

// LabelExtent returns the largest width or height over all item labels,
// the room the ring leaves for text.
func LabelExtent(m Measurer, items []*chord.Item) float64 {
	if m == nil {
		return 0
	}
	extent := 0.0
	for _, it := range items {
		w, h := m.Measure(it.Label())
		extent = max(extent, w, h)
	}
	return extent
}

// FontMeasurer measures text set in Go Regular.
type FontMeasurer struct {
	face font.Face
}

// NewFontMeasurer loads Go Regular at the given size in points (72 dpi, so
// one point is one pixel).
func NewFontMeasurer(size float64) (*FontMeasurer, error) {
	face, err := newFace(size)
	if err != nil {
		return nil, err
	}
	return &FontMeasurer{face: face}, nil
}

// Measure returns the advance width and the line height of text.
func (f *FontMeasurer) Measure(text string) (float64, float64) {
	if text == "" {
		return 0, 0
	}
	w := font.MeasureString(f.face, text)
	h := f.face.Metrics().Height
	return float64(w.Ceil()), float64(h.Ceil())
}

// Close releases the font face.
func (f *FontMeasurer) Close() error { return f.face.Close() }

func newFace(size float64) (font.Face, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

// CellMeasurer measures text on a character grid, where each column is
// CellWidth pixels wide and a line is CellHeight pixels tall.
type CellMeasurer struct {
	CellWidth  float64
	CellHeight float64
}

// Measure returns the display width of text in pixels, counting wide runes
// as two columns.
func (c CellMeasurer) Measure(text string) (float64, float64) {
	if text == "" {
		return 0, 0
	}
	cols := runewidth.StringWidth(text)
	return float64(cols) * c.CellWidth, c.CellHeight
}
