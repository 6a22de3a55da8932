package main

import (
	"image"
	"image/color"

	"github.com/mattn/go-runewidth"

	"github.com/thomaslorincz/ChordDiagram/pkg/chord"
	"github.com/thomaslorincz/ChordDiagram/pkg/render"
)

// Each terminal cell stands for a block of virtual pixels. Cells are about
// twice as tall as wide, so the diagram stays round.
const (
	cellPxW = 4
	cellPxH = 8
)

// canvas maps a region of terminal cells onto the diagram's pixel space.
type canvas struct {
	x, y       int // top-left cell
	cols, rows int
	diameter   int // diagram size in virtual pixels
	offX, offY int // diagram origin inside the region, in virtual pixels
}

func newCanvas(x, y, cols, rows int) canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c := canvas{x: x, y: y, cols: cols, rows: rows}
	c.diameter = min(cols*cellPxW, rows*cellPxH)
	c.offX = (cols*cellPxW - c.diameter) / 2
	c.offY = (rows*cellPxH - c.diameter) / 2
	return c
}

// toDiagram converts a screen cell to diagram pixel coordinates, taking
// the middle of the cell.
func (c canvas) toDiagram(sx, sy int) (float64, float64) {
	px := (sx-c.x)*cellPxW + cellPxW/2 - c.offX
	py := (sy-c.y)*cellPxH + cellPxH/2 - c.offY
	return float64(px), float64(py)
}

// toCell converts a diagram point to the screen cell containing it.
func (c canvas) toCell(p chord.Point) (int, int) {
	px := int(p.X) + c.offX
	py := int(p.Y) + c.offY
	return c.x + floorDiv(px, cellPxW), c.y + floorDiv(py, cellPxH)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// cellColors is the upper and lower half of one cell.
type cellColors struct {
	top, bottom color.RGBA
}

// rasterize draws l at diagram resolution and samples two points per
// cell, one for each half of a '▀' block. Text is left to the terminal.
func (c canvas) rasterize(l render.List, bg color.RGBA) [][]cellColors {
	grid := make([][]cellColors, c.rows)
	var img *image.RGBA
	if c.diameter > 0 {
		img = image.NewRGBA(image.Rect(0, 0, c.diameter, c.diameter))
		render.Fill(img, bg)
		render.Rasterize(img, l, 1, nil)
	}

	sample := func(px, py int) color.RGBA {
		px -= c.offX
		py -= c.offY
		if img == nil || !image.Pt(px, py).In(img.Rect) {
			return bg
		}
		return img.RGBAAt(px, py)
	}

	for row := 0; row < c.rows; row++ {
		grid[row] = make([]cellColors, c.cols)
		for col := 0; col < c.cols; col++ {
			x := col*cellPxW + cellPxW/2
			y := row * cellPxH
			grid[row][col] = cellColors{
				top:    sample(x, y+cellPxH/4),
				bottom: sample(x, y+3*cellPxH/4),
			}
		}
	}
	return grid
}

// labelCell returns where a label centred on p starts, in screen cells.
func (c canvas) labelCell(p chord.Point, text string) (int, int) {
	cx, cy := c.toCell(p)
	return cx - runewidth.StringWidth(text)/2, cy
}
