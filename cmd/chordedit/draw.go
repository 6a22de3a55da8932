package main

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/thomaslorincz/ChordDiagram/pkg/rotation"
)

const sidebarWidth = 28

// Styles
var (
	styleDefault    = tcell.StyleDefault
	styleSidebar    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleSidebarH   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleMsgInfo    = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleMsgError   = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorNavy).Bold(true)
	styleMsgSuccess = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleMsgWarning = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorNavy)
	styleHelp       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleInput      = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleBorder     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func (ed *Editor) draw() {
	ed.screen.Clear()
	w, h := ed.screen.Size()

	ed.drawDiagram(w, h)
	ed.drawSidebar(w, h)

	switch ed.mode {
	case ModeInput:
		ed.drawInputBox(w, h)
	case ModeHelp:
		ed.drawHelpOverlay(w, h)
	}

	ed.drawStatusBar(w, h)
	ed.dirty = false
}

// layout sizes the canvas to the space left of the sidebar and above the
// help and status lines, resizing the view when the diameter changes.
func (ed *Editor) layout(w, h int) {
	cols := w - sidebarWidth
	if cols < 0 {
		cols = w
	}
	c := newCanvas(0, 0, cols, h-2)
	if ed.view.Metrics().Diameter != float64(c.diameter) {
		ed.view.OnResize(float64(c.diameter))
	}
	ed.canvas = c
}

func (ed *Editor) drawDiagram(w, h int) {
	ed.layout(w, h)
	bg := ed.view.RenderOptions().Background
	grid := ed.canvas.rasterize(ed.view.RenderFrame(), bg)

	for row, cells := range grid {
		for col, cell := range cells {
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(cell.top.R), int32(cell.top.G), int32(cell.top.B))).
				Background(tcell.NewRGBColor(int32(cell.bottom.R), int32(cell.bottom.G), int32(cell.bottom.B)))
			ed.screen.SetContent(ed.canvas.x+col, ed.canvas.y+row, '▀', nil, style)
		}
	}

	if ed.view.ShowLabels() {
		ed.drawLabels(bg)
	}
}

func (ed *Editor) drawLabels(bg color.RGBA) {
	label := ed.view.RenderOptions().LabelColor
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(label.R), int32(label.G), int32(label.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	right := ed.canvas.x + ed.canvas.cols
	for _, a := range ed.view.Labels() {
		x, y := ed.canvas.labelCell(a.Anchor, a.Label)
		if y < ed.canvas.y || y >= ed.canvas.y+ed.canvas.rows {
			continue
		}
		for _, r := range a.Label {
			if x >= ed.canvas.x && x < right {
				ed.screen.SetContent(x, y, r, nil, style)
			}
			x += runewidth.RuneWidth(r)
		}
	}
}

func (ed *Editor) drawSidebar(w, h int) {
	if w <= sidebarWidth {
		return
	}
	x := w - sidebarWidth + 2
	y := 0
	d := ed.view.Diagram()

	ed.drawString(x, y, fmt.Sprintf("Rotation: %d°", ed.view.Rotation()), styleSidebarH)
	y += 2

	ed.drawString(x, y, "Items:", styleSidebarH)
	y++
	for _, it := range d.Items() {
		if y >= h-3 {
			ed.drawString(x, y, "  ...", styleSidebar)
			return
		}
		c := it.Color()
		swatch := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		ed.screen.SetContent(x, y, '■', nil, swatch)
		line := fmt.Sprintf(" %s (%d)", it.Label(), it.Connections())
		ed.drawString(x+1, y, truncate(line, sidebarWidth-5), styleSidebar)
		y++
	}
	y++

	ed.drawString(x, y, "Links:", styleSidebarH)
	y++
	for _, l := range d.Links() {
		if y >= h-3 {
			ed.drawString(x, y, "  ...", styleSidebar)
			return
		}
		line := fmt.Sprintf("  %s -- %s", l.Item1().Label(), l.Item2().Label())
		ed.drawString(x, y, truncate(line, sidebarWidth-4), styleSidebar)
		y++
	}
}

func (ed *Editor) drawStatusBar(w, h int) {
	y := h - 1

	for x := 0; x < w; x++ {
		ed.screen.SetContent(x, y, ' ', nil, styleStatus)
	}

	fileInfo := "[New]"
	if ed.filename != "" {
		if len(ed.filename) > 30 {
			fileInfo = filepath.Base(ed.filename)
		} else {
			fileInfo = ed.filename
		}
	}
	if ed.modified {
		fileInfo += " *"
	}
	ed.drawString(1, y, fileInfo, styleStatus)

	modeStr := ed.modeString()
	ed.drawString(w/2-len(modeStr)/2, y, modeStr, styleStatus)

	if ed.message != "" {
		style := ed.messageStyle(time.Now().UnixMilli())
		ed.drawString(w-runewidth.StringWidth(ed.message)-2, y, ed.message, style)
	}

	y = h - 2
	for x := 0; x < w; x++ {
		ed.screen.SetContent(x, y, ' ', nil, styleDefault)
	}
	ed.drawString(1, y, ed.helpString(), styleHelp)
}

// messageStyle returns the status message style at time now (unix ms).
func (ed *Editor) messageStyle(now int64) tcell.Style {
	style := styleMsgInfo
	switch ed.messageType {
	case MsgError:
		style = styleMsgError
	case MsgSuccess:
		style = styleMsgSuccess
	case MsgWarning:
		style = styleMsgWarning
	}
	if start := ed.flashStart.Load(); ed.messageType.flashes() && start > 0 && flashInverted(now-start) {
		style = style.Reverse(true)
	}
	return style
}

func (ed *Editor) drawInputBox(w, h int) {
	boxW := 50
	boxH := 3
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	ed.drawBox(boxX, boxY, boxW, boxH, styleInput)

	ed.drawString(boxX+2, boxY+1, ed.inputPrompt, styleInput)
	ed.drawString(boxX+2+runewidth.StringWidth(ed.inputPrompt), boxY+1, ed.inputBuffer+"_", styleInput)
}

var helpLines = []string{
	"Drag ring    rotate, release fast to fling",
	"←/→          rotate by 5°",
	"Esc          stop a fling",
	"r            reset rotation",
	"a            add item",
	"d            delete item",
	"l / u        link / unlink two items",
	"s            toggle arc/node style",
	"t            toggle labels",
	"n            new diagram",
	"w            save as",
	"Ctrl+S       save",
	"q / Ctrl+C   quit",
}

func (ed *Editor) drawHelpOverlay(w, h int) {
	boxW := 48
	boxH := len(helpLines) + 4
	x := max(0, (w-boxW)/2)
	y := max(0, (h-boxH)/2)
	ed.drawBox(x, y, boxW, boxH, styleDefault)
	title := " Keys "
	ed.drawString(x+(boxW-len(title))/2, y, title, styleSidebarH)
	for i, line := range helpLines {
		ed.drawString(x+2, y+2+i, line, styleSidebar)
	}
}

func (ed *Editor) drawBox(x, y, w, h int, style tcell.Style) {
	ed.screen.SetContent(x, y, '┌', nil, styleBorder)
	ed.screen.SetContent(x+w-1, y, '┐', nil, styleBorder)
	ed.screen.SetContent(x, y+h-1, '└', nil, styleBorder)
	ed.screen.SetContent(x+w-1, y+h-1, '┘', nil, styleBorder)

	for i := x + 1; i < x+w-1; i++ {
		ed.screen.SetContent(i, y, '─', nil, styleBorder)
		ed.screen.SetContent(i, y+h-1, '─', nil, styleBorder)
	}

	for i := y + 1; i < y+h-1; i++ {
		ed.screen.SetContent(x, i, '│', nil, styleBorder)
		ed.screen.SetContent(x+w-1, i, '│', nil, styleBorder)
	}

	for row := y + 1; row < y+h-1; row++ {
		for col := x + 1; col < x+w-1; col++ {
			ed.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (ed *Editor) drawString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		ed.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func (ed *Editor) modeString() string {
	switch ed.mode {
	case ModeInput:
		return "INPUT"
	case ModeHelp:
		return "HELP"
	}
	if state := ed.view.State(); state != rotation.Idle {
		return strings.ToUpper(state.String())
	}
	return ""
}

func (ed *Editor) helpString() string {
	switch ed.mode {
	case ModeInput:
		return "Type text  Enter:Confirm  Esc:Cancel"
	case ModeHelp:
		return "Any key:Close"
	default:
		return "Drag:Rotate  A:Add  D:Delete  L:Link  U:Unlink  S:Style  T:Labels  ?:Help  Ctrl+S:Save  Q:Quit"
	}
}

func truncate(s string, maxLen int) string {
	return runewidth.Truncate(s, maxLen, "...")
}
