// Command chordedit is a terminal viewer and editor for chord diagrams.
// Drag the ring with the mouse to rotate it; release quickly to fling.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/thomaslorincz/ChordDiagram/pkg/chord"
	"github.com/thomaslorincz/ChordDiagram/pkg/chordfile"
	"github.com/thomaslorincz/ChordDiagram/pkg/chordview"
	"github.com/thomaslorincz/ChordDiagram/pkg/render"
	"github.com/thomaslorincz/ChordDiagram/pkg/rotation"
)

// frameInterval paces fling animation and message flashes.
const frameInterval = 33 * time.Millisecond

// Mode represents editor mode
type Mode int

const (
	ModeView  Mode = iota
	ModeInput      // prompt in the input box
	ModeHelp       // key reference overlay
)

// MessageType for status messages
type MessageType int

const (
	MsgInfo    MessageType = iota // Informative, no flash
	MsgError                      // Errors, flash
	MsgSuccess                    // State changes, flash
	MsgWarning                    // Warnings, flash
)

// flashes reports whether messages of this type flash when shown.
func (t MessageType) flashes() bool {
	switch t {
	case MsgError, MsgSuccess, MsgWarning:
		return true
	}
	return false
}

// Flash pattern: normal, inverted, normal, inverted, then steady.
const (
	flashPhase    = 125 // ms
	flashDuration = 4 * flashPhase
)

// flashInverted reports whether a flashing message is drawn inverted
// elapsed milliseconds after it was shown.
func flashInverted(elapsed int64) bool {
	if elapsed < 0 || elapsed >= flashDuration {
		return false
	}
	phase := elapsed / flashPhase
	return phase == 1 || phase == 3
}

// Editor holds all editor state
type Editor struct {
	screen   tcell.Screen
	view     *chordview.View
	filename string
	modified bool
	mode     Mode
	config   Config

	message     string
	messageType MessageType
	flashStart  atomic.Int64 // unix ms, 0 when no flash is running

	// Input prompt
	inputPrompt string
	inputBuffer string
	inputAction func(string)

	// Mouse gesture
	pressed bool
	canvas  canvas

	animating atomic.Bool // set while the view wants frequent redraws
	dirty     bool        // frame needs redrawing
}

func main() {
	ed := &Editor{config: LoadConfig()}
	ed.view = newView(ed, ed.config)

	switch {
	case len(os.Args) > 1:
		ed.filename = os.Args[1]
		if err := ed.loadFile(ed.filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", ed.filename, err)
			os.Exit(1)
		}
	case ed.config.LastFile != "":
		if err := ed.loadFile(ed.config.LastFile); err == nil {
			ed.filename = ed.config.LastFile
		} else {
			chordfile.Demo(ed.view)
		}
	default:
		chordfile.Demo(ed.view)
	}
	ed.modified = false

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.Clear()
	ed.screen = screen

	ed.run()

	screen.Fini()
}

// newView creates the diagram widget for the terminal: labels are measured
// in cells so the ring leaves them room.
func newView(surface chordview.Surface, cfg Config) *chordview.View {
	opts := chordview.DefaultOptions()
	opts.Style = cfg.itemStyle()
	opts.ShowLabels = cfg.ShowLabels
	opts.Render.Samples = cfg.Samples
	// Thin strokes read better at cell resolution.
	opts.Render.LinkWidth = 2
	opts.Render.NodeRadius = 8
	opts.Measurer = render.CellMeasurer{CellWidth: cellPxW, CellHeight: cellPxH}
	return chordview.New(surface, opts)
}

// Invalidate marks the frame for redrawing.
func (ed *Editor) Invalidate() { ed.dirty = true }

// SetRenderMode turns the frame ticker on while a gesture or fling runs.
func (ed *Editor) SetRenderMode(mode chord.RenderMode) {
	ed.animating.Store(mode == chord.PreferThroughput)
}

func (ed *Editor) run() {
	// Post refresh events while a fling runs or a message flashes.
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
			}
			if ed.animating.Load() || ed.flashing(time.Now().UnixMilli()) {
				ed.screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	ed.dirty = true
	for {
		if ed.dirty {
			ed.draw()
			ed.screen.Show()
		}

		ev := ed.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			ed.screen.Sync()
			ed.dirty = true
		case *tcell.EventKey:
			if ed.handleKey(ev) {
				return
			}
			ed.dirty = true
		case *tcell.EventMouse:
			ed.handleMouse(ev)
		case *tcell.EventInterrupt:
			if ed.view.Animating() {
				ed.view.Tick()
			}
			if ed.flashing(time.Now().UnixMilli()) {
				ed.dirty = true
			}
		case nil:
			return
		}
	}
}

// flashing reports whether a message flash is still running at now
// (unix ms), with a short tail so the last phase is redrawn steady.
func (ed *Editor) flashing(now int64) bool {
	start := ed.flashStart.Load()
	if start <= 0 {
		return false
	}
	elapsed := now - start
	return elapsed >= 0 && elapsed < flashDuration+200
}

func (ed *Editor) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() == tcell.KeyCtrlS {
		ed.save()
		return false
	}

	switch ed.mode {
	case ModeInput:
		return ed.handleInputKey(ev)
	case ModeHelp:
		ed.mode = ModeView
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		if ed.view.Animating() {
			ed.view.Cancel()
			ed.showMessage("Stopped", MsgInfo)
		}
	case tcell.KeyLeft:
		ed.view.SetRotation(ed.view.Rotation() - 5)
	case tcell.KeyRight:
		ed.view.SetRotation(ed.view.Rotation() + 5)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'a':
			ed.promptAddItem()
		case 'd':
			ed.prompt("Delete item: ", ed.deleteItem)
		case 'l':
			ed.prompt("Link (a b): ", ed.addLink)
		case 'u':
			ed.prompt("Unlink (a b): ", ed.deleteLink)
		case 's':
			ed.toggleStyle()
		case 't':
			ed.toggleLabels()
		case 'r':
			ed.view.SetRotation(0)
		case 'w':
			ed.prompt("Save as: ", ed.saveAs)
		case 'n':
			ed.newDiagram()
		case '?', 'h':
			ed.mode = ModeHelp
		}
	}
	return false
}

func (ed *Editor) handleInputKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ed.mode = ModeView
		ed.inputBuffer = ""
	case tcell.KeyEnter:
		action := ed.inputAction
		input := strings.TrimSpace(ed.inputBuffer)
		ed.inputBuffer = ""
		ed.mode = ModeView
		if action != nil {
			action(input)
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if r := []rune(ed.inputBuffer); len(r) > 0 {
			ed.inputBuffer = string(r[:len(r)-1])
		}
	case tcell.KeyRune:
		ed.inputBuffer += string(ev.Rune())
	}
	return false
}

// handleMouse turns button-1 press, motion and release into pointer events
// for the view.
func (ed *Editor) handleMouse(ev *tcell.EventMouse) {
	if ed.mode != ModeView {
		return
	}
	sx, sy := ev.Position()
	x, y := ed.canvas.toDiagram(sx, sy)
	pe := rotation.PointerEvent{X: x, Y: y, Time: ev.When()}

	down := ev.Buttons()&tcell.Button1 != 0
	switch {
	case down && !ed.pressed:
		ed.pressed = true
		ed.view.OnPointerDown(pe)
	case down:
		ed.view.OnPointerMove(pe)
	case ed.pressed:
		ed.pressed = false
		ed.view.OnPointerUp(pe)
	}
}

func (ed *Editor) prompt(label string, action func(string)) {
	ed.mode = ModeInput
	ed.inputPrompt = label
	ed.inputBuffer = ""
	ed.inputAction = action
}

func (ed *Editor) promptAddItem() {
	ed.prompt("New item: ", func(label string) {
		if label == "" {
			return
		}
		if ed.view.Diagram().Item(label) != nil {
			ed.showMessage(fmt.Sprintf("Item %s already exists", label), MsgWarning)
			return
		}
		ed.prompt(fmt.Sprintf("Colour for %s (#rrggbb): ", label), func(hex string) {
			c, err := chord.ParseRGB(hex)
			if err != nil {
				ed.showMessage(err.Error(), MsgError)
				return
			}
			ed.view.AddItem(label, c)
			ed.modified = true
			ed.showMessage(fmt.Sprintf("Added %s", label), MsgSuccess)
		})
	})
}

func (ed *Editor) deleteItem(label string) {
	if ed.view.Diagram().Item(label) == nil {
		ed.showMessage(fmt.Sprintf("No item %s", label), MsgWarning)
		return
	}
	ed.view.DeleteItem(label)
	ed.modified = true
	ed.showMessage(fmt.Sprintf("Deleted %s", label), MsgSuccess)
}

// linkArgs splits "a b" or "a,b" into two labels.
func linkArgs(input string) (string, string, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) != 2 {
		return "", "", errors.New("expected two item labels")
	}
	return fields[0], fields[1], nil
}

func (ed *Editor) addLink(input string) {
	a, b, err := linkArgs(input)
	if err != nil {
		ed.showMessage(err.Error(), MsgError)
		return
	}
	d := ed.view.Diagram()
	switch {
	case d.Item(a) == nil || d.Item(b) == nil:
		ed.showMessage("Both items must exist", MsgWarning)
		return
	case a == b:
		ed.showMessage("An item cannot link to itself", MsgWarning)
		return
	case d.Link(a, b) != nil:
		ed.showMessage(fmt.Sprintf("%s and %s are already linked", a, b), MsgInfo)
		return
	}
	ed.view.AddLink(a, b)
	ed.modified = true
	ed.showMessage(fmt.Sprintf("Linked %s-%s", a, b), MsgSuccess)
}

func (ed *Editor) deleteLink(input string) {
	a, b, err := linkArgs(input)
	if err != nil {
		ed.showMessage(err.Error(), MsgError)
		return
	}
	if ed.view.Diagram().Link(a, b) == nil {
		ed.showMessage(fmt.Sprintf("No link %s-%s", a, b), MsgWarning)
		return
	}
	ed.view.DeleteLink(a, b)
	ed.modified = true
	ed.showMessage(fmt.Sprintf("Unlinked %s-%s", a, b), MsgSuccess)
}

func (ed *Editor) toggleStyle() {
	style := chord.StyleNode
	if ed.view.ItemStyle() == chord.StyleNode {
		style = chord.StyleArc
	}
	ed.view.SetItemStyle(style)
	ed.config.Style = style.String()
	ed.saveConfig()
	ed.showMessage("Style: "+style.String(), MsgInfo)
}

func (ed *Editor) toggleLabels() {
	show := !ed.view.ShowLabels()
	ed.view.SetShowLabels(show)
	ed.config.ShowLabels = show
	ed.saveConfig()
	if show {
		ed.showMessage("Labels on", MsgInfo)
	} else {
		ed.showMessage("Labels off", MsgInfo)
	}
}

func (ed *Editor) newDiagram() {
	ed.view = newView(ed, ed.config)
	ed.filename = ""
	ed.modified = false
	ed.pressed = false
	ed.animating.Store(false)
	ed.showMessage("New diagram", MsgInfo)
}

func (ed *Editor) save() {
	if ed.filename == "" {
		ed.prompt("Save as: ", ed.saveAs)
		return
	}
	ed.saveAs(ed.filename)
}

func (ed *Editor) saveAs(path string) {
	if path == "" {
		return
	}
	if err := ed.saveFile(path); err != nil {
		ed.showMessage(fmt.Sprintf("Save failed: %v", err), MsgError)
		return
	}
	ed.filename = path
	ed.modified = false
	ed.config.LastFile = path
	ed.saveConfig()
	ed.showMessage("Saved "+path, MsgSuccess)
}

func (ed *Editor) saveConfig() {
	if err := SaveConfig(ed.config); err != nil {
		ed.showMessage(fmt.Sprintf("Config not saved: %v", err), MsgWarning)
	}
}

func (ed *Editor) showMessage(msg string, msgType MessageType) {
	ed.message = msg
	ed.messageType = msgType
	ed.flashStart.Store(time.Now().UnixMilli())
	if ed.screen != nil {
		ed.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

// File operations

func (ed *Editor) loadFile(path string) error {
	doc, err := chordfile.Load(path)
	if err != nil {
		return err
	}
	view := newView(ed, ed.config)
	if err := chordfile.Apply(doc, view); err != nil {
		return err
	}
	ed.view = view
	if issues := chordfile.Issues(doc); len(issues) > 0 {
		ed.showMessage(fmt.Sprintf("%d issue(s) ignored: %v", len(issues), issues[0]), MsgWarning)
	}
	return nil
}

func (ed *Editor) saveFile(path string) error {
	return chordfile.Save(path, chordfile.Capture(ed.view))
}
