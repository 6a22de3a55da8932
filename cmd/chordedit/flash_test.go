package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestFlashPhaseCalculation(t *testing.T) {
	// normal(0-125) -> inverted(125-250) -> normal(250-375) -> inverted(375-500) -> normal(500+)
	tests := []struct {
		elapsed      int64
		wantInverted bool
		description  string
	}{
		{-10, false, "clock went backwards"},
		{0, false, "start of flash - normal"},
		{124, false, "end of phase 0 - normal"},
		{125, true, "start of phase 1 - inverted"},
		{249, true, "end of phase 1 - inverted"},
		{250, false, "start of phase 2 - normal"},
		{374, false, "end of phase 2 - normal"},
		{375, true, "start of phase 3 - inverted"},
		{499, true, "end of phase 3 - inverted"},
		{500, false, "after flash period - normal"},
		{1000, false, "long after flash - normal"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			if got := flashInverted(tt.elapsed); got != tt.wantInverted {
				t.Errorf("elapsed=%d: got inverted=%v, want %v", tt.elapsed, got, tt.wantInverted)
			}
		})
	}
}

func TestFlashMessageTypes(t *testing.T) {
	tests := []struct {
		msgType     MessageType
		shouldFlash bool
		description string
	}{
		{MsgInfo, false, "info messages don't flash"},
		{MsgError, true, "error messages flash"},
		{MsgSuccess, true, "success messages flash"},
		{MsgWarning, true, "warning messages flash"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			if got := tt.msgType.flashes(); got != tt.shouldFlash {
				t.Errorf("msgType=%v: got %v, want %v", tt.msgType, got, tt.shouldFlash)
			}
		})
	}
}

func TestMessageStyleFlashes(t *testing.T) {
	ed := &Editor{}
	ed.message = "Saved"
	ed.messageType = MsgSuccess
	ed.flashStart.Store(1000)

	if _, _, attrs := ed.messageStyle(1000).Decompose(); attrs&tcell.AttrReverse != 0 {
		t.Error("expected normal style at start of flash")
	}
	if _, _, attrs := ed.messageStyle(1150).Decompose(); attrs&tcell.AttrReverse == 0 {
		t.Error("expected inverted style in phase 1")
	}
	if _, _, attrs := ed.messageStyle(1600).Decompose(); attrs&tcell.AttrReverse != 0 {
		t.Error("expected steady style after the flash")
	}

	// A new message restarts the cycle.
	ed.messageType = MsgError
	ed.flashStart.Store(2000)
	if _, _, attrs := ed.messageStyle(2150).Decompose(); attrs&tcell.AttrReverse == 0 {
		t.Error("second message should flash from its own start")
	}

	ed.messageType = MsgInfo
	if _, _, attrs := ed.messageStyle(2150).Decompose(); attrs&tcell.AttrReverse != 0 {
		t.Error("info messages should never invert")
	}
}

func TestFlashing(t *testing.T) {
	ed := &Editor{}
	if ed.flashing(5000) {
		t.Error("no flash started")
	}
	ed.flashStart.Store(5000)
	tests := []struct {
		now  int64
		want bool
	}{
		{4999, false},
		{5000, true},
		{5000 + flashDuration, true},
		{5000 + flashDuration + 200, false},
	}
	for _, tt := range tests {
		if got := ed.flashing(tt.now); got != tt.want {
			t.Errorf("flashing(%d) = %v, want %v", tt.now, got, tt.want)
		}
	}
}
