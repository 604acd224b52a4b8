package renderer

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/tileclicker/systems"
)

func newSimScreen(t *testing.T) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(40, 12)
	t.Cleanup(screen.Fini)
	return screen
}

func TestTerminalFillAndText(t *testing.T) {
	screen := newSimScreen(t)
	term := NewTerminal(screen)
	p := DefaultPalette()

	term.FillRect(2, 1, 4, 2, p.WaterFull)
	term.DrawText("ok", 2, 1, 0, p.Status)
	screen.Show()

	mainc, _, style, _ := screen.GetContent(2, 1)
	if mainc != 'o' {
		t.Errorf("glyph = %q, want 'o'", mainc)
	}
	fg, bg, _ := style.Decompose()
	if bg != rgb(p.WaterFull) {
		t.Errorf("background = %v, want water", bg)
	}
	if fg != rgb(p.Status) {
		t.Errorf("foreground = %v, want status color", fg)
	}

	_, _, style, _ = screen.GetContent(5, 2)
	if _, bg, _ := style.Decompose(); bg != rgb(p.WaterFull) {
		t.Errorf("fill missed (5,2): %v", bg)
	}
}

func TestTerminalMachineGlyph(t *testing.T) {
	screen := newSimScreen(t)
	term := NewTerminal(screen)

	term.DrawMachine(systems.WaterPump, 4, 3, 2, 1, 90)
	term.DrawMachine(systems.House, 8, 3, 2, 1, 90)
	screen.Show()

	tests := []struct {
		x    int
		want rune
	}{
		{4, 'P'},
		{5, '-'},
		{8, 'H'},
		{9, ' '},
	}
	for _, tt := range tests {
		if got, _, _, _ := screen.GetContent(tt.x, 3); got != tt.want {
			t.Errorf("cell %d = %q, want %q", tt.x, got, tt.want)
		}
	}
}
