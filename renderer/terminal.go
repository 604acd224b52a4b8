package renderer

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/tileclicker/systems"
)

// machineGlyphs are the terminal symbols for machines.
var machineGlyphs = map[systems.MachineKind]rune{
	systems.DirtExcavator:  'E',
	systems.House:          'H',
	systems.GrassHarvester: 'G',
	systems.WaterPump:      'P',
	systems.Market:         '$',
	systems.QuantumPC:      'Q',
}

// spinner shows rotation for machines that turn.
var spinner = [4]rune{'|', '/', '-', '\\'}

// Terminal is a character-cell surface backed by a tcell screen. tcell keeps
// cell contents between Show calls, so staggered redraws work unchanged.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal wraps an initialized screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Screen returns the underlying screen.
func (t *Terminal) Screen() tcell.Screen { return t.screen }

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// FillRect paints cells with a background color.
func (t *Terminal) FillRect(x, y, w, h int, c color.RGBA) {
	style := tcell.StyleDefault.Background(rgb(c))
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			t.screen.SetContent(i, j, ' ', nil, style)
		}
	}
}

// DrawText writes text over the existing background. size is ignored.
func (t *Terminal) DrawText(text string, x, y, size int, c color.RGBA) {
	col := x
	for _, ch := range text {
		_, _, style, _ := t.screen.GetContent(col, y)
		t.screen.SetContent(col, y, ch, nil, style.Foreground(rgb(c)))
		col++
	}
}

// DrawMachine draws the machine glyph in the first cell of the box and a
// spinner in the second when the box is wide enough.
func (t *Terminal) DrawMachine(kind systems.MachineKind, x, y, w, h, phase int) {
	_, _, style, _ := t.screen.GetContent(x, y)
	style = style.Foreground(tcell.ColorWhite).Bold(true)
	t.screen.SetContent(x, y, machineGlyphs[kind], nil, style)

	if w > 1 {
		spin := spinner[(phase/45)%len(spinner)]
		if kind == systems.House || kind == systems.Market {
			spin = ' '
		}
		_, _, s2, _ := t.screen.GetContent(x+1, y)
		t.screen.SetContent(x+1, y, spin, nil, s2.Foreground(tcell.ColorWhite))
	}
}
