package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tileclicker/economy"
)

var instructions = []string{
	"Click a tile with nothing selected to harvest it.",
	"Grass pays by growth stage and turns back to dirt.",
	"Pick a shop entry, then click a tile to build it.",
	"Click a built tile with the same entry to sell it.",
	"Machines earn while the board runs.",
	"Upgrades double a multiplier. Buy WIN to finish.",
	"",
	"Right click: deselect    Esc: pause",
}

// PauseMenu draws the instructions screen shown while paused.
type PauseMenu struct {
	renderer *Renderer
}

// NewPauseMenu creates a pause menu.
func NewPauseMenu() *PauseMenu {
	return &PauseMenu{renderer: NewRenderer()}
}

// Draw renders the menu centred on the screen. It returns the chosen
// simulation speed and whether the resume button was pressed.
func (m *PauseMenu) Draw(screenW, screenH int32, speed int) (int, bool) {
	const w, h = 460, 300
	x := (screenW - w) / 2
	y := (screenH - h) / 2

	rl.DrawRectangle(0, 0, screenW, screenH, rl.Color{A: 150})
	m.renderer.DrawPanel(x, y, w, h)

	pad := m.renderer.Theme.Padding
	ty := m.renderer.DrawSectionHeader(x+pad, y+pad, "Instructions")
	for _, line := range instructions {
		rl.DrawText(line, x+pad, ty, 14, m.renderer.Theme.LabelColor)
		ty += 18
	}

	ty += 8
	rl.DrawText("Speed", x+pad, ty+2, 14, m.renderer.Theme.LabelColor)
	v := gui.SliderBar(
		rl.Rectangle{X: float32(x + pad + 60), Y: float32(ty), Width: 240, Height: 20},
		"1", "10",
		float32(speed), 1, 10,
	)
	rl.DrawText(fmt.Sprintf("%dx", int(v+0.5)), x+pad+340, ty+2, 14, m.renderer.Theme.ValueColor)

	resume := gui.Button(rl.Rectangle{X: float32(x + w - 130), Y: float32(y + h - 44), Width: 120, Height: 32}, "Resume")
	return max(1, int(v+0.5)), resume
}

// DrawWin renders the win screen over the board.
func DrawWin(screenW, screenH int32, balance float64, ticks int32) {
	rl.DrawRectangle(0, 0, screenW, screenH, rl.Color{R: 10, G: 30, B: 10, A: 200})

	title := "You Win!"
	tw := rl.MeasureText(title, 48)
	rl.DrawText(title, (screenW-tw)/2, screenH/2-60, 48, rl.Gold)

	sub := fmt.Sprintf("Balance $%s after %d frames", economy.FormatAmount(balance), ticks)
	sw := rl.MeasureText(sub, 18)
	rl.DrawText(sub, (screenW-sw)/2, screenH/2+4, 18, rl.RayWhite)
}
