package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tileclicker/economy"
)

const (
	sidebarButtonHeight = 34
	sidebarButtonGap    = 6
	sidebarCostWidth    = 70
)

// Sidebar draws one raygui button per shop entry.
type Sidebar struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewSidebar creates a sidebar whose buttons start at (x, y).
func NewSidebar(x, y, width int32) *Sidebar {
	return &Sidebar{renderer: NewRenderer(), x: x, y: y, width: width}
}

// ButtonRect returns the rectangle of button i.
func (s *Sidebar) ButtonRect(i int) rl.Rectangle {
	p := float32(s.renderer.Theme.Padding)
	return rl.Rectangle{
		X:      float32(s.x) + p,
		Y:      float32(s.y) + float32(i*(sidebarButtonHeight+sidebarButtonGap)),
		Width:  float32(s.width) - 2*p - sidebarCostWidth,
		Height: sidebarButtonHeight,
	}
}

// Draw renders the shop and returns the index of the button pressed this
// frame, or -1.
func (s *Sidebar) Draw(shop *economy.Shop) int {
	th := s.renderer.Theme
	pressed := -1

	for i, b := range shop.Buttons() {
		rect := s.ButtonRect(i)
		if gui.Button(rect, b.Label) {
			pressed = i
		}

		if i == shop.ActiveIndex() {
			rl.DrawRectangleLinesEx(rect, 2, th.Selected)
		}

		if b.Cost > 0 {
			c := th.ValueColor
			if b.Cost > shop.Balance() {
				c = th.Loss
			}
			rl.DrawText("$"+economy.FormatAmount(b.Cost), int32(rect.X+rect.Width)+8, int32(rect.Y)+10, th.FontSize+2, c)
		}
	}

	return pressed
}
