package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tileclicker/economy"
	"github.com/pthm-cable/tileclicker/systems"
	"github.com/pthm-cable/tileclicker/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Balance     float64
	MoneyRate   float64
	Tick        int32
	FPS         int32
	RenderEvery int
	Paused      bool
	Message     string // last transaction status, empty when none
	X, Y        int32
}

// HUD renders the balance readout above the shop.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD and returns the Y below it.
func (h *HUD) Draw(data HUDData) int32 {
	x, y := data.X, data.Y

	rl.DrawText("$"+economy.FormatAmount(data.Balance), x, y, 24, rl.White)
	y += 28

	rl.DrawText(fmt.Sprintf("%s/s", economy.FormatAmount(data.MoneyRate)), x, y, 16, h.renderer.Theme.Gain)
	y += 20

	rl.DrawText(
		fmt.Sprintf("FPS: %d | Redraw 1/%d", data.FPS, data.RenderEvery),
		x, y, 12, rl.Gray,
	)
	y += 16

	if data.Paused {
		rl.DrawText("PAUSED", x, y, 16, rl.Yellow)
		y += 20
	}
	if data.Message != "" {
		rl.DrawText(data.Message, x, y, 16, h.renderer.Theme.Loss)
		y += 20
	}
	return y
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// MultipliersPanel lists the upgrade multiplier table.
type MultipliersPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewMultipliersPanel creates a new multipliers panel.
func NewMultipliersPanel(x, y, width int32) *MultipliersPanel {
	return &MultipliersPanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

// Draw renders one line per category.
func (m *MultipliersPanel) Draw(mult *systems.Multipliers) int32 {
	r := m.renderer
	padding := r.Theme.Padding
	cats := systems.Categories()

	r.DrawPanel(m.x, m.y, m.width, int32(len(cats)+1)*r.Theme.LineHeight+padding*2)

	y := r.DrawSectionHeader(m.x+padding, m.y+padding, "Multipliers")
	for _, c := range cats {
		y = r.DrawLabelValue(m.x+padding, y, c.String(), fmt.Sprintf("x%g", mult.Value(c)))
	}
	return y
}

// PerfPanel lists average frame phase timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a perf panel at (x, y).
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), x: x, y: y}
}

// Draw renders one line per timed phase, coloured by its share of the frame.
func (p *PerfPanel) Draw(stats telemetry.PerfStats, reg *systems.PhaseRegistry) {
	x, y := p.x, p.y
	r := p.renderer
	r.DrawPanel(x-6, y-6, 260, int32(len(stats.Phases))*14+48)

	rl.DrawText("Frame Phases", x, y, 16, rl.White)
	y += 20
	rl.DrawText(fmt.Sprintf("Avg %s  Max %s",
		stats.AvgFrame.Round(time.Microsecond), stats.MaxFrame.Round(time.Microsecond)),
		x, y, 14, r.Theme.SectionHeader)
	y += 16

	for _, ph := range stats.Phases {
		color := r.Theme.LabelColor
		switch {
		case ph.Pct > 40:
			color = r.Theme.Loss
		case ph.Pct > 20:
			color = rl.Orange
		}
		rl.DrawText(
			fmt.Sprintf("%-14s %8s %5.1f%%", reg.GetName(ph.ID), ph.Avg.Round(time.Microsecond), ph.Pct),
			x, y, 12, color,
		)
		y += 14
	}
}
