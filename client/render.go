package client

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tileclicker/ui"
)

// Draw renders one frame.
func (c *Client) Draw() {
	g := c.game
	cellSize := g.Config().Board.CellSize

	// Board texture keeps undamaged tiles between frames
	c.surface.BeginBoard()
	c.board.Draw(c.surface, g.Grid(), c.fullRedraw)
	c.surface.EndBoard()
	c.fullRedraw = false

	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 20, G: 22, B: 26, A: 255})

	c.surface.DrawBoard()
	c.drawBoardOverlays(cellSize)

	if c.overlays.Enabled(ui.OverlayFloaters) {
		c.board.DrawFloaters(c.surface, g.Floaters(), cellSize, floaterTextSize)
	}

	rl.DrawRectangle(c.boardW, 0, c.screenW-c.boardW, c.screenH, rl.Color{R: 30, G: 34, B: 40, A: 255})
	c.hud.Draw(ui.HUDData{
		Balance:     g.Shop().Balance(),
		MoneyRate:   g.MoneyRate(),
		Tick:        g.Tick(),
		FPS:         rl.GetFPS(),
		RenderEvery: g.RenderEvery(),
		Paused:      g.Paused(),
		Message:     c.message,
		X:           c.boardW + 10,
		Y:           10,
	})
	if i := c.sidebar.Draw(g.Shop()); i >= 0 {
		c.pendingPress = i
	}

	c.drawPanels()
	c.hud.DrawControls(c.screenH, fmt.Sprintf("%s | %dx", controlsLegend, g.StepsPerUpdate()))

	switch {
	case c.showWin:
		ui.DrawWin(c.screenW, c.screenH, g.Shop().Balance(), g.Tick())
	case g.Paused():
		speed, resume := c.pause.Draw(c.screenW, c.screenH, g.StepsPerUpdate())
		g.SetStepsPerUpdate(speed)
		if resume {
			g.SetPaused(false)
		}
	}

	rl.EndDrawing()
}

func (c *Client) drawBoardOverlays(cellSize int) {
	grid := c.game.Grid()
	cs := int32(cellSize)

	if c.overlays.Enabled(ui.OverlayGridLines) {
		for x := int32(0); x <= c.boardW; x += cs {
			rl.DrawLine(x, 0, x, c.boardH, rl.Color{A: 60})
		}
		for y := int32(0); y <= c.boardH; y += cs {
			rl.DrawLine(0, y, c.boardW, y, rl.Color{A: 60})
		}
	}

	if c.overlays.Enabled(ui.OverlayPending) {
		tiles := grid.Tiles()
		for i := range tiles {
			if tiles[i].PendingPayout == 0 {
				continue
			}
			px, py := grid.ScreenCoord(tiles[i].Coord())
			rl.DrawCircle(int32(px), int32(py), 4, rl.Gold)
		}
	}

	if c.game.Shop().ActiveIndex() >= 0 {
		mouse := rl.GetMousePosition()
		if int32(mouse.X) < c.boardW && int32(mouse.Y) < c.boardH {
			tc := grid.CoordAt(int(mouse.X), int(mouse.Y))
			rl.DrawRectangleLines(int32(tc.X)*cs, int32(tc.Y)*cs, cs, cs, rl.Yellow)
		}
	}
}

func (c *Client) drawPanels() {
	g := c.game

	c.overlays.DrawStrip(10, c.screenH-50)

	if c.overlays.Enabled(ui.OverlayMultipliers) {
		c.multipliers.Draw(g.Multipliers())
	}

	if c.overlays.Enabled(ui.OverlayInspector) {
		mouse := rl.GetMousePosition()
		if int32(mouse.X) < c.boardW && int32(mouse.Y) < c.boardH {
			t := g.Grid().At(g.Grid().CoordAt(int(mouse.X), int(mouse.Y)))
			c.inspector.Draw(t)
		}
	}

	if c.overlays.Enabled(ui.OverlayPerf) {
		c.perf.Draw(g.PerfStats(), g.Phases())
	}
}
