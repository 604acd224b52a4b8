// Package client is the raylib desktop front end for a game session.
package client

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tileclicker/economy"
	"github.com/pthm-cable/tileclicker/game"
	"github.com/pthm-cable/tileclicker/renderer"
	"github.com/pthm-cable/tileclicker/systems"
	"github.com/pthm-cable/tileclicker/ui"
)

const (
	hudHeight        = 120
	messageFrames    = 45
	floaterTextSize  = 20
	controlsLegend   = "Esc: menu | Tab: overlays | Right click: deselect | , .: speed"
	inspectorWidth   = 230
	multipliersWidth = 190
)

// Client draws a game into the raylib window and feeds it input.
type Client struct {
	game *game.Game

	surface    *renderer.Raylib
	board      *renderer.BoardRenderer
	fullRedraw bool

	hud         *ui.HUD
	sidebar     *ui.Sidebar
	inspector   *ui.Inspector
	multipliers *ui.MultipliersPanel
	perf        *ui.PerfPanel
	overlays    *ui.Overlays
	pause       *ui.PauseMenu

	boardW, boardH int32
	screenW        int32
	screenH        int32

	pendingPress int
	message      string
	messageTTL   int
	showWin      bool
}

// New creates a client for g. The raylib window must already be open.
func New(g *game.Game) *Client {
	cfg := g.Config()
	d := cfg.Derived

	sprites := make(map[systems.MachineKind]string)
	for _, b := range g.Shop().Buttons() {
		if b.Kind == economy.KindMachine && b.Sprite != "" {
			sprites[b.Machine] = b.Sprite
		}
	}

	c := &Client{
		game:         g,
		surface:      renderer.NewRaylib(d.BoardWidth, d.BoardHeight, sprites),
		board:        renderer.NewBoardRenderer(cfg.Board.CellSize, cfg.Board.CellSize, cfg.Ecology.MaxGrassStage, cfg.Ecology.MaxWaterReserve),
		fullRedraw:   true,
		hud:          ui.NewHUD(),
		sidebar:      ui.NewSidebar(int32(d.BoardWidth), hudHeight, int32(cfg.Screen.SidebarWidth)),
		inspector:    ui.NewInspector(int32(d.BoardWidth-inspectorWidth-10), int32(d.BoardHeight-170), inspectorWidth, cfg.Ecology.MaxGrassStage, cfg.Ecology.MaxWaterReserve),
		multipliers:  ui.NewMultipliersPanel(int32(d.BoardWidth-multipliersWidth-10), 10, multipliersWidth),
		perf:         ui.NewPerfPanel(16, int32(d.BoardHeight-180)),
		overlays:     ui.NewOverlays(ui.OverlayFloaters),
		pause:        ui.NewPauseMenu(),
		boardW:       int32(d.BoardWidth),
		boardH:       int32(d.BoardHeight),
		screenW:      int32(d.ScreenWidth),
		screenH:      int32(d.ScreenHeight),
		pendingPress: -1,
	}
	c.surface.Init()
	return c
}

// Update handles input, advances the game and reports the frame rate.
func (c *Client) Update() {
	c.handleInput()
	c.game.Update()
	c.game.ObserveFPS(float64(rl.GetFPS()))

	if c.messageTTL > 0 {
		c.messageTTL--
		if c.messageTTL == 0 {
			c.message = ""
		}
	}
}

// Unload frees GPU resources.
func (c *Client) Unload() {
	c.surface.Unload()
}

func (c *Client) flash(msg string) {
	c.message = msg
	c.messageTTL = messageFrames
}
