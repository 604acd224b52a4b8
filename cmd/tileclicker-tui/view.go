package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/tileclicker/economy"
	"github.com/pthm-cable/tileclicker/game"
	"github.com/pthm-cable/tileclicker/renderer"
)

const (
	cellW = 2 // terminal columns per tile
	cellH = 1

	sidebarGap   = 2
	buttonsTop   = 4
	messageTicks = 45
)

// buttonKeys select shop entries by index.
const buttonKeys = "1234567890abcdefghij"

var (
	textColor  = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	dimColor   = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	hiColor    = color.RGBA{R: 240, G: 200, B: 60, A: 255}
	panelColor = color.RGBA{R: 24, G: 26, B: 30, A: 255}
)

type view struct {
	game   *game.Game
	screen tcell.Screen
	term   *renderer.Terminal
	board  *renderer.BoardRenderer
	sounds *Sounds

	sidebarX    int
	lastButtons tcell.ButtonMask
	message     string
	messageTTL  int
	won         bool
}

func newView(g *game.Game, screen tcell.Screen, sounds *Sounds) *view {
	cfg := g.Config()
	return &view{
		game:     g,
		screen:   screen,
		term:     renderer.NewTerminal(screen),
		board:    renderer.NewBoardRenderer(cellW, cellH, cfg.Ecology.MaxGrassStage, cfg.Ecology.MaxWaterReserve),
		sounds:   sounds,
		sidebarX: cfg.Board.Cols*cellW + sidebarGap,
	}
}

// handle applies one input event and reports whether to quit.
func (v *view) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	}
	return false
}

func (v *view) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		v.game.Deselect()
		v.won = false
		v.game.TogglePause()
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	r := ev.Rune()
	switch r {
	case 'q':
		return true
	case ' ':
		v.game.TogglePause()
	case '<', ',':
		v.game.SetStepsPerUpdate(v.game.StepsPerUpdate() - 1)
	case '>', '.':
		v.game.SetStepsPerUpdate(min(v.game.StepsPerUpdate()+1, 10))
	default:
		for i, k := range buttonKeys {
			if k == r && i < v.game.Shop().Len() {
				v.press(i)
			}
		}
	}
	return false
}

func (v *view) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	// Motion while held repeats the mask; act on presses only
	buttons := ev.Buttons() &^ v.lastButtons
	v.lastButtons = ev.Buttons()

	if buttons&tcell.Button2 != 0 {
		v.game.Deselect()
		return
	}
	if buttons&tcell.Button1 == 0 || v.game.Paused() {
		return
	}

	cfg := v.game.Config()
	if x < cfg.Board.Cols*cellW && y < cfg.Board.Rows*cellH {
		c := v.game.Grid().CoordAt(x/cellW*cfg.Board.CellSize, y/cellH*cfg.Board.CellSize)
		px, py := v.game.Grid().ScreenCoord(c)
		v.feedback(v.game.ClickTile(c, px, py))
		return
	}

	if x >= v.sidebarX && y >= buttonsTop && y-buttonsTop < v.game.Shop().Len() {
		v.press(y - buttonsTop)
	}
}

func (v *view) press(i int) {
	if v.game.Paused() {
		return
	}
	res := v.game.PressButton(i)
	v.feedback(res)
	if res.Status == economy.StatusWon {
		v.won = true
		v.game.SetPaused(true)
	}
}

func (v *view) feedback(res economy.Result) {
	switch {
	case res.Failed():
		v.message = res.Status.String()
		v.messageTTL = messageTicks
		v.sounds.Refused()
	case res.Status == economy.StatusWon:
		v.sounds.Win()
	case res.Action == economy.ActionBuyMachine, res.Action == economy.ActionBuyTerrain, res.Action == economy.ActionUpgrade:
		v.sounds.Purchase()
	case res.Action == economy.ActionSell:
		v.sounds.Sale()
	}
}

func (v *view) draw() {
	g := v.game
	cfg := g.Config()

	v.screen.Clear()

	// Floaters overwrite cells, so the board is repainted every frame
	v.board.Draw(v.term, g.Grid(), true)
	v.board.DrawFloaters(v.term, g.Floaters(), cfg.Board.CellSize, 1)

	v.drawSidebar()

	if v.messageTTL > 0 {
		v.messageTTL--
	}

	switch {
	case v.won:
		v.banner(fmt.Sprintf("You Win! $%s  (Esc to continue)", economy.FormatAmount(g.Shop().Balance())))
	case g.Paused():
		v.banner("PAUSED  Esc/space: play  1-9: shop  click: harvest/build  right click: deselect  q: quit")
	}

	v.screen.Show()
}

func (v *view) drawSidebar() {
	g := v.game
	shop := g.Shop()
	x := v.sidebarX
	_, h := v.screen.Size()

	v.term.FillRect(x-1, 0, 48, h, panelColor)
	v.term.DrawText("$"+economy.FormatAmount(shop.Balance()), x, 0, 1, hiColor)
	v.term.DrawText(fmt.Sprintf("%s/s  redraw 1/%d  %dx", economy.FormatAmount(g.MoneyRate()), g.RenderEvery(), g.StepsPerUpdate()), x, 1, 1, dimColor)
	if v.messageTTL > 0 {
		v.term.DrawText(v.message, x, 2, 1, renderer.DefaultPalette().Loss)
	}

	for i, b := range shop.Buttons() {
		c := textColor
		if b.Cost > shop.Balance() {
			c = dimColor
		}
		if i == shop.ActiveIndex() {
			c = hiColor
		}
		key := ' '
		if i < len(buttonKeys) {
			key = rune(buttonKeys[i])
		}
		line := fmt.Sprintf("%c %-22s", key, b.Label)
		if b.Cost > 0 {
			line += " $" + economy.FormatAmount(b.Cost)
		}
		v.term.DrawText(line, x, buttonsTop+i, 1, c)
	}
}

func (v *view) banner(text string) {
	_, h := v.screen.Size()
	y := h - 1
	v.term.FillRect(0, y, len(text)+2, 1, panelColor)
	v.term.DrawText(text, 1, y, 1, hiColor)
}
