package client

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tileclicker/economy"
)

// handleInput processes keyboard and mouse input.
func (c *Client) handleInput() {
	if c.pendingPress >= 0 {
		c.press(c.pendingPress)
		c.pendingPress = -1
	}

	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		c.handleKey(key)
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		c.game.Deselect()
	}

	if c.game.Paused() || c.showWin {
		return
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		x, y := int32(mouse.X), int32(mouse.Y)
		if x < c.boardW && y < c.boardH {
			c.resolve(c.game.ClickBoard(int(x), int(y)))
		}
	}
}

func (c *Client) handleKey(key int32) {
	switch key {
	case rl.KeyEscape:
		c.game.Deselect()
		if c.showWin {
			c.showWin = false
			c.game.SetPaused(false)
			return
		}
		c.game.TogglePause()
	case rl.KeyTab:
		c.overlays.ToggleStrip()
	case rl.KeyF11:
		rl.ToggleFullscreen()
	case rl.KeyComma:
		c.game.SetStepsPerUpdate(c.game.StepsPerUpdate() - 1)
	case rl.KeyPeriod:
		c.game.SetStepsPerUpdate(min(c.game.StepsPerUpdate()+1, 10))
	default:
		c.overlays.HandleKey(key)
	}
}

// press applies a sidebar button press captured during the last draw.
func (c *Client) press(i int) {
	if c.game.Paused() || c.showWin {
		return
	}
	res := c.game.PressButton(i)
	c.resolve(res)
	if res.Status == economy.StatusWon {
		c.showWin = true
		c.game.SetPaused(true)
	}
}

func (c *Client) resolve(res economy.Result) {
	if res.Failed() {
		c.flash(res.Status.String())
	}
	if res.Action != economy.ActionNone {
		c.fullRedraw = true
	}
}
