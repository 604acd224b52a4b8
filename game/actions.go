package game

import (
	"github.com/pthm-cable/tileclicker/economy"
	"github.com/pthm-cable/tileclicker/systems"
)

// ClickBoard resolves a click at board pixel (px, py) with the current shop
// selection. Clicks outside the board return a zero result.
func (g *Game) ClickBoard(px, py int) economy.Result {
	if px < 0 || py < 0 || px >= g.cfg.Derived.BoardWidth || py >= g.cfg.Derived.BoardHeight {
		return economy.Result{}
	}
	return g.ClickTile(g.grid.CoordAt(px, py), px, py)
}

// ClickTile resolves a click on tile c; (px, py) places the feedback number.
func (g *Game) ClickTile(c systems.Coord, px, py int) economy.Result {
	if g.err != nil {
		return economy.Result{}
	}
	active := g.shop.Active()
	res := g.shop.ClickTile(g.sim, g.grid, c)
	g.record(res, active, c)
	g.feedback(res, px, py)
	return res
}

// PressButton handles a shop button press. Upgrades resolve immediately;
// other entries toggle selection.
func (g *Game) PressButton(i int) economy.Result {
	if i < 0 || i >= g.shop.Len() {
		g.shop.Deselect()
		return economy.Result{}
	}
	b := *g.shop.Button(i)
	res := g.shop.Press(g.sim, i)
	if b.Kind == economy.KindUpgrade {
		g.record(res, &b, systems.Coord{})
		g.feedback(res, g.cfg.Derived.BoardWidth-g.cfg.Board.CellSize, g.cfg.Derived.BoardHeight/2)
	}
	return res
}

// Deselect clears the shop selection.
func (g *Game) Deselect() { g.shop.Deselect() }

func (g *Game) record(res economy.Result, b *economy.Button, c systems.Coord) {
	switch res.Action {
	case economy.ActionHarvest:
		g.collector.RecordHarvest(res.Delta)
	case economy.ActionBuyTerrain, economy.ActionBuyMachine:
		g.collector.RecordPurchase(-res.Delta)
	case economy.ActionSell:
		g.collector.RecordSale(res.Delta)
	case economy.ActionUpgrade:
		g.collector.RecordUpgrade(-res.Delta)
	case economy.ActionNone:
	}
	if res.Failed() {
		g.collector.RecordRefusal()
	}
	logTransaction(g.tick, res, b, c, g.shop.Balance())
}

// feedback spawns a floating number for a transaction.
func (g *Game) feedback(res economy.Result, px, py int) {
	switch {
	case res.Status != economy.StatusOK && res.Status != economy.StatusWon:
		g.floaters.Spawn(px, py, 0, res.Status.String())
	case res.Delta != 0:
		g.floaters.Spawn(px, py, res.Delta, economy.FormatDelta(res.Delta))
	}
}
