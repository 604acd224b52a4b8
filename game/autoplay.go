package game

import (
	"math"

	"github.com/pthm-cable/tileclicker/config"
	"github.com/pthm-cable/tileclicker/economy"
	"github.com/pthm-cable/tileclicker/systems"
)

// Autoplay is a simple bot that harvests the ripest grass and buys the
// cheapest affordable machine or upgrade on a fixed cadence.
type Autoplay struct {
	clickEvery int
	buyEvery   int
	frame      int
}

// NewAutoplay creates a bot with the configured cadence.
func NewAutoplay(cfg config.AutoplayConfig) *Autoplay {
	return &Autoplay{
		clickEvery: max(cfg.ClickEvery, 1),
		buyEvery:   max(cfg.BuyEvery, 1),
	}
}

// Act performs this frame's bot actions against g.
func (a *Autoplay) Act(g *Game) {
	a.frame++
	if a.frame%a.clickEvery == 0 {
		a.harvest(g)
	}
	if a.frame%a.buyEvery == 0 {
		a.buy(g)
	}
}

func (a *Autoplay) harvest(g *Game) {
	c, ok := ripestTile(g.grid)
	if !ok {
		return
	}
	g.Deselect()
	px, py := g.grid.ScreenCoord(c)
	g.ClickTile(c, px, py)
}

// ripestTile picks the free grass tile with the highest stage, falling back
// to any free tile.
func ripestTile(grid *systems.Grid) (systems.Coord, bool) {
	best, bestStage := -1, -1
	tiles := grid.Tiles()
	for i := range tiles {
		t := &tiles[i]
		if t.HasMachine() || t.Terrain == systems.Water {
			continue
		}
		stage := 0
		if t.Terrain == systems.Grass {
			stage = t.GrassStage
		}
		if stage > bestStage {
			best, bestStage = i, stage
		}
	}
	if best < 0 {
		return systems.Coord{}, false
	}
	return tiles[best].Coord(), true
}

func (a *Autoplay) buy(g *Game) {
	idx := cheapestAffordable(g.shop)
	if idx < 0 {
		return
	}
	b := g.shop.Button(idx)
	if b.Kind == economy.KindUpgrade {
		g.PressButton(idx)
		return
	}

	c, ok := placement(g.grid, b.Machine)
	if !ok {
		return
	}
	g.PressButton(idx)
	px, py := g.grid.ScreenCoord(c)
	g.ClickTile(c, px, py)
	g.Deselect()
}

// cheapestAffordable returns the index of the cheapest machine or upgrade
// the balance covers, or -1. Pumps cost upkeep and are left to players.
func cheapestAffordable(shop *economy.Shop) int {
	best := -1
	bestCost := math.Inf(1)
	for i, b := range shop.Buttons() {
		switch b.Kind {
		case economy.KindMachine:
			if b.Machine == systems.WaterPump {
				continue
			}
		case economy.KindUpgrade:
			if b.Maxed() {
				continue
			}
		case economy.KindTerrain:
			continue
		}
		if b.Cost <= shop.Balance() && b.Cost < bestCost {
			best, bestCost = i, b.Cost
		}
	}
	return best
}

// placement finds a free tile suited to the machine kind.
func placement(grid *systems.Grid, kind systems.MachineKind) (systems.Coord, bool) {
	want := systems.Dirt
	switch kind {
	case systems.GrassHarvester:
		want = systems.Grass
	case systems.QuantumPC:
		want = systems.Quantum
	}

	tiles := grid.Tiles()
	for i := range tiles {
		t := &tiles[i]
		if !t.HasMachine() && t.Terrain == want {
			return t.Coord(), true
		}
	}
	return systems.Coord{}, false
}
