package economy

import (
	"fmt"
	"math"

	"github.com/pthm-cable/tileclicker/config"
	"github.com/pthm-cable/tileclicker/systems"
)

// Rules holds the fixed pricing and harvest parameters.
type Rules struct {
	Harvest           config.HarvestConfig
	Machines          config.MachinesConfig
	SaleRefund        float64
	UpgradeCostGrowth float64
	MaxWaterReserve   int
}

// RulesFrom extracts economy rules from the loaded configuration.
func RulesFrom(cfg *config.Config) Rules {
	return Rules{
		Harvest:           cfg.Harvest,
		Machines:          cfg.Machines,
		SaleRefund:        cfg.Economy.SaleRefund,
		UpgradeCostGrowth: cfg.Economy.UpgradeCostGrowth,
		MaxWaterReserve:   cfg.Ecology.MaxWaterReserve,
	}
}

// Click resolves a click on the tile at c with the given button selected
// (nil for none). Exactly one rule applies: harvest, sale, terrain purchase,
// the occupied check, machine purchase, or the can't-afford fallback.
// Button costs change as a side effect; the balance does not.
func (r *Rules) Click(sim *systems.SimContext, g *systems.Grid, c systems.Coord, balance float64, b *Button) Result {
	t := g.At(c)

	if b == nil {
		return r.harvest(sim, t)
	}
	if !b.Placeable() {
		return Result{}
	}

	if r.matchesSale(t, b) {
		return r.sell(t, b)
	}

	affordable := balance >= b.Cost

	if b.Kind == KindTerrain && affordable {
		switch b.Terrain {
		case systems.Water:
			t.ToWater(r.MaxWaterReserve)
		case systems.Pavement:
			t.ToPavement()
		case systems.Quantum:
			t.ToQuantum()
		case systems.Dirt, systems.Grass:
			return Result{Status: StatusCantAfford}
		}
		return r.charge(b, ActionBuyTerrain)
	}

	if t.HasMachine() {
		return Result{Status: StatusOccupied}
	}

	if b.Kind == KindMachine && affordable {
		t.Install(systems.NewMachine(b.Machine, b.Profit, sim.Rand, r.Machines))
		if b.Machine == systems.WaterPump {
			g.FloodPump(c)
		}
		return r.charge(b, ActionBuyMachine)
	}

	return Result{Status: StatusCantAfford}
}

// harvest collects the tile's click value.
func (r *Rules) harvest(sim *systems.SimContext, t *systems.Tile) Result {
	h := &r.Harvest
	var v float64

	switch t.Terrain {
	case systems.Dirt:
		v = h.Dirt
	case systems.Pavement:
		v = h.Pavement
	case systems.Water:
		v = h.Water
	case systems.Grass:
		v = math.Trunc(float64(t.GrassStage)*h.GrassPerStage*sim.Mult.Value(systems.CategoryGrass)) + h.GrassBase
		t.ToDirt()
	case systems.Quantum:
		v = h.Quantum * sim.Mult.Value(systems.CategoryQuantum)
	}

	return Result{Delta: v, Action: ActionHarvest}
}

// matchesSale reports whether clicking t with b sells what is on the tile.
func (r *Rules) matchesSale(t *systems.Tile, b *Button) bool {
	switch b.Kind {
	case KindMachine:
		return t.Machine.Kind == b.Machine
	case KindTerrain:
		// Water is refreshed by buying again, never sold
		return b.Terrain != systems.Water && t.Terrain == b.Terrain
	case KindUpgrade:
	}
	return false
}

// sell refunds part of the current price and restores the tile.
func (r *Rules) sell(t *systems.Tile, b *Button) Result {
	refund := math.Floor(b.Cost * r.SaleRefund)
	b.Cost = max(b.Cost-b.Increment, 0)

	if b.Kind == KindTerrain {
		t.ToDirt()
		return Result{Delta: refund, Action: ActionSell}
	}

	switch b.Machine {
	case systems.GrassHarvester:
		t.ToGrass()
	case systems.WaterPump:
		t.ToWater(r.MaxWaterReserve)
	case systems.QuantumPC:
		if t.Terrain != systems.Quantum {
			t.ToDirt()
		}
	case systems.DirtExcavator, systems.House, systems.Market, systems.MachineNone:
		t.ToDirt()
	}
	t.RemoveMachine()

	return Result{Delta: refund, Action: ActionSell}
}

// charge returns the purchase delta and raises the button's price.
func (r *Rules) charge(b *Button, a Action) Result {
	delta := -b.Cost
	b.Cost += b.Increment
	return Result{Delta: delta, Action: a}
}

// BuyUpgrade buys the next stage of an upgrade line, doubling its
// multiplier. Purchases on an exhausted line change nothing.
func (r *Rules) BuyUpgrade(sim *systems.SimContext, b *Button, balance float64) Result {
	if b.Kind != KindUpgrade {
		return Result{}
	}
	if b.Maxed() {
		return Result{Status: StatusMaxed}
	}
	if balance < b.Cost {
		return Result{Status: StatusCantAfford}
	}

	delta := -b.Cost
	u := &b.Upgrade
	if u.Stage < u.MaxStages {
		b.Cost *= r.UpgradeCostGrowth
	} else {
		b.Cost = 0
		b.Label = fmt.Sprintf("MAXED x%d", 1<<u.MaxStages)
	}
	u.Stage++
	sim.Mult.Double(u.Category)

	res := Result{Delta: delta, Action: ActionUpgrade}
	if u.Category == systems.CategoryWin {
		res.Status = StatusWon
	}
	return res
}
